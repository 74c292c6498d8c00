package restaurant

import (
	"strings"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// Field names shared by the per-screen schemas. Each screen declares which of
// them it exposes; rules naming an undeclared field degrade per tabular rules.
const (
	FieldID            = "id"
	FieldCustomer      = "customer"
	FieldTimePlaced    = "time_placed"
	FieldItems         = "items"
	FieldStatus        = "status"
	FieldTotal         = "total"
	FieldDate          = "date"
	FieldPayment       = "payment"
	FieldName          = "name"
	FieldPrice         = "price"
	FieldCategory      = "category"
	FieldStock         = "stock"
	FieldUnit          = "unit"
	FieldReorderPoint  = "reorder_point"
	FieldStockLevel    = "stock_level"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldTotalOrders   = "total_orders"
	FieldLoyaltyPoints = "loyalty_points"
	FieldCode          = "code"
	FieldType          = "type"
	FieldValue         = "value"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldMinOrder      = "min_order"
	FieldUsage         = "usage"
	FieldRoleID        = "role_id"
	FieldRole          = "role"
)

// Default search fields per screen.
var (
	OrderSearchFields     = []string{FieldID, FieldCustomer}
	HistorySearchFields   = []string{FieldID, FieldCustomer}
	MenuSearchFields      = []string{FieldName, FieldCategory}
	InventorySearchFields = []string{FieldName}
	CustomerSearchFields  = []string{FieldName, FieldEmail}
	PromotionSearchFields = []string{FieldCode}
	StaffSearchFields     = []string{FieldName, FieldEmail, FieldRole}
)

// OrderSchema exposes live order fields.
func OrderSchema() tabular.Schema[LiveOrder] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(o LiveOrder) string { return o.ID }),
		tabular.TextField(FieldCustomer, func(o LiveOrder) string { return o.Customer }),
		tabular.TextField(FieldTimePlaced, func(o LiveOrder) string { return o.TimePlaced }),
		tabular.TextField(FieldItems, func(o LiveOrder) string { return strings.Join(o.Items, ", ") }),
		tabular.TextField(FieldStatus, func(o LiveOrder) string { return string(o.Status) }),
	)
}

// HistorySchema exposes order history fields.
func HistorySchema() tabular.Schema[HistoryOrder] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(o HistoryOrder) string { return o.ID }),
		tabular.TextField(FieldCustomer, func(o HistoryOrder) string { return o.Customer }),
		tabular.NumberField(FieldTotal, func(o HistoryOrder) float64 { return o.Total }),
		tabular.TimeField(FieldDate, func(o HistoryOrder) time.Time { return o.Date }),
		tabular.TextField(FieldStatus, func(o HistoryOrder) string { return string(o.Status) }),
		tabular.TextField(FieldPayment, func(o HistoryOrder) string { return string(o.Payment) }),
	)
}

// MenuSchema exposes menu item fields.
func MenuSchema() tabular.Schema[MenuItem] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(m MenuItem) string { return m.ID }),
		tabular.TextField(FieldName, func(m MenuItem) string { return m.Name }),
		tabular.NumberField(FieldPrice, func(m MenuItem) float64 { return m.Price }),
		tabular.TextField(FieldCategory, func(m MenuItem) string { return m.Category }),
		tabular.TextField(FieldStatus, func(m MenuItem) string { return string(m.Status) }),
	)
}

// InventorySchema exposes inventory fields plus the derived stock level.
func InventorySchema() tabular.Schema[InventoryItem] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(i InventoryItem) string { return i.ID }),
		tabular.TextField(FieldName, func(i InventoryItem) string { return i.Name }),
		tabular.NumberField(FieldStock, func(i InventoryItem) float64 { return i.Stock }),
		tabular.TextField(FieldUnit, func(i InventoryItem) string { return i.Unit }),
		tabular.NumberField(FieldReorderPoint, func(i InventoryItem) float64 { return i.ReorderPoint }),
		tabular.TextField(FieldStockLevel, func(i InventoryItem) string { return string(i.Level()) }),
	)
}

// CustomerSchema exposes customer fields.
func CustomerSchema() tabular.Schema[Customer] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(c Customer) string { return c.ID }),
		tabular.TextField(FieldName, func(c Customer) string { return c.Name }),
		tabular.TextField(FieldEmail, func(c Customer) string { return c.Email }),
		tabular.TextField(FieldPhone, func(c Customer) string { return c.Phone }),
		tabular.NumberField(FieldTotalOrders, func(c Customer) float64 { return float64(c.TotalOrders) }),
		tabular.NumberField(FieldLoyaltyPoints, func(c Customer) float64 { return float64(c.LoyaltyPoints) }),
	)
}

// PromotionSchema exposes promotion fields. Status is evaluated at now.
func PromotionSchema(now time.Time) tabular.Schema[Promotion] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(p Promotion) string { return p.ID }),
		tabular.TextField(FieldCode, func(p Promotion) string { return p.Code }),
		tabular.TextField(FieldType, func(p Promotion) string { return string(p.Type) }),
		tabular.NumberField(FieldValue, func(p Promotion) float64 { return p.Value }),
		tabular.TimeField(FieldStartDate, func(p Promotion) time.Time { return p.StartDate }),
		tabular.TimeField(FieldEndDate, func(p Promotion) time.Time { return p.EndDate }),
		tabular.NumberField(FieldMinOrder, func(p Promotion) float64 { return p.MinOrder }),
		tabular.NumberField(FieldUsage, func(p Promotion) float64 { return float64(p.Usage) }),
		tabular.TextField(FieldStatus, func(p Promotion) string { return string(PromotionStatusAt(p, now)) }),
	)
}

// StaffSchema exposes staff fields. The role field resolves against roles.
func StaffSchema(roles []Role) tabular.Schema[StaffMember] {
	return tabular.NewSchema(
		tabular.TextField(FieldID, func(s StaffMember) string { return s.ID }),
		tabular.TextField(FieldName, func(s StaffMember) string { return s.Name }),
		tabular.TextField(FieldEmail, func(s StaffMember) string { return s.Email }),
		tabular.TextField(FieldRoleID, func(s StaffMember) string { return s.RoleID }),
		tabular.TextField(FieldRole, func(s StaffMember) string { return RoleName(roles, s.RoleID) }),
	)
}
