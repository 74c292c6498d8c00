package restaurant

import "time"

// OrderStatus tracks an order through the kitchen.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// LiveOrder is an order currently on the kitchen board.
type LiveOrder struct {
	ID         string      `json:"id" yaml:"id"`
	Customer   string      `json:"customer" yaml:"customer"`
	TimePlaced string      `json:"time_placed" yaml:"time_placed"`
	Items      []string    `json:"items" yaml:"items"`
	Status     OrderStatus `json:"status" yaml:"status"`
}

// PaymentMethod identifies how a historical order was paid.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "Card"
	PaymentCash PaymentMethod = "Cash"
	PaymentApp  PaymentMethod = "App"
)

// PaymentOptions lists the payment filter choices, "All" first.
var PaymentOptions = []string{"All", string(PaymentCard), string(PaymentCash), string(PaymentApp)}

// HistoryStatusOptions lists the status filter choices for order history.
var HistoryStatusOptions = []string{"All", string(StatusCompleted), string(StatusCancelled)}

// HistoryOrder is a closed order.
type HistoryOrder struct {
	ID       string        `json:"id" yaml:"id"`
	Customer string        `json:"customer" yaml:"customer"`
	Total    float64       `json:"total" yaml:"total"`
	Date     time.Time     `json:"date" yaml:"date"`
	Status   OrderStatus   `json:"status" yaml:"status"`
	Payment  PaymentMethod `json:"payment" yaml:"payment"`
}

// MenuStatus is the availability of a menu item.
type MenuStatus string

const (
	MenuAvailable MenuStatus = "AVAILABLE"
	MenuSoldOut   MenuStatus = "SOLD_OUT"
)

// Toggle flips between AVAILABLE and SOLD_OUT.
func (m MenuStatus) Toggle() MenuStatus {
	if m == MenuAvailable {
		return MenuSoldOut
	}
	return MenuAvailable
}

// MenuCategories lists the categories offered by the menu form.
var MenuCategories = []string{"Main", "Side", "Dessert", "Drink", "Vegan"}

// MenuItem is a sellable item.
type MenuItem struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Price    float64    `json:"price" yaml:"price"`
	Category string     `json:"category" yaml:"category"`
	Status   MenuStatus `json:"status" yaml:"status"`
	ImageURL string     `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// InventoryItem is a stocked ingredient.
type InventoryItem struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Stock        float64 `json:"stock" yaml:"stock"`
	Unit         string  `json:"unit" yaml:"unit"`
	ReorderPoint float64 `json:"reorder_point" yaml:"reorder_point"`
}

// CustomerOrder is one entry of a customer's purchase history.
type CustomerOrder struct {
	OrderID string    `json:"order_id" yaml:"order_id"`
	Date    time.Time `json:"date" yaml:"date"`
	Total   float64   `json:"total" yaml:"total"`
	Items   []string  `json:"items" yaml:"items"`
}

// Customer is a loyalty programme member.
type Customer struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Email         string          `json:"email" yaml:"email"`
	Phone         string          `json:"phone" yaml:"phone"`
	TotalOrders   int             `json:"total_orders" yaml:"total_orders"`
	LoyaltyPoints int             `json:"loyalty_points" yaml:"loyalty_points"`
	History       []CustomerOrder `json:"history" yaml:"history"`
}

// DiscountType selects how a promotion value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

// Promotion is a discount code. Its status is derived from the date window,
// see PromotionStatusAt.
type Promotion struct {
	ID            string       `json:"id" yaml:"id"`
	Code          string       `json:"code" yaml:"code"`
	Type          DiscountType `json:"type" yaml:"type"`
	Value         float64      `json:"value" yaml:"value"`
	StartDate     time.Time    `json:"start_date" yaml:"start_date"`
	EndDate       time.Time    `json:"end_date" yaml:"end_date"`
	MinOrder      float64      `json:"min_order" yaml:"min_order"`
	Usage         int          `json:"usage" yaml:"usage"`
	FirstTimeUser bool         `json:"first_time_user" yaml:"first_time_user"`
}

// Permission is a capability granted to roles.
type Permission string

const (
	PermViewReports     Permission = "View Reports"
	PermManageInventory Permission = "Manage Inventory"
	PermProcessOrders   Permission = "Process Orders"
	PermManageStaff     Permission = "Manage Staff"
	PermConfigureMenu   Permission = "Configure Menu"
)

// Permissions is the fixed permission catalogue in display order.
var Permissions = []Permission{
	PermViewReports,
	PermManageInventory,
	PermProcessOrders,
	PermManageStaff,
	PermConfigureMenu,
}

// Role groups permissions.
type Role struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Access      []Permission `json:"access" yaml:"access"`
}

// StaffMember is an employee with a role.
type StaffMember struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	RoleID string `json:"role_id" yaml:"role_id"`
}

// Settings holds store-wide configuration.
type Settings struct {
	Store   StoreSettings   `json:"store" yaml:"store"`
	Payment PaymentSettings `json:"payment" yaml:"payment"`
	Printer PrinterSettings `json:"printer" yaml:"printer"`
	Taxes   TaxSettings     `json:"taxes" yaml:"taxes"`
}

// StoreSettings is the storefront contact block.
type StoreSettings struct {
	Location       string `json:"location" yaml:"location"`
	Phone          string `json:"phone" yaml:"phone"`
	OperatingHours string `json:"operating_hours" yaml:"operating_hours"`
}

// PaymentSettings stores masked gateway credentials.
type PaymentSettings struct {
	StripeAPIKey   string `json:"stripe_api_key" yaml:"stripe_api_key"`
	PaypalClientID string `json:"paypal_client_id" yaml:"paypal_client_id"`
}

// PrinterSettings addresses the kitchen and receipt printers.
type PrinterSettings struct {
	KitchenPrinterIP string `json:"kitchen_printer_ip" yaml:"kitchen_printer_ip"`
	ReceiptPrinterIP string `json:"receipt_printer_ip" yaml:"receipt_printer_ip"`
}

// TaxSettings holds the sales tax percentage and registration id.
type TaxSettings struct {
	LocalSalesTax float64 `json:"local_sales_tax" yaml:"local_sales_tax"`
	TaxID         string  `json:"tax_id" yaml:"tax_id"`
}

// CategoryRevenue is total sales per menu category.
type CategoryRevenue struct {
	Name    string  `json:"name" yaml:"name"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
	Orders  int     `json:"orders" yaml:"orders"`
}

// HourlySales is one heatmap cell of order volume.
type HourlySales struct {
	Day     string  `json:"day" yaml:"day"`
	Hour    string  `json:"hour" yaml:"hour"`
	Orders  int     `json:"orders" yaml:"orders"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}
