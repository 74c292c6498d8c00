package restaurant

import "strings"

// Screen codes.
const (
	ScreenOverview   = "overview"
	ScreenOrders     = "orders"
	ScreenHistory    = "history"
	ScreenMenu       = "menu"
	ScreenInventory  = "inventory"
	ScreenCustomers  = "customers"
	ScreenPromotions = "promotions"
	ScreenAnalytics  = "analytics"
	ScreenStaff      = "staff"
	ScreenSettings   = "settings"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Screen string `json:"screen"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Path   string `json:"path"`
}

// Navigation is the sidebar in display order. Paths are relative to the
// admin base path.
var Navigation = []NavItem{
	{Screen: ScreenOverview, Label: "Dashboard", Icon: "fa-chart-bar", Path: ""},
	{Screen: ScreenOrders, Label: "Live Orders", Icon: "fa-bell", Path: "orders"},
	{Screen: ScreenHistory, Label: "Order History", Icon: "fa-history", Path: "history"},
	{Screen: ScreenMenu, Label: "Food Menu", Icon: "fa-burger", Path: "menu"},
	{Screen: ScreenInventory, Label: "Inventory", Icon: "fa-boxes", Path: "inventory"},
	{Screen: ScreenCustomers, Label: "Customers", Icon: "fa-users", Path: "customers"},
	{Screen: ScreenPromotions, Label: "Offers & Promos", Icon: "fa-tags", Path: "promotions"},
	{Screen: ScreenAnalytics, Label: "Analytics", Icon: "fa-chart-bar", Path: "analytics"},
	{Screen: ScreenStaff, Label: "Team & Staff", Icon: "fa-id-card", Path: "staff"},
	{Screen: ScreenSettings, Label: "Settings", Icon: "fa-gear", Path: "settings"},
}

// NavItemFor looks up a screen's nav entry.
func NavItemFor(screen string) (NavItem, bool) {
	for _, item := range Navigation {
		if item.Screen == screen {
			return item, true
		}
	}
	return NavItem{}, false
}

// Href joins base and the item path.
func (n NavItem) Href(base string) string {
	base = "/" + strings.Trim(base, "/")
	if n.Path == "" {
		return base
	}
	if base == "/" {
		return "/" + n.Path
	}
	return base + "/" + n.Path
}
