package restaurant

// Form names double as JSON schema resource names.
const (
	FormMenuItem     = "menu_item"
	FormStockReceipt = "stock_receipt"
	FormPromotion    = "promotion"
	FormStaff        = "staff"
	FormRole         = "role"
	FormSettings     = "settings"
)

// MenuItemInput creates a menu item when ID is empty, otherwise merges into
// the existing item.
type MenuItemInput struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
	ImageURL string  `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// StockReceipt adds Quantity units to an inventory item.
type StockReceipt struct {
	ItemID   string  `json:"item_id" yaml:"item_id"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// PromotionInput describes a new promotion. Dates use YYYY-MM-DD.
type PromotionInput struct {
	Code          string       `json:"code" yaml:"code"`
	Type          DiscountType `json:"type" yaml:"type"`
	Value         float64      `json:"value" yaml:"value"`
	StartDate     string       `json:"start_date" yaml:"start_date"`
	EndDate       string       `json:"end_date" yaml:"end_date"`
	MinOrder      float64      `json:"min_order" yaml:"min_order"`
	FirstTimeUser bool         `json:"first_time_user" yaml:"first_time_user"`
}

// StaffInput creates a staff member when ID is empty, otherwise updates it.
type StaffInput struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	RoleID string `json:"role_id" yaml:"role_id"`
}

// RoleInput creates a role when ID is empty, otherwise updates it.
type RoleInput struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Access      []Permission `json:"access" yaml:"access"`
}
