package restaurant

import (
	"math/rand/v2"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// DefaultHourlySeed seeds the demo heatmap so every run renders the same grid.
const DefaultHourlySeed uint64 = 7432

// DefaultFixtures returns the demo data set the dashboard ships with.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Version:     fixturesVersionV1,
		Orders:      defaultOrders(),
		History:     defaultHistory(),
		Menu:        defaultMenu(),
		Inventory:   defaultInventory(),
		Customers:   defaultCustomers(),
		Promotions:  defaultPromotions(),
		Roles:       defaultRoles(),
		Staff:       defaultStaff(),
		Settings:    defaultSettings(),
		Categories:  defaultCategories(),
		HourlySales: GenerateHourlySales(DefaultHourlySeed),
	}
}

func defaultOrders() []LiveOrder {
	return []LiveOrder{
		{ID: "ORD-7432", Customer: "Alice Johnson", TimePlaced: "10:05 AM", Items: []string{"Smash Burger (x1)", "Large Fries (x1)"}, Status: StatusPending},
		{ID: "ORD-7431", Customer: "Bob Smith", TimePlaced: "09:55 AM", Items: []string{"Veggie Wrap (x2)", "Soda (x2)"}, Status: StatusPreparing},
		{ID: "ORD-7430", Customer: "Charlie Brown", TimePlaced: "09:40 AM", Items: []string{"Chicken Sandwich (x1)"}, Status: StatusReady},
		{ID: "ORD-7429", Customer: "Diana Prince", TimePlaced: "09:20 AM", Items: []string{"Milkshake (x3)"}, Status: StatusCompleted},
		{ID: "ORD-7428", Customer: "Elias Vance", TimePlaced: "09:15 AM", Items: []string{"Classic Burger (x1)", "Small Fries (x1)"}, Status: StatusPreparing},
		{ID: "ORD-7427", Customer: "Fiona Glenanne", TimePlaced: "10:08 AM", Items: []string{"Steak Sandwich (x1)"}, Status: StatusPending},
	}
}

func defaultHistory() []HistoryOrder {
	return []HistoryOrder{
		{ID: "ORD-7429", Customer: "Diana Prince", Total: 45.00, Date: mustDate("2024-11-28 14:30"), Status: StatusCompleted, Payment: PaymentCard},
		{ID: "ORD-7428", Customer: "Elias Vance", Total: 22.50, Date: mustDate("2024-11-28 10:15"), Status: StatusCompleted, Payment: PaymentCash},
		{ID: "ORD-7427", Customer: "Fiona Glenanne", Total: 18.99, Date: mustDate("2024-11-27 19:45"), Status: StatusCompleted, Payment: PaymentApp},
		{ID: "ORD-7426", Customer: "George Lucas", Total: 8.50, Date: mustDate("2024-11-27 12:00"), Status: StatusCancelled, Payment: PaymentCard},
		{ID: "ORD-7425", Customer: "Hannah Baker", Total: 35.75, Date: mustDate("2024-11-26 15:30"), Status: StatusCompleted, Payment: PaymentCard},
		{ID: "ORD-7424", Customer: "Ian Malcolm", Total: 60.00, Date: mustDate("2024-11-26 09:00"), Status: StatusCompleted, Payment: PaymentCash},
		{ID: "ORD-7423", Customer: "Jenny Fox", Total: 12.99, Date: mustDate("2024-11-25 18:10"), Status: StatusCancelled, Payment: PaymentCard},
		{ID: "ORD-7422", Customer: "Kyle Reese", Total: 29.99, Date: mustDate("2024-11-25 11:55"), Status: StatusCompleted, Payment: PaymentApp},
		{ID: "ORD-7421", Customer: "Lois Lane", Total: 55.00, Date: mustDate("2024-11-24 16:20"), Status: StatusCompleted, Payment: PaymentCash},
		{ID: "ORD-7420", Customer: "Clark Kent", Total: 15.20, Date: mustDate("2024-11-24 10:40"), Status: StatusCompleted, Payment: PaymentCard},
	}
}

func defaultMenu() []MenuItem {
	img := func(text string) string {
		return "https://placehold.co/400x300/FEE2E2/B91C1C?text=" + text
	}
	return []MenuItem{
		{ID: "M-001", Name: "Classic Smash Burger", Price: 8.99, Category: "Main", Status: MenuAvailable, ImageURL: img("Burger")},
		{ID: "M-002", Name: "Spicy Chicken Sandwich", Price: 7.99, Category: "Main", Status: MenuAvailable, ImageURL: img("Chicken")},
		{ID: "M-003", Name: "Large Fries", Price: 3.50, Category: "Side", Status: MenuAvailable, ImageURL: img("Fries")},
		{ID: "M-004", Name: "Chocolate Milkshake", Price: 4.00, Category: "Dessert", Status: MenuSoldOut, ImageURL: img("Milkshake")},
		{ID: "M-005", Name: "Veggie Supreme Wrap", Price: 7.50, Category: "Vegan", Status: MenuAvailable, ImageURL: img("Wrap")},
	}
}

func defaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "I-001", Name: "Brioche Buns", Stock: 50, Unit: "Units", ReorderPoint: 100},
		{ID: "I-002", Name: "Beef Patties (1/4 lb)", Stock: 250, Unit: "Units", ReorderPoint: 300},
		{ID: "I-003", Name: "Lettuce (Romaine)", Stock: 5, Unit: "Heads", ReorderPoint: 10},
		{ID: "I-004", Name: "Tomato Slices", Stock: 15, Unit: "KG", ReorderPoint: 20},
		{ID: "I-005", Name: "Frying Oil", Stock: 20, Unit: "Liters", ReorderPoint: 10},
		{ID: "I-006", Name: "Chocolate Syrup", Stock: 80, Unit: "ML", ReorderPoint: 500},
		{ID: "I-007", Name: "Sweet Potato Fries", Stock: 150, Unit: "Packs", ReorderPoint: 100},
	}
}

func defaultCustomers() []Customer {
	return []Customer{
		{ID: "C-001", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-1234", TotalOrders: 15, LoyaltyPoints: 450, History: []CustomerOrder{
			{OrderID: "ORD-7432", Date: mustDate("2024-11-28"), Total: 25.50, Items: []string{"Smash Burger (x1)", "Large Fries (x1)"}},
			{OrderID: "ORD-7401", Date: mustDate("2024-11-10"), Total: 12.00, Items: []string{"Chocolate Milkshake (x3)"}},
		}},
		{ID: "C-002", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-5678", TotalOrders: 7, LoyaltyPoints: 210, History: []CustomerOrder{
			{OrderID: "ORD-7431", Date: mustDate("2024-11-28"), Total: 32.50, Items: []string{"Veggie Wrap (x2)", "Soda (x2)"}},
		}},
		{ID: "C-003", Name: "Charlie Brown", Email: "charlie@example.com", Phone: "555-9012", TotalOrders: 3, LoyaltyPoints: 90, History: []CustomerOrder{}},
		{ID: "C-004", Name: "Diana Prince", Email: "diana@example.com", Phone: "555-3456", TotalOrders: 22, LoyaltyPoints: 660, History: []CustomerOrder{
			{OrderID: "ORD-7429", Date: mustDate("2024-11-28"), Total: 45.00, Items: []string{"Milkshake (x3)", "Veggie Wrap (x1)"}},
		}},
		{ID: "C-005", Name: "Elias Vance", Email: "elias@example.com", Phone: "555-7890", TotalOrders: 10, LoyaltyPoints: 300, History: []CustomerOrder{
			{OrderID: "ORD-7428", Date: mustDate("2024-11-28"), Total: 22.50, Items: []string{"Classic Burger (x1)", "Small Fries (x1)"}},
		}},
	}
}

func defaultPromotions() []Promotion {
	return []Promotion{
		{ID: "P-001", Code: "LUNCH50", Type: DiscountPercentage, Value: 50, StartDate: mustDate("2024-11-01"), EndDate: mustDate("2024-12-31"), MinOrder: 15, Usage: 145},
		{ID: "P-002", Code: "WELCOME10", Type: DiscountFlat, Value: 10, StartDate: mustDate("2024-01-01"), EndDate: mustDate("2025-12-31"), MinOrder: 0, Usage: 890, FirstTimeUser: true},
		{ID: "P-003", Code: "BURGERDAY", Type: DiscountPercentage, Value: 20, StartDate: mustDate("2024-12-25"), EndDate: mustDate("2024-12-26"), MinOrder: 20, Usage: 0},
		{ID: "P-004", Code: "SUMMER_FUN", Type: DiscountFlat, Value: 5, StartDate: mustDate("2024-06-01"), EndDate: mustDate("2024-08-31"), MinOrder: 10, Usage: 320},
		{ID: "P-005", Code: "FREESHIP", Type: DiscountFlat, Value: 3.99, StartDate: mustDate("2024-11-20"), EndDate: mustDate("2024-11-30"), MinOrder: 25, Usage: 45},
	}
}

func defaultRoles() []Role {
	return []Role{
		{ID: "manager", Name: "Manager", Description: "Full operational control and reporting.", Access: append([]Permission(nil), Permissions...)},
		{ID: "cashier", Name: "Cashier", Description: "Handles order processing only.", Access: []Permission{PermProcessOrders}},
		{ID: "driver", Name: "Driver", Description: "Views orders for delivery.", Access: []Permission{PermProcessOrders}},
	}
}

func defaultStaff() []StaffMember {
	return []StaffMember{
		{ID: "s1", Name: "Alice Johnson", Email: "alice.j@corp.com", RoleID: "manager"},
		{ID: "s2", Name: "Bob Smith", Email: "bob.s@corp.com", RoleID: "cashier"},
		{ID: "s3", Name: "Charlie Driver", Email: "charlie.d@corp.com", RoleID: "driver"},
	}
}

func defaultSettings() Settings {
	return Settings{
		Store: StoreSettings{
			Location:       "123 Main St, Anytown, CA 90210",
			Phone:          "(555) 123-4567",
			OperatingHours: "Mon-Fri: 9am - 5pm, Sat: 10am - 2pm",
		},
		Payment: PaymentSettings{
			StripeAPIKey:   "sk_test_************************",
			PaypalClientID: "AZX-************************",
		},
		Printer: PrinterSettings{
			KitchenPrinterIP: "192.168.1.101",
			ReceiptPrinterIP: "192.168.1.102",
		},
		Taxes: TaxSettings{
			LocalSalesTax: 8.25,
			TaxID:         "TX-123456789",
		},
	}
}

func defaultCategories() []CategoryRevenue {
	return []CategoryRevenue{
		{Name: "Appetizers", Revenue: 4500, Orders: 850},
		{Name: "Main Courses", Revenue: 15500, Orders: 1200},
		{Name: "Drinks", Revenue: 7200, Orders: 2500},
		{Name: "Desserts", Revenue: 3800, Orders: 600},
		{Name: "Sides", Revenue: 2100, Orders: 750},
	}
}

// GenerateHourlySales produces a week of hourly sales. Friday and Saturday
// run at roughly twice the weekday volume. The same seed yields the same data.
func GenerateHourlySales(seed uint64) []HourlySales {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]HourlySales, 0, len(HeatmapDays)*len(HeatmapHours))
	for _, day := range HeatmapDays {
		peakOrders, peakRevenue := 60, 1000
		if day == "Fri" || day == "Sat" {
			peakOrders, peakRevenue = 120, 2500
		}
		for _, hour := range HeatmapHours {
			out = append(out, HourlySales{
				Day:     day,
				Hour:    hour,
				Orders:  rng.IntN(peakOrders),
				Revenue: float64(rng.IntN(peakRevenue)),
			})
		}
	}
	return out
}

func mustDate(value string) time.Time {
	t, ok := tabular.ParseTime(value)
	if !ok {
		panic("restaurant: invalid fixture date " + value)
	}
	return t
}
