package restaurant

// StockLevel is the health tier of an inventory item.
type StockLevel string

const (
	StockCritical StockLevel = "Critical"
	StockLow      StockLevel = "Low"
	StockHealthy  StockLevel = "Healthy"
)

// ClassifyStock tiers stock against its reorder point: at or below the point
// is Critical, up to twice the point is Low, anything above is Healthy.
func ClassifyStock(stock, reorderPoint float64) StockLevel {
	switch {
	case stock <= reorderPoint:
		return StockCritical
	case stock <= 2*reorderPoint:
		return StockLow
	default:
		return StockHealthy
	}
}

// Level classifies the item.
func (i InventoryItem) Level() StockLevel {
	return ClassifyStock(i.Stock, i.ReorderPoint)
}

// NeedsReorder reports alert membership.
func (i InventoryItem) NeedsReorder() bool {
	return i.Stock <= i.ReorderPoint
}

// LowStock returns the items at or below their reorder point, in input order.
func LowStock(items []InventoryItem) []InventoryItem {
	out := make([]InventoryItem, 0)
	for _, item := range items {
		if item.NeedsReorder() {
			out = append(out, item)
		}
	}
	return out
}
