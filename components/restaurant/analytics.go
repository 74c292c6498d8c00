package restaurant

import (
	"fmt"
	"time"
)

// HeatmapDays are the heatmap rows.
var HeatmapDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// HeatmapHours are the twelve heatmap columns, 1PM through 12AM.
var HeatmapHours = func() []string {
	hours := make([]string, 12)
	for i := range hours {
		suffix := "AM"
		if i < 8 {
			suffix = "PM"
		}
		hours[i] = fmt.Sprintf("%d%s", i+1, suffix)
	}
	return hours
}()

// MaxHeatLevel is the hottest bucket.
const MaxHeatLevel = 5

// HeatLevel buckets orders against the busiest cell into 0..MaxHeatLevel.
// Zero orders, or a peak of zero, is level 0.
func HeatLevel(orders, peak int) int {
	if orders <= 0 || peak <= 0 {
		return 0
	}
	ratio := float64(orders) / float64(peak)
	switch {
	case ratio < 0.2:
		return 1
	case ratio < 0.4:
		return 2
	case ratio < 0.6:
		return 3
	case ratio < 0.8:
		return 4
	default:
		return 5
	}
}

// HeatCell is one bucketed heatmap cell.
type HeatCell struct {
	HourlySales
	Level int `json:"level"`
	// Highlight marks cells above 70% of the peak, which show their count.
	Highlight bool `json:"highlight"`
}

// Heatmap is the day x hour grid of order volume.
type Heatmap struct {
	Days  []string     `json:"days"`
	Hours []string     `json:"hours"`
	Rows  [][]HeatCell `json:"rows"`
	Max   int          `json:"max"`
}

// BuildHeatmap lays sales out on the day x hour grid. Missing cells read as
// zero orders.
func BuildHeatmap(sales []HourlySales) Heatmap {
	lookup := make(map[string]HourlySales, len(sales))
	peak := 0
	for _, s := range sales {
		lookup[s.Day+"|"+s.Hour] = s
		peak = max(peak, s.Orders)
	}
	hm := Heatmap{Days: HeatmapDays, Hours: HeatmapHours, Max: peak}
	hm.Rows = make([][]HeatCell, len(HeatmapDays))
	for i, day := range HeatmapDays {
		row := make([]HeatCell, len(HeatmapHours))
		for j, hour := range HeatmapHours {
			cell, ok := lookup[day+"|"+hour]
			if !ok {
				cell = HourlySales{Day: day, Hour: hour}
			}
			row[j] = HeatCell{
				HourlySales: cell,
				Level:       HeatLevel(cell.Orders, peak),
				Highlight:   float64(cell.Orders) > float64(peak)*0.7,
			}
		}
		hm.Rows[i] = row
	}
	return hm
}

// Overview is the home screen summary.
type Overview struct {
	StageCounts      map[OrderStatus]int `json:"stage_counts"`
	OpenOrders       int                 `json:"open_orders"`
	Revenue          float64             `json:"revenue"`
	CompletedOrders  int                 `json:"completed_orders"`
	CancelledOrders  int                 `json:"cancelled_orders"`
	AverageTicket    float64             `json:"average_ticket"`
	LowStockCount    int                 `json:"low_stock_count"`
	ActivePromotions int                 `json:"active_promotions"`
	TopCategory      string              `json:"top_category"`
	MenuSoldOut      int                 `json:"menu_sold_out"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

// OverviewInput collects the collections summarised by BuildOverview.
type OverviewInput struct {
	Orders     []LiveOrder
	History    []HistoryOrder
	Menu       []MenuItem
	Inventory  []InventoryItem
	Promotions []Promotion
	Categories []CategoryRevenue
}

// BuildOverview computes the home screen KPIs at now.
func BuildOverview(in OverviewInput, now time.Time) Overview {
	board := GroupByStatus(in.Orders)
	ov := Overview{
		StageCounts: make(map[OrderStatus]int, len(Stages)),
		GeneratedAt: now,
	}
	for _, col := range board.Columns {
		ov.StageCounts[col.Stage.Status] = len(col.Orders)
		if !col.Stage.Terminal() {
			ov.OpenOrders += len(col.Orders)
		}
	}
	for _, order := range in.History {
		switch order.Status {
		case StatusCompleted:
			ov.Revenue += order.Total
			ov.CompletedOrders++
		case StatusCancelled:
			ov.CancelledOrders++
		}
	}
	if ov.CompletedOrders > 0 {
		ov.AverageTicket = ov.Revenue / float64(ov.CompletedOrders)
	}
	ov.LowStockCount = len(LowStock(in.Inventory))
	for _, p := range in.Promotions {
		if PromotionStatusAt(p, now) == PromotionActive {
			ov.ActivePromotions++
		}
	}
	var best float64
	for _, c := range in.Categories {
		if c.Revenue > best {
			best = c.Revenue
			ov.TopCategory = c.Name
		}
	}
	for _, item := range in.Menu {
		if item.Status == MenuSoldOut {
			ov.MenuSoldOut++
		}
	}
	return ov
}
