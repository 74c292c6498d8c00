package reports

import (
	"slices"
	"strconv"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// Table is one sheet of a report.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type dayTotals struct {
	orders, completed, cancelled int
	revenue                      float64
}

// DailySales summarises history per calendar day, oldest first. Revenue only
// counts completed orders.
func DailySales(history []restaurant.HistoryOrder) Table {
	days := map[string]*dayTotals{}
	for _, order := range history {
		key := order.Date.UTC().Format(time.DateOnly)
		totals, ok := days[key]
		if !ok {
			totals = &dayTotals{}
			days[key] = totals
		}
		totals.orders++
		switch order.Status {
		case restaurant.StatusCompleted:
			totals.completed++
			totals.revenue += order.Total
		case restaurant.StatusCancelled:
			totals.cancelled++
		}
	}
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	table := Table{
		Name:   "Daily Sales",
		Header: []string{"Date", "Orders", "Completed", "Cancelled", "Revenue"},
	}
	for _, key := range keys {
		t := days[key]
		table.Rows = append(table.Rows, []string{
			key,
			strconv.Itoa(t.orders),
			strconv.Itoa(t.completed),
			strconv.Itoa(t.cancelled),
			money(t.revenue),
		})
	}
	return table
}

// MonthlyRevenue breaks completed revenue down by month and payment method.
func MonthlyRevenue(history []restaurant.HistoryOrder) Table {
	type key struct {
		month   string
		payment restaurant.PaymentMethod
	}
	sums := map[key]*dayTotals{}
	for _, order := range history {
		if order.Status != restaurant.StatusCompleted {
			continue
		}
		k := key{month: order.Date.UTC().Format("2006-01"), payment: order.Payment}
		totals, ok := sums[k]
		if !ok {
			totals = &dayTotals{}
			sums[k] = totals
		}
		totals.orders++
		totals.revenue += order.Total
	}
	keys := make([]key, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b key) int {
		if a.month != b.month {
			if a.month < b.month {
				return -1
			}
			return 1
		}
		return slices.Index(restaurant.PaymentOptions, string(a.payment)) - slices.Index(restaurant.PaymentOptions, string(b.payment))
	})
	table := Table{
		Name:   "Monthly Revenue",
		Header: []string{"Month", "Payment", "Orders", "Revenue"},
	}
	for _, k := range keys {
		t := sums[k]
		table.Rows = append(table.Rows, []string{k.month, string(k.payment), strconv.Itoa(t.orders), money(t.revenue)})
	}
	return table
}

// CategoryTable lists revenue and orders per category.
func CategoryTable(categories []restaurant.CategoryRevenue) Table {
	table := Table{Name: "Categories", Header: []string{"Category", "Revenue", "Orders"}}
	for _, c := range categories {
		table.Rows = append(table.Rows, []string{c.Name, money(c.Revenue), strconv.Itoa(c.Orders)})
	}
	return table
}

// PeakHoursTable lays the heatmap out as a day x hour grid of order counts.
func PeakHoursTable(hm restaurant.Heatmap) Table {
	table := Table{Name: "Peak Hours", Header: append([]string{"Day"}, hm.Hours...)}
	for i, row := range hm.Rows {
		line := make([]string, 0, len(row)+1)
		line = append(line, hm.Days[i])
		for _, cell := range row {
			line = append(line, strconv.Itoa(cell.Orders))
		}
		table.Rows = append(table.Rows, line)
	}
	return table
}

// OutcomeTable counts history orders and totals per status.
func OutcomeTable(history []restaurant.HistoryOrder) Table {
	order := []restaurant.OrderStatus{}
	totals := map[restaurant.OrderStatus]*dayTotals{}
	for _, o := range history {
		t, ok := totals[o.Status]
		if !ok {
			t = &dayTotals{}
			totals[o.Status] = t
			order = append(order, o.Status)
		}
		t.orders++
		t.revenue += o.Total
	}
	table := Table{Name: "Outcomes", Header: []string{"Status", "Orders", "Total"}}
	for _, status := range order {
		t := totals[status]
		table.Rows = append(table.Rows, []string{string(status), strconv.Itoa(t.orders), money(t.revenue)})
	}
	return table
}
