package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/httpapi"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/queries"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)

type listCmd struct {
	Screen string            `arg:"" enum:"orders,history,menu,inventory,customers,promotions,staff" help:"Screen to list (${enum})."`
	Search string            `short:"q" help:"Search term over the screen's search fields."`
	Filter map[string]string `short:"f" help:"Equality filter as field=value. All clears it."`
	Sort   string            `short:"s" help:"Sort field."`
	Desc   bool              `help:"Sort descending."`
	From   string            `help:"Start of the date range (history only)."`
	To     string            `help:"End of the date range (history only)."`
	Offset int               `help:"Rows to skip."`
	Limit  int               `help:"Page size. Zero lists every matching row."`
	Output string            `short:"o" default:"table" enum:"table,json,yaml" help:"Output format (${enum})."`
}

func (cmd *listCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	q, err := httpapi.ParseQuery(cmd.Screen, cmd.params(), s.app.Service.Now())
	if err != nil {
		return err
	}
	list, err := collect(ctx, s.app.Service, cmd.Screen, q)
	if err != nil {
		return err
	}
	return list.write(s.out, cmd.Output)
}

// params adapts flags to the list parameter names the HTTP API reads.
func (cmd *listCmd) params() func(string) string {
	values := map[string]string{
		"q":    cmd.Search,
		"sort": strcase.ToSnake(cmd.Sort),
		"from": cmd.From,
		"to":   cmd.To,
	}
	if cmd.Sort != "" {
		values["dir"] = string(tabular.Ascending)
		if cmd.Desc {
			values["dir"] = string(tabular.Descending)
		}
	}
	if cmd.Offset > 0 {
		values["offset"] = strconv.Itoa(cmd.Offset)
	}
	if cmd.Limit > 0 {
		values["limit"] = strconv.Itoa(cmd.Limit)
	}
	for field, value := range cmd.Filter {
		values[strcase.ToSnake(field)] = value
	}
	return func(key string) string { return values[key] }
}

// listing is a rendered page of one screen.
type listing struct {
	Screen  string            `json:"screen" yaml:"screen"`
	Columns []string          `json:"columns" yaml:"columns"`
	Rows    [][]string        `json:"rows" yaml:"rows"`
	Total   int               `json:"total" yaml:"total"`
	Matched int               `json:"matched" yaml:"matched"`
	Page    tabular.Page      `json:"page" yaml:"page"`
	Records any               `json:"records" yaml:"records"`
	Sort    *tabular.SortRule `json:"sort,omitempty" yaml:"sort,omitempty"`
}

type column[R any] struct {
	key  string
	cell func(R) string
}

func tabulate[R any](screen string, q tabular.Query, res tabular.Result[R], cols []column[R]) listing {
	out := listing{
		Screen:  screen,
		Total:   res.Total,
		Matched: res.Matched,
		Page:    res.Page,
		Records: res.Rows,
		Sort:    q.Sort,
	}
	for _, col := range cols {
		out.Columns = append(out.Columns, col.key)
	}
	for _, row := range res.Rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = col.cell(row)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

func collect(ctx context.Context, svc *restaurant.Service, screen string, q tabular.Query) (listing, error) {
	switch screen {
	case restaurant.ScreenOrders:
		res, err := svc.LiveOrders(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.LiveOrder]{
			{restaurant.FieldID, func(o restaurant.LiveOrder) string { return o.ID }},
			{restaurant.FieldCustomer, func(o restaurant.LiveOrder) string { return o.Customer }},
			{restaurant.FieldTimePlaced, func(o restaurant.LiveOrder) string { return o.TimePlaced }},
			{restaurant.FieldItems, func(o restaurant.LiveOrder) string { return strings.Join(o.Items, ", ") }},
			{restaurant.FieldStatus, func(o restaurant.LiveOrder) string { return string(o.Status) }},
		}), err
	case restaurant.ScreenHistory:
		res, err := svc.OrderHistory(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.HistoryOrder]{
			{restaurant.FieldID, func(o restaurant.HistoryOrder) string { return o.ID }},
			{restaurant.FieldCustomer, func(o restaurant.HistoryOrder) string { return o.Customer }},
			{restaurant.FieldDate, func(o restaurant.HistoryOrder) string { return o.Date.Format(time.DateOnly) }},
			{restaurant.FieldTotal, func(o restaurant.HistoryOrder) string { return formatMoney(o.Total) }},
			{restaurant.FieldPayment, func(o restaurant.HistoryOrder) string { return string(o.Payment) }},
			{restaurant.FieldStatus, func(o restaurant.HistoryOrder) string { return string(o.Status) }},
		}), err
	case restaurant.ScreenMenu:
		res, err := svc.MenuItems(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.MenuItem]{
			{restaurant.FieldID, func(m restaurant.MenuItem) string { return m.ID }},
			{restaurant.FieldName, func(m restaurant.MenuItem) string { return m.Name }},
			{restaurant.FieldCategory, func(m restaurant.MenuItem) string { return m.Category }},
			{restaurant.FieldPrice, func(m restaurant.MenuItem) string { return formatMoney(m.Price) }},
			{restaurant.FieldStatus, func(m restaurant.MenuItem) string { return string(m.Status) }},
		}), err
	case restaurant.ScreenInventory:
		res, err := svc.Inventory(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.InventoryItem]{
			{restaurant.FieldID, func(i restaurant.InventoryItem) string { return i.ID }},
			{restaurant.FieldName, func(i restaurant.InventoryItem) string { return i.Name }},
			{restaurant.FieldStock, func(i restaurant.InventoryItem) string { return formatQuantity(i.Stock) + " " + i.Unit }},
			{restaurant.FieldReorderPoint, func(i restaurant.InventoryItem) string { return formatQuantity(i.ReorderPoint) }},
			{restaurant.FieldStockLevel, func(i restaurant.InventoryItem) string { return string(i.Level()) }},
		}), err
	case restaurant.ScreenCustomers:
		res, err := svc.Customers(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.Customer]{
			{restaurant.FieldID, func(c restaurant.Customer) string { return c.ID }},
			{restaurant.FieldName, func(c restaurant.Customer) string { return c.Name }},
			{restaurant.FieldEmail, func(c restaurant.Customer) string { return c.Email }},
			{restaurant.FieldTotalOrders, func(c restaurant.Customer) string { return strconv.Itoa(c.TotalOrders) }},
			{restaurant.FieldLoyaltyPoints, func(c restaurant.Customer) string { return strconv.Itoa(c.LoyaltyPoints) }},
		}), err
	case restaurant.ScreenPromotions:
		res, err := svc.Promotions(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.PromotionView]{
			{restaurant.FieldCode, func(p restaurant.PromotionView) string { return p.Code }},
			{restaurant.FieldType, func(p restaurant.PromotionView) string { return string(p.Type) }},
			{restaurant.FieldValue, func(p restaurant.PromotionView) string { return formatQuantity(p.Value) }},
			{restaurant.FieldEndDate, func(p restaurant.PromotionView) string { return p.EndDate.Format(time.DateOnly) }},
			{restaurant.FieldUsage, func(p restaurant.PromotionView) string { return strconv.Itoa(p.Usage) }},
			{restaurant.FieldStatus, func(p restaurant.PromotionView) string { return string(p.Status) }},
		}), err
	case restaurant.ScreenStaff:
		res, err := svc.Staff(ctx, q)
		return tabulate(screen, q, res, []column[restaurant.StaffView]{
			{restaurant.FieldID, func(s restaurant.StaffView) string { return s.ID }},
			{restaurant.FieldName, func(s restaurant.StaffView) string { return s.Name }},
			{restaurant.FieldEmail, func(s restaurant.StaffView) string { return s.Email }},
			{restaurant.FieldRole, func(s restaurant.StaffView) string { return s.Role }},
		}), err
	}
	return listing{}, fmt.Errorf("%w: %s", restaurant.ErrUnknownScreen, screen)
}

func (l listing) write(w io.Writer, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(l)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(l); err != nil {
			return err
		}
		return encoder.Close()
	}
	_, err := fmt.Fprintln(w, l.render())
	return err
}

// render draws the listing as a bordered table with a match summary.
func (l listing) render() string {
	headers := make([]string, len(l.Columns))
	for i, key := range l.Columns {
		headers[i] = strcase.ToCase(key, strcase.TitleCase, ' ')
		switch tabular.IndicatorFor(l.Sort, key) {
		case tabular.SortedUp:
			headers[i] += " ▲"
		case tabular.SortedDown:
			headers[i] += " ▼"
		}
	}
	tbl := table.New().
		Headers(headers...).
		Rows(l.Rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	summary := fmt.Sprintf("%d of %d matching, %d total", len(l.Rows), l.Matched, l.Total)
	return tbl.Render() + "\n" + mutedStyle.Render(summary)
}

type exportCmd struct {
	Code        string `arg:"" enum:"daily_sales,weekly_performance,monthly_revenue" help:"Report code (${enum})."`
	Compression string `short:"z" help:"Compression: gzip, zstd or xz."`
	Out         string `short:"o" type:"path" help:"Output file or directory. Defaults to the report name in the working directory."`
}

func (cmd *exportCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	file, err := s.app.Queries.Report.Query(ctx, queries.ReportInput{Code: cmd.Code, Compression: cmd.Compression})
	if err != nil {
		return err
	}
	path := file.Name
	if cmd.Out != "" {
		path = cmd.Out
		if info, err := os.Stat(cmd.Out); err == nil && info.IsDir() {
			path = filepath.Join(cmd.Out, file.Name)
		}
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("fastfoodctl: write %s: %w", path, err)
	}
	fmt.Fprintf(s.out, "✓ Wrote %s (%s, %d bytes)\n", path, file.ContentType, len(file.Data))
	return nil
}

func formatMoney(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
