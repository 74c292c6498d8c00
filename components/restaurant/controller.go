package restaurant

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// DefaultTemplate is the page template rendered by the controller.
const DefaultTemplate = "restaurant.html"

var ErrUnknownScreen = errors.New("restaurant: unknown screen")

// ControllerOptions configures the page controller.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
	Charts   *ChartRenderer
	Template string
	BasePath string
}

// Controller turns screen requests into template payloads.
type Controller struct {
	service  *Service
	renderer Renderer
	charts   *ChartRenderer
	template string
	basePath string
}

// NewController wires the service into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Charts == nil {
		opts.Charts = NewChartRenderer()
	}
	if opts.BasePath == "" {
		opts.BasePath = "/admin"
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		charts:   opts.Charts,
		template: opts.Template,
		basePath: opts.BasePath,
	}
}

// PageRequest selects a screen and its rules.
type PageRequest struct {
	Screen   string
	Query    tabular.Query
	Theme    Theme
	RecordID string
}

// Column is a table header with its sort affordance.
type Column struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	Indicator tabular.Indicator `json:"indicator"`
}

var screenColumns = map[string][]Column{
	ScreenHistory: {
		{Key: FieldID, Label: "Order ID"}, {Key: FieldCustomer, Label: "Customer"}, {Key: FieldDate, Label: "Date"},
		{Key: FieldTotal, Label: "Total"}, {Key: FieldPayment, Label: "Payment"}, {Key: FieldStatus, Label: "Status"},
	},
	ScreenMenu: {
		{Key: FieldName, Label: "Item"}, {Key: FieldCategory, Label: "Category"}, {Key: FieldPrice, Label: "Price"},
		{Key: FieldStatus, Label: "Status"},
	},
	ScreenInventory: {
		{Key: FieldName, Label: "Item"}, {Key: FieldStock, Label: "Stock"}, {Key: FieldUnit, Label: "Unit"},
		{Key: FieldReorderPoint, Label: "Reorder Point"}, {Key: FieldStockLevel, Label: "Level"},
	},
	ScreenCustomers: {
		{Key: FieldName, Label: "Name"}, {Key: FieldEmail, Label: "Email"}, {Key: FieldPhone, Label: "Phone"},
		{Key: FieldTotalOrders, Label: "Orders"}, {Key: FieldLoyaltyPoints, Label: "Points"},
	},
	ScreenPromotions: {
		{Key: FieldCode, Label: "Code"}, {Key: FieldType, Label: "Type"}, {Key: FieldValue, Label: "Value"},
		{Key: FieldStartDate, Label: "Starts"}, {Key: FieldEndDate, Label: "Ends"}, {Key: FieldUsage, Label: "Usage"},
		{Key: FieldStatus, Label: "Status"},
	},
	ScreenStaff: {
		{Key: FieldName, Label: "Name"}, {Key: FieldEmail, Label: "Email"}, {Key: FieldRole, Label: "Role"},
	},
}

// Columns returns the headers of a tabular screen for the active sort.
func Columns(screen string, sort *tabular.SortRule) []Column {
	defs := screenColumns[screen]
	out := make([]Column, len(defs))
	for i, col := range defs {
		col.Indicator = tabular.IndicatorFor(sort, col.Key)
		out[i] = col
	}
	return out
}

// Page builds the template payload for a screen.
func (c *Controller) Page(ctx context.Context, req PageRequest) (map[string]any, error) {
	if c.service == nil {
		return nil, errMissingStore
	}
	if req.Screen == "" {
		req.Screen = ScreenOverview
	}
	nav, ok := NavItemFor(req.Screen)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, req.Screen)
	}
	payload := map[string]any{
		"screen":     req.Screen,
		"title":      nav.Label,
		"theme":      req.Theme,
		"theme_name": req.Theme.Name(),
		"css_vars":   req.Theme.CSSVariablesInline(),
		"base_path":  c.basePath,
		"nav":        c.navigation(req.Screen),
	}
	var err error
	switch req.Screen {
	case ScreenOverview:
		err = c.overview(ctx, payload)
	case ScreenOrders:
		err = c.orders(ctx, payload)
	case ScreenHistory:
		err = loadScreen(ctx, payload, req, c.service.OrderHistory)
		payload["status_options"] = HistoryStatusOptions
		payload["payment_options"] = PaymentOptions
	case ScreenMenu:
		err = loadScreen(ctx, payload, req, c.service.MenuItems)
		payload["categories"] = MenuCategories
	case ScreenInventory:
		err = loadScreen(ctx, payload, req, c.service.Inventory)
		if err == nil {
			payload["alerts"], err = c.service.LowStockAlerts(ctx)
		}
	case ScreenCustomers:
		err = loadScreen(ctx, payload, req, c.service.Customers)
		if err == nil && req.RecordID != "" {
			payload["detail"], err = c.service.CustomerDetail(ctx, req.RecordID)
		}
	case ScreenPromotions:
		err = loadScreen(ctx, payload, req, c.service.Promotions)
	case ScreenStaff:
		err = loadScreen(ctx, payload, req, c.service.Staff)
		if err == nil {
			payload["matrix"], err = c.service.PermissionMatrix(ctx)
		}
	case ScreenAnalytics:
		err = c.analytics(ctx, payload, req.Theme)
	case ScreenSettings:
		payload["settings"], err = c.service.Settings(ctx)
	}
	if err != nil {
		return nil, err
	}
	c.service.recordTelemetry(ctx, "restaurant.page.render", map[string]any{"screen": req.Screen})
	return payload, nil
}

// RenderTemplate renders the screen into out.
func (c *Controller) RenderTemplate(ctx context.Context, req PageRequest, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("restaurant: renderer not configured")
	}
	payload, err := c.Page(ctx, req)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, payload, out)
	return err
}

func loadScreen[R any](ctx context.Context, payload map[string]any, req PageRequest, fetch func(context.Context, tabular.Query) (tabular.Result[R], error)) error {
	loader := Loader[R]{Name: req.Screen, Fetch: fetch}
	screen, err := loader.Load(ctx, req.Query, req.Theme)
	if err != nil {
		return err
	}
	payload["view"] = screen
	payload["columns"] = Columns(req.Screen, screen.Query.Sort)
	filters := map[string]string{}
	for _, rule := range screen.Query.Filters {
		switch rule.Kind {
		case tabular.FilterSearch:
			payload["search"] = rule.Value
		case tabular.FilterEquals:
			filters[rule.Field] = rule.Value
		}
	}
	payload["filters"] = filters
	return nil
}

func (c *Controller) navigation(active string) []map[string]any {
	out := make([]map[string]any, len(Navigation))
	for i, item := range Navigation {
		out[i] = map[string]any{
			"label":  item.Label,
			"icon":   item.Icon,
			"href":   item.Href(c.basePath),
			"active": item.Screen == active,
		}
	}
	return out
}

func (c *Controller) overview(ctx context.Context, payload map[string]any) error {
	overview, err := c.service.Overview(ctx)
	if err != nil {
		return err
	}
	payload["overview"] = overview
	return c.orders(ctx, payload)
}

func (c *Controller) orders(ctx context.Context, payload map[string]any) error {
	board, err := c.service.LiveBoard(ctx)
	if err != nil {
		return err
	}
	payload["board"] = board
	return nil
}

func (c *Controller) analytics(ctx context.Context, payload map[string]any, theme Theme) error {
	categories, err := c.service.CategoryRevenue(ctx, AnalyticsQuery{})
	if err != nil {
		return err
	}
	heatmap, err := c.service.HourlyHeatmap(ctx, AnalyticsQuery{})
	if err != nil {
		return err
	}
	history, err := c.service.OrderHistory(ctx, tabular.Query{})
	if err != nil {
		return err
	}
	charts := map[string]string{}
	if charts["category_revenue"], err = c.charts.CategoryRevenueChart(categories, theme); err != nil {
		return err
	}
	if charts["category_share"], err = c.charts.CategoryShareChart(categories, theme); err != nil {
		return err
	}
	if charts["revenue_trend"], err = c.charts.RevenueTrendChart(history.Rows, theme); err != nil {
		return err
	}
	if charts["hourly_heatmap"], err = c.charts.HeatmapChart(heatmap, theme); err != nil {
		return err
	}
	payload["categories"] = categories
	payload["heatmap"] = heatmap
	payload["charts"] = charts
	payload["reports"] = ReportCatalog
	return nil
}
