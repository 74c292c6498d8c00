// Package fastfood wires the restaurant admin into one ready-to-mount app.
package fastfood

import (
	"context"
	"errors"
	"time"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/gorouter"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/httpapi"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/queries"
	"github.com/goliatone/go-fastfood-admin/pkg/reports"
)

// Service exposes the underlying components/restaurant.Service type.
type Service = restaurant.Service

// Options re-export for convenience.
type Options = restaurant.Options

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return restaurant.NewService(opts)
}

// Config assembles an App.
type Config struct {
	Service Options
	// Renderer defaults to the embedded templates.
	Renderer restaurant.Renderer
	// TemplatesDir shadows bundled templates when Renderer is nil.
	TemplatesDir string
	BasePath     string
	// ChartCacheTTL of zero keeps the renderer default, negative disables caching.
	ChartCacheTTL    time.Duration
	ChartAssetsHost  string
	CommandTelemetry commands.Telemetry
	// Theme is the default for requests without a ?theme override.
	Theme restaurant.Theme
}

// App bundles the service with its controller, commands, queries and notice fan-out.
type App struct {
	Service    *Service
	Controller *restaurant.Controller
	Broadcast  *restaurant.BroadcastHook
	Handlers   *httpapi.Handlers
	Executor   httpapi.Executor
	Queries    gorouter.Queries
	Exporter   *reports.Exporter
	Seed       *commands.SeedFixturesCommand
	basePath   string
	theme      restaurant.Theme
}

// New builds an App. Notices reach both the broadcast hub and any
// NoticeHook already set in cfg.Service.
func New(cfg Config) (*App, error) {
	if cfg.Service.Store == nil {
		return nil, errors.New("fastfood: store is required")
	}
	broadcast := restaurant.NewBroadcastHook()
	opts := cfg.Service
	opts.NoticeHook = fanOut(broadcast, opts.NoticeHook)
	svc := restaurant.NewService(opts)

	renderer := cfg.Renderer
	if renderer == nil {
		var err error
		if renderer, err = restaurant.NewTemplateRenderer(cfg.TemplatesDir); err != nil {
			return nil, err
		}
	}
	var chartOpts []restaurant.ChartOption
	switch {
	case cfg.ChartCacheTTL < 0:
		chartOpts = append(chartOpts, restaurant.WithChartCache(restaurant.NewChartCache(0)))
	case cfg.ChartCacheTTL > 0:
		chartOpts = append(chartOpts, restaurant.WithChartCache(restaurant.NewChartCache(cfg.ChartCacheTTL)))
	}
	if cfg.ChartAssetsHost != "" {
		chartOpts = append(chartOpts, restaurant.WithChartAssetsHost(cfg.ChartAssetsHost))
	}
	controller := restaurant.NewController(restaurant.ControllerOptions{
		Service:  svc,
		Renderer: renderer,
		Charts:   restaurant.NewChartRenderer(chartOpts...),
		BasePath: cfg.BasePath,
	})

	tel := cfg.CommandTelemetry
	handlers := &httpapi.Handlers{
		AdvanceOrder:    commands.NewAdvanceOrderCommand(svc, tel),
		SaveMenuItem:    commands.NewSaveMenuItemCommand(svc, tel),
		ToggleMenuItem:  commands.NewToggleMenuItemCommand(svc, tel),
		ReceiveStock:    commands.NewReceiveStockCommand(svc, tel),
		CreatePromotion: commands.NewCreatePromotionCommand(svc, tel),
		DeletePromotion: commands.NewDeletePromotionCommand(svc, tel),
		SaveStaff:       commands.NewSaveStaffCommand(svc, tel),
		DeleteStaff:     commands.NewDeleteStaffCommand(svc, tel),
		SaveRole:        commands.NewSaveRoleCommand(svc, tel),
		DeleteRole:      commands.NewDeleteRoleCommand(svc, tel),
		SaveSettings:    commands.NewSaveSettingsCommand(svc, tel),
	}
	exporter := reports.NewExporter(svc, reports.WithClock(svc.Now))

	return &App{
		Service:    svc,
		Controller: controller,
		Broadcast:  broadcast,
		Handlers:   handlers,
		Executor:   httpapi.NewExecutor(handlers),
		Queries: gorouter.Queries{
			Board:    queries.NewBoardQuery(svc),
			Customer: queries.NewCustomerDetailQuery(svc),
			Report:   queries.NewReportQuery(exporter),
		},
		Exporter: exporter,
		Seed:     commands.NewSeedFixturesCommand(svc, tel),
		basePath: cfg.BasePath,
		theme:    cfg.Theme,
	}, nil
}

// Mount registers the app's HTML, JSON and WebSocket routes.
func Mount[T any](app *App, r router.Router[T]) error {
	if app == nil {
		return errors.New("fastfood: app is required")
	}
	return gorouter.Register(gorouter.Config[T]{
		Router:        r,
		Controller:    app.Controller,
		API:           app.Executor,
		Queries:       app.Queries,
		Broadcast:     app.Broadcast,
		ThemeResolver: gorouter.ThemeFromRequest(app.theme),
		BasePath:      app.basePath,
		Clock:         app.Service.Now,
	})
}

func fanOut(hooks ...restaurant.NoticeHook) restaurant.NoticeHook {
	return restaurant.NoticeHookFunc(func(ctx context.Context, notice restaurant.Notice) error {
		var errs []error
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			if err := hook.Notice(ctx, notice); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
