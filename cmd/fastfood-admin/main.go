package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/goliatone/go-fastfood-admin/pkg/activity/usersink"
	"github.com/goliatone/go-fastfood-admin/pkg/analytics"
	"github.com/goliatone/go-fastfood-admin/pkg/fastfood"
	"github.com/goliatone/go-fastfood-admin/pkg/goadmin"
)

type cli struct {
	Serve serveCmd `cmd:"" default:"withargs" help:"Serve the admin screens, JSON API and notices."`
}

type serveCmd struct {
	Config         string `short:"c" type:"path" help:"YAML config file."`
	Address        string `help:"Admin listen address (default :9876)."`
	NoticesAddress string `help:"Optional net/http listener for notice WebSocket and SSE streams."`
	BasePath       string `help:"Mount point of the admin screens (default /admin)."`
	LogLevel       string `help:"Log level: debug, info, warn or error."`
	Fixtures       string `type:"path" help:"YAML fixtures to seed the store with."`
	Now            string `help:"Pin the clock (YYYY-MM-DD or RFC3339), useful with the demo fixtures."`
	TemplatesDir   string `type:"path" help:"Directory whose templates/ files shadow the bundled screen templates."`
	Dark           bool   `help:"Default to the dark theme."`
	AnalyticsURL   string `name:"analytics-url" help:"Remote sales analytics service. Defaults to store-backed analytics."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli{},
		kong.Name("fastfood-admin"),
		kong.Description("Fast food restaurant admin dashboard server."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

func (cmd *serveCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	cfg = cmd.apply(cfg)
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	app, journal, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	server := router.NewFiberAdapter()
	if err := fastfood.Mount[*fiber.App](app, server.Router()); err != nil {
		return fmt.Errorf("fastfood-admin: register routes: %w", err)
	}

	errCh := make(chan error, 2)
	var notices *http.Server
	if cfg.NoticesAddress != "" {
		notices = newNoticesServer(cfg.NoticesAddress, app.Broadcast, journal)
		go func() {
			logger.Info("notices listening", slog.String("address", cfg.NoticesAddress))
			if err := notices.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("fastfood-admin: notices: %w", err)
			}
		}()
	}
	go func() {
		logger.Info("admin listening",
			slog.String("address", cfg.Address),
			slog.String("screens", cfg.BasePath),
			slog.String("theme", cfg.Theme.Name()),
		)
		errCh <- server.Serve(cfg.Address)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		logger.Info("shutting down")
	}
	if notices != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notices.Shutdown(shutdownCtx)
	}
	return err
}

// build seeds the store and assembles the app, its analytics source, the
// activity journal and the admin menu.
func build(ctx context.Context, cfg fileConfig, logger *slog.Logger) (*fastfood.App, *usersink.Journal, error) {
	doc := restaurant.DefaultFixtures()
	if cfg.Fixtures != "" {
		loaded, err := restaurant.ReadFixtures(cfg.Fixtures)
		if err != nil {
			return nil, nil, err
		}
		doc = loaded
	}
	clock, err := cfg.clock()
	if err != nil {
		return nil, nil, err
	}
	journal := usersink.NewJournal(0)
	hooks := activity.Hooks{activity.LogHook{Logger: logger}, usersink.Hook{Sink: journal}}
	activityCfg := activity.Config{Enabled: true}
	opts := fastfood.Options{
		Store:          restaurant.NewMemoryStore(doc),
		Logger:         logger,
		Clock:          clock,
		ActivityHooks:  hooks,
		ActivityConfig: activityCfg,
	}
	if cfg.Analytics.BaseURL != "" {
		client, err := analytics.NewHTTPClient(analytics.HTTPConfig{
			BaseURL:    cfg.Analytics.BaseURL,
			APIKey:     cfg.Analytics.APIKey,
			StoreID:    cfg.Analytics.StoreID,
			HTTPClient: &http.Client{Timeout: timeoutOr(cfg.Analytics.Timeout, 10*time.Second)},
		})
		if err != nil {
			return nil, nil, err
		}
		opts.CategoryRevenue = analytics.NewCategoryRevenueRepository(client)
		opts.HourlySales = analytics.NewHourlySalesRepository(client)
		logger.Info("remote analytics enabled", slog.String("base_url", cfg.Analytics.BaseURL))
	}

	app, err := fastfood.New(fastfood.Config{
		Service:          opts,
		BasePath:         cfg.BasePath,
		ChartCacheTTL:    cfg.ChartCacheTTL,
		ChartAssetsHost:  cfg.ChartAssetsHost,
		TemplatesDir:     cfg.TemplatesDir,
		CommandTelemetry: commands.LogTelemetry(logger),
		Theme:            cfg.Theme,
	})
	if err != nil {
		return nil, nil, err
	}

	admin, err := goadmin.New(goadmin.Config{
		EnableFastFood: true,
		Service:        app.Service,
		MenuBuilder:    logMenuBuilder{logger: logger},
		BasePath:       cfg.BasePath,
		ActivityHooks:  hooks,
		ActivityConfig: activityCfg,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := admin.Bootstrap(ctx); err != nil {
		return nil, nil, fmt.Errorf("fastfood-admin: bootstrap: %w", err)
	}
	return app, journal, nil
}

// newNoticesServer exposes the broadcast hub and the activity journal on
// plain net/http, where both streams can flush per notice.
func newNoticesServer(addr string, hook *restaurant.BroadcastHook, journal *usersink.Journal) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /notices/ws", hook.ServeWebSocket)
	mux.HandleFunc("GET /notices/events", hook.ServeSSE)
	mux.HandleFunc("GET /activity", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(journal.Recent(limit))
	})
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func timeoutOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

type logMenuBuilder struct {
	logger *slog.Logger
}

func (b logMenuBuilder) EnsureMenuItem(ctx context.Context, menuCode string, item goadmin.MenuItem) error {
	b.logger.DebugContext(ctx, "menu item",
		slog.String("menu", menuCode),
		slog.String("route", item.Route),
		slog.String("href", item.Href),
	)
	return nil
}
