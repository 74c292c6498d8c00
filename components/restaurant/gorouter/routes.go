package gorouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/httpapi"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/queries"
	"github.com/goliatone/go-fastfood-admin/pkg/reports"
)

// ThemeResolver picks the light/dark theme for a request.
type ThemeResolver func(router.Context) restaurant.Theme

// Queries are the read models served as JSON. Nil entries skip their route.
type Queries struct {
	Board    gocommand.Querier[queries.BoardInput, restaurant.Board]
	Customer gocommand.Querier[queries.CustomerDetailInput, restaurant.CustomerDetail]
	Report   gocommand.Querier[queries.ReportInput, reports.File]
}

// Config wires go-router with the admin controller, command API and notices.
type Config[T any] struct {
	Router        router.Router[T]
	Controller    *restaurant.Controller
	API           httpapi.Executor
	Queries       Queries
	Broadcast     *restaurant.BroadcastHook
	ThemeResolver ThemeResolver
	BasePath      string
	Routes        RouteConfig
	// Clock anchors the default history range. Defaults to time.Now.
	Clock func() time.Time
}

// RouteConfig customizes the relative paths used for the JSON API.
type RouteConfig struct {
	API       string
	Screen    string
	Board     string
	Customer  string
	Report    string
	WebSocket string
}

// Register mounts the admin screens (HTML), the JSON API and the notice
// WebSocket on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	themes := cfg.ThemeResolver
	if themes == nil {
		themes = defaultThemeResolver
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	group := cfg.Router.Group(base)

	for _, item := range restaurant.Navigation {
		screen := item.Screen
		group.Get("/"+item.Path, router.WrapHandler(func(ctx router.Context) error {
			return renderPage(ctx, cfg.Controller, screen, "", themes, clock)
		}))
	}
	group.Get("/customers/:id", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, cfg.Controller, restaurant.ScreenCustomers, ctx.Param("id"), themes, clock)
	}))

	api := group.Group(routes.API)
	api.Get(routes.Screen, router.WrapHandler(func(ctx router.Context) error {
		req, err := pageRequest(ctx, ctx.Param("screen"), "", themes, clock)
		if err != nil {
			return respondError(ctx, err)
		}
		payload, err := cfg.Controller.Page(ctx.Context(), req)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	registerQueries(api, cfg.Queries, routes)

	if cfg.API != nil {
		registerAPI(api, cfg.API)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(api, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func renderPage(ctx router.Context, controller *restaurant.Controller, screen, recordID string, themes ThemeResolver, clock func() time.Time) error {
	req, err := pageRequest(ctx, screen, recordID, themes, clock)
	if err != nil {
		return respondError(ctx, err)
	}
	var buf bytes.Buffer
	if err := controller.RenderTemplate(ctx.Context(), req, &buf); err != nil {
		return respondError(ctx, err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func pageRequest(ctx router.Context, screen, recordID string, themes ThemeResolver, clock func() time.Time) (restaurant.PageRequest, error) {
	q, err := httpapi.ParseQuery(screen, func(key string) string { return ctx.Query(key) }, clock())
	if err != nil {
		return restaurant.PageRequest{}, err
	}
	return restaurant.PageRequest{Screen: screen, Query: q, Theme: themes(ctx), RecordID: recordID}, nil
}

func registerQueries[T any](r router.Router[T], q Queries, routes RouteConfig) {
	if q.Board != nil {
		r.Get(routes.Board, router.WrapHandler(func(ctx router.Context) error {
			board, err := q.Board.Query(ctx.Context(), queries.BoardInput{})
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, board)
		}))
	}

	if q.Customer != nil {
		r.Get(routes.Customer, router.WrapHandler(func(ctx router.Context) error {
			detail, err := q.Customer.Query(ctx.Context(), queries.CustomerDetailInput{CustomerID: ctx.Param("id")})
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, detail)
		}))
	}

	if q.Report != nil {
		r.Get(routes.Report, router.WrapHandler(func(ctx router.Context) error {
			file, err := q.Report.Query(ctx.Context(), queries.ReportInput{
				Code:        ctx.Param("code"),
				Compression: ctx.Query("compression"),
			})
			if err != nil {
				return respondError(ctx, err)
			}
			ctx.SetHeader("Content-Type", file.ContentType)
			ctx.SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
			return ctx.Send(file.Data)
		}))
	}
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor) {
	r.Post("/orders/:id/advance", router.WrapHandler(func(ctx router.Context) error {
		if err := api.AdvanceOrder(operatorContext(ctx), commands.AdvanceOrderInput{OrderID: ctx.Param("id")}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "advanced"})
	}))

	r.Post("/menu", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.MenuItemInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ""
		if err := api.SaveMenuItem(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Put("/menu/:id", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.MenuItemInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ctx.Param("id")
		if err := api.SaveMenuItem(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post("/menu/:id/toggle", router.WrapHandler(func(ctx router.Context) error {
		if err := api.ToggleMenuItem(operatorContext(ctx), commands.ToggleMenuItemInput{ItemID: ctx.Param("id")}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "toggled"})
	}))

	r.Post("/inventory/:id/receive", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.StockReceipt
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ItemID = ctx.Param("id")
		if err := api.ReceiveStock(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "received"})
	}))

	r.Post("/promotions", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.PromotionInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		if err := api.CreatePromotion(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))
	r.Delete("/promotions/:id", deleteHandler(api.DeletePromotion))

	r.Post("/staff", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.StaffInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ""
		if err := api.SaveStaff(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))
	r.Put("/staff/:id", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.StaffInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ctx.Param("id")
		if err := api.SaveStaff(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))
	r.Delete("/staff/:id", deleteHandler(api.DeleteStaff))

	r.Post("/roles", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.RoleInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ""
		if err := api.SaveRole(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))
	r.Put("/roles/:id", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.RoleInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		payload.ID = ctx.Param("id")
		if err := api.SaveRole(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))
	r.Delete("/roles/:id", deleteHandler(api.DeleteRole))

	r.Put("/settings", router.WrapHandler(func(ctx router.Context) error {
		var payload restaurant.Settings
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		if err := api.SaveSettings(operatorContext(ctx), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))
}

// deleteHandler runs the two step delete. ?confirm=true removes the record,
// otherwise only the confirmation notice goes out.
func deleteHandler(run func(ctx context.Context, input commands.DeleteInput) error) router.HandlerFunc {
	return router.WrapHandler(func(ctx router.Context) error {
		confirmed, _ := strconv.ParseBool(ctx.Query("confirm"))
		id := ctx.Param("id")
		if err := run(operatorContext(ctx), commands.DeleteInput{ID: id, Confirmed: confirmed}); err != nil {
			return respondError(ctx, err)
		}
		status := "pending_confirmation"
		if confirmed {
			status = "deleted"
		}
		return ctx.JSON(httpapi.DeleteStatus(confirmed), map[string]string{"status": status, "id": id})
	})
}

func registerWebSocket[T any](r router.Router[T], hook *restaurant.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		notices, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case notice, ok := <-notices:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(notice); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

var defaultThemeResolver = ThemeFromRequest(restaurant.Theme{})

// ThemeFromRequest resolves the theme from the "theme" local, then the
// ?theme=dark|light query, then fallback.
func ThemeFromRequest(fallback restaurant.Theme) ThemeResolver {
	return func(ctx router.Context) restaurant.Theme {
		if theme, ok := ctx.Locals("theme").(restaurant.Theme); ok {
			return theme
		}
		theme := fallback
		switch strings.ToLower(strings.TrimSpace(ctx.Query("theme"))) {
		case "dark":
			theme.Dark = true
		case "light":
			theme.Dark = false
		}
		return theme
	}
}

func respondError(ctx router.Context, err error) error {
	return respondStatus(ctx, httpapi.StatusFor(err), err)
}

func respondStatus(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	routes := defaultRouteConfig(cfg.Routes)
	return routes
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.API == "" {
		routes.API = "/api"
	}
	if routes.Screen == "" {
		routes.Screen = "/screens/:screen"
	}
	if routes.Board == "" {
		routes.Board = "/orders/board"
	}
	if routes.Customer == "" {
		routes.Customer = "/customers/:id"
	}
	if routes.Report == "" {
		routes.Report = "/reports/:code"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/notices/ws"
	}
	return routes
}

// Request headers naming the acting staff member on mutation routes.
const (
	HeaderStaffID = "X-Staff-ID"
	HeaderRoleID  = "X-Staff-Role"
	HeaderStoreID = "X-Store-ID"
)

func operatorContext(ctx router.Context) context.Context {
	op := restaurant.Operator{
		StaffID: ctx.Header(HeaderStaffID),
		RoleID:  ctx.Header(HeaderRoleID),
		StoreID: ctx.Header(HeaderStoreID),
	}
	if op.IsZero() {
		return ctx.Context()
	}
	return restaurant.WithOperator(ctx.Context(), op)
}
