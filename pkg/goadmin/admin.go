package goadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	activitypkg "github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/goliatone/go-fastfood-admin/pkg/fastfood"
)

// MenuBuilder ensures admin entries exist within the host navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures link metadata for one admin screen.
type MenuItem struct {
	Label    string
	Route    string
	Href     string
	Icon     string
	Position int
}

// Config wires the fastfood service + feature flags into an admin shell.
type Config struct {
	EnableFastFood bool
	MenuCode       string
	MenuBuilder    MenuBuilder
	Service        *fastfood.Service
	BasePath       string
	// RoutePrefix namespaces the route names, e.g. "admin.fastfood.orders".
	RoutePrefix    string
	ActivityHooks  activitypkg.Hooks
	ActivityConfig activitypkg.Config
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed the admin menu.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableFastFood && cfg.Service == nil {
		return nil, errors.New("goadmin: fastfood service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/admin"
	}
	if cfg.RoutePrefix == "" {
		cfg.RoutePrefix = "admin.fastfood"
	}
	return &Admin{cfg: cfg}, nil
}

// Service exposes the configured service when enabled.
func (a *Admin) Service() *fastfood.Service {
	if !a.cfg.EnableFastFood {
		return nil
	}
	return a.cfg.Service
}

// MenuItems maps the sidebar onto host menu entries, in display order.
func (a *Admin) MenuItems() []MenuItem {
	items := make([]MenuItem, len(restaurant.Navigation))
	for i, nav := range restaurant.Navigation {
		items[i] = MenuItem{
			Label:    nav.Label,
			Route:    a.cfg.RoutePrefix + "." + nav.Screen,
			Href:     nav.Href(a.cfg.BasePath),
			Icon:     nav.Icon,
			Position: i,
		}
	}
	return items
}

// Bootstrap seeds menu entries when the admin is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableFastFood || a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.MenuItems() {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return fmt.Errorf("goadmin: ensure menu item %s: %w", item.Route, err)
		}
	}
	return activitypkg.NewEmitter(a.cfg.ActivityHooks, a.cfg.ActivityConfig).Emit(ctx, activitypkg.Event{
		Verb:       "restaurant.menu.bootstrap",
		ObjectType: "menu",
		ObjectID:   a.cfg.MenuCode,
		Metadata:   map[string]any{"items": len(restaurant.Navigation)},
	})
}
