package httpapi

import (
	"context"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
)

// Executor is the transport neutral view of Handlers used by router adapters.
type Executor interface {
	AdvanceOrder(ctx context.Context, input commands.AdvanceOrderInput) error
	SaveMenuItem(ctx context.Context, input restaurant.MenuItemInput) error
	ToggleMenuItem(ctx context.Context, input commands.ToggleMenuItemInput) error
	ReceiveStock(ctx context.Context, input restaurant.StockReceipt) error
	CreatePromotion(ctx context.Context, input restaurant.PromotionInput) error
	DeletePromotion(ctx context.Context, input commands.DeleteInput) error
	SaveStaff(ctx context.Context, input restaurant.StaffInput) error
	DeleteStaff(ctx context.Context, input commands.DeleteInput) error
	SaveRole(ctx context.Context, input restaurant.RoleInput) error
	DeleteRole(ctx context.Context, input commands.DeleteInput) error
	SaveSettings(ctx context.Context, input restaurant.Settings) error
}

// NewExecutor adapts the handler commanders to Executor. Missing commanders
// fail at call time.
func NewExecutor(h *Handlers) Executor {
	if h == nil {
		h = &Handlers{}
	}
	return commandExecutor{h: h}
}

type commandExecutor struct {
	h *Handlers
}

func run[T any](ctx context.Context, name string, cmd gocommand.Commander[T], input T) error {
	if cmd == nil {
		return fmt.Errorf("httpapi: %s command is not configured", name)
	}
	return cmd.Execute(ctx, input)
}

func (e commandExecutor) AdvanceOrder(ctx context.Context, input commands.AdvanceOrderInput) error {
	return run(ctx, "advance order", e.h.AdvanceOrder, input)
}

func (e commandExecutor) SaveMenuItem(ctx context.Context, input restaurant.MenuItemInput) error {
	return run(ctx, "save menu item", e.h.SaveMenuItem, input)
}

func (e commandExecutor) ToggleMenuItem(ctx context.Context, input commands.ToggleMenuItemInput) error {
	return run(ctx, "toggle menu item", e.h.ToggleMenuItem, input)
}

func (e commandExecutor) ReceiveStock(ctx context.Context, input restaurant.StockReceipt) error {
	return run(ctx, "receive stock", e.h.ReceiveStock, input)
}

func (e commandExecutor) CreatePromotion(ctx context.Context, input restaurant.PromotionInput) error {
	return run(ctx, "create promotion", e.h.CreatePromotion, input)
}

func (e commandExecutor) DeletePromotion(ctx context.Context, input commands.DeleteInput) error {
	return run(ctx, "delete promotion", e.h.DeletePromotion, input)
}

func (e commandExecutor) SaveStaff(ctx context.Context, input restaurant.StaffInput) error {
	return run(ctx, "save staff", e.h.SaveStaff, input)
}

func (e commandExecutor) DeleteStaff(ctx context.Context, input commands.DeleteInput) error {
	return run(ctx, "delete staff", e.h.DeleteStaff, input)
}

func (e commandExecutor) SaveRole(ctx context.Context, input restaurant.RoleInput) error {
	return run(ctx, "save role", e.h.SaveRole, input)
}

func (e commandExecutor) DeleteRole(ctx context.Context, input commands.DeleteInput) error {
	return run(ctx, "delete role", e.h.DeleteRole, input)
}

func (e commandExecutor) SaveSettings(ctx context.Context, input restaurant.Settings) error {
	return run(ctx, "save settings", e.h.SaveSettings, input)
}
