package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// AdvanceOrderInput moves one live order to its next kitchen stage.
type AdvanceOrderInput struct {
	OrderID string `json:"order_id"`
}

type orderService interface {
	AdvanceOrder(ctx context.Context, id string) (restaurant.LiveOrder, error)
}

// AdvanceOrderCommand wraps Service.AdvanceOrder for transports.
type AdvanceOrderCommand struct {
	service   orderService
	telemetry Telemetry
}

// NewAdvanceOrderCommand creates the command.
func NewAdvanceOrderCommand(service orderService, telemetry Telemetry) *AdvanceOrderCommand {
	return &AdvanceOrderCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AdvanceOrderInput] = (*AdvanceOrderCommand)(nil)

// Execute advances the order. Completed orders surface restaurant.ErrOrderCompleted.
func (c *AdvanceOrderCommand) Execute(ctx context.Context, msg AdvanceOrderInput) error {
	if c.service == nil {
		return errors.New("advance command requires service")
	}
	order, err := c.service.AdvanceOrder(ctx, msg.OrderID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.advance_order", map[string]any{
		"order_id": order.ID,
		"status":   string(order.Status),
	})
	return nil
}
