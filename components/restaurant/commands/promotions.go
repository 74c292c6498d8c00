package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

type promotionService interface {
	CreatePromotion(ctx context.Context, in restaurant.PromotionInput) (restaurant.PromotionView, error)
}

// CreatePromotionCommand wraps Service.CreatePromotion.
type CreatePromotionCommand struct {
	service   promotionService
	telemetry Telemetry
}

// NewCreatePromotionCommand creates the command.
func NewCreatePromotionCommand(service promotionService, telemetry Telemetry) *CreatePromotionCommand {
	return &CreatePromotionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.PromotionInput] = (*CreatePromotionCommand)(nil)

// Execute creates the promotion.
func (c *CreatePromotionCommand) Execute(ctx context.Context, msg restaurant.PromotionInput) error {
	if c.service == nil {
		return errors.New("create promotion command requires service")
	}
	view, err := c.service.CreatePromotion(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.create_promotion", map[string]any{
		"promotion_id": view.ID,
		"status":       string(view.Status),
	})
	return nil
}
