package commands

import (
	"context"
	"errors"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// DeleteInput drives the two step delete flow. Without Confirmed the command
// only raises the confirm notice; with it the record is removed.
type DeleteInput struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// deleteFlow is the request/confirm pair a service exposes per record type.
type deleteFlow struct {
	kind    string
	request func(ctx context.Context, id string) (restaurant.Notice, error)
	remove  func(ctx context.Context, id string) error
}

// DeleteCommand runs a deleteFlow.
type DeleteCommand struct {
	flow      deleteFlow
	telemetry Telemetry
}

var _ gocommand.Commander[DeleteInput] = (*DeleteCommand)(nil)

type promotionDeleter interface {
	RequestPromotionDelete(ctx context.Context, id string) (restaurant.Notice, error)
	DeletePromotion(ctx context.Context, id string) (restaurant.Promotion, error)
}

// NewDeletePromotionCommand deletes promotions.
func NewDeletePromotionCommand(service promotionDeleter, telemetry Telemetry) *DeleteCommand {
	cmd := &DeleteCommand{telemetry: normalizeTelemetry(telemetry)}
	if service != nil {
		cmd.flow = deleteFlow{
			kind:    "promotion",
			request: service.RequestPromotionDelete,
			remove: func(ctx context.Context, id string) error {
				_, err := service.DeletePromotion(ctx, id)
				return err
			},
		}
	}
	return cmd
}

type staffDeleter interface {
	RequestStaffDelete(ctx context.Context, id string) (restaurant.Notice, error)
	DeleteStaff(ctx context.Context, id string) (restaurant.StaffMember, error)
}

// NewDeleteStaffCommand removes staff members.
func NewDeleteStaffCommand(service staffDeleter, telemetry Telemetry) *DeleteCommand {
	cmd := &DeleteCommand{telemetry: normalizeTelemetry(telemetry)}
	if service != nil {
		cmd.flow = deleteFlow{
			kind:    "staff_member",
			request: service.RequestStaffDelete,
			remove: func(ctx context.Context, id string) error {
				_, err := service.DeleteStaff(ctx, id)
				return err
			},
		}
	}
	return cmd
}

type roleDeleter interface {
	RequestRoleDelete(ctx context.Context, id string) (restaurant.Notice, error)
	DeleteRole(ctx context.Context, id string) (restaurant.Role, error)
}

// NewDeleteRoleCommand removes roles.
func NewDeleteRoleCommand(service roleDeleter, telemetry Telemetry) *DeleteCommand {
	cmd := &DeleteCommand{telemetry: normalizeTelemetry(telemetry)}
	if service != nil {
		cmd.flow = deleteFlow{
			kind:    "role",
			request: service.RequestRoleDelete,
			remove: func(ctx context.Context, id string) error {
				_, err := service.DeleteRole(ctx, id)
				return err
			},
		}
	}
	return cmd
}

// Execute requests confirmation or deletes, depending on msg.Confirmed.
func (c *DeleteCommand) Execute(ctx context.Context, msg DeleteInput) error {
	if c.flow.remove == nil {
		return errors.New("delete command requires service")
	}
	id := strings.TrimSpace(msg.ID)
	if id == "" {
		return errors.New("delete command requires id")
	}
	step := "request"
	if msg.Confirmed {
		step = "confirm"
		if err := c.flow.remove(ctx, id); err != nil {
			return err
		}
	} else if _, err := c.flow.request(ctx, id); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.delete", map[string]any{
		"kind": c.flow.kind,
		"id":   id,
		"step": step,
	})
	return nil
}
