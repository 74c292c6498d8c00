package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

type staffService interface {
	SaveStaff(ctx context.Context, in restaurant.StaffInput) (restaurant.StaffMember, error)
	SaveRole(ctx context.Context, in restaurant.RoleInput) (restaurant.Role, error)
}

// SaveStaffCommand adds or edits a staff member.
type SaveStaffCommand struct {
	service   staffService
	telemetry Telemetry
}

// NewSaveStaffCommand creates the command.
func NewSaveStaffCommand(service staffService, telemetry Telemetry) *SaveStaffCommand {
	return &SaveStaffCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.StaffInput] = (*SaveStaffCommand)(nil)

// Execute saves the staff member.
func (c *SaveStaffCommand) Execute(ctx context.Context, msg restaurant.StaffInput) error {
	if c.service == nil {
		return errors.New("save staff command requires service")
	}
	member, err := c.service.SaveStaff(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.save_staff", map[string]any{
		"staff_id": member.ID,
		"role_id":  member.RoleID,
	})
	return nil
}

// SaveRoleCommand creates or edits a role.
type SaveRoleCommand struct {
	service   staffService
	telemetry Telemetry
}

// NewSaveRoleCommand creates the command.
func NewSaveRoleCommand(service staffService, telemetry Telemetry) *SaveRoleCommand {
	return &SaveRoleCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.RoleInput] = (*SaveRoleCommand)(nil)

// Execute saves the role.
func (c *SaveRoleCommand) Execute(ctx context.Context, msg restaurant.RoleInput) error {
	if c.service == nil {
		return errors.New("save role command requires service")
	}
	role, err := c.service.SaveRole(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.save_role", map[string]any{
		"role_id": role.ID,
		"access":  len(role.Access),
	})
	return nil
}
