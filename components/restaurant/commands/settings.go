package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

type settingsService interface {
	SaveSettings(ctx context.Context, settings restaurant.Settings) error
}

// SaveSettingsCommand persists the settings screen.
type SaveSettingsCommand struct {
	service   settingsService
	telemetry Telemetry
}

// NewSaveSettingsCommand creates the command.
func NewSaveSettingsCommand(service settingsService, telemetry Telemetry) *SaveSettingsCommand {
	return &SaveSettingsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.Settings] = (*SaveSettingsCommand)(nil)

// Execute saves the settings.
func (c *SaveSettingsCommand) Execute(ctx context.Context, msg restaurant.Settings) error {
	if c.service == nil {
		return errors.New("save settings command requires service")
	}
	if err := c.service.SaveSettings(ctx, msg); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.save_settings", nil)
	return nil
}
