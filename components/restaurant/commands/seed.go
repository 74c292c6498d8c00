package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// SeedFixturesInput controls what the seed command loads.
type SeedFixturesInput struct {
	// Path points at a YAML fixtures file. Empty loads the built-in demo data.
	Path string
	// Fixtures takes precedence over Path when set.
	Fixtures *restaurant.Fixtures
}

type restorer interface {
	Restore(ctx context.Context, doc *restaurant.Fixtures) error
}

// SeedFixturesCommand replaces the store contents with fixtures.
type SeedFixturesCommand struct {
	service   restorer
	telemetry Telemetry
}

// NewSeedFixturesCommand wires dependencies.
func NewSeedFixturesCommand(service restorer, telemetry Telemetry) *SeedFixturesCommand {
	return &SeedFixturesCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SeedFixturesInput] = (*SeedFixturesCommand)(nil)

// Execute loads and restores the fixtures.
func (c *SeedFixturesCommand) Execute(ctx context.Context, msg SeedFixturesInput) error {
	if c.service == nil {
		return errors.New("seed command requires service")
	}
	doc := msg.Fixtures
	if doc == nil && msg.Path != "" {
		loaded, err := restaurant.ReadFixtures(msg.Path)
		if err != nil {
			return err
		}
		doc = loaded
	}
	if doc == nil {
		doc = restaurant.DefaultFixtures()
	}
	if err := c.service.Restore(ctx, doc); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.seed", map[string]any{
		"source": doc.Source,
		"orders": len(doc.Orders),
	})
	return nil
}
