package commands

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

// Telemetry receives one event per successful command.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// TelemetryFunc adapts a function to Telemetry.
type TelemetryFunc func(ctx context.Context, event string, payload map[string]any)

func (f TelemetryFunc) Record(ctx context.Context, event string, payload map[string]any) {
	f(ctx, event, payload)
}

// LogTelemetry writes command events to logger at debug level.
func LogTelemetry(logger *slog.Logger) Telemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return TelemetryFunc(func(ctx context.Context, event string, payload map[string]any) {
		attrs := make([]any, 0, len(payload))
		for key, value := range payload {
			attrs = append(attrs, slog.Any(key, value))
		}
		logger.DebugContext(ctx, event, attrs...)
	})
}

// attributed stamps events with the staff member found on the context.
type attributed struct {
	next Telemetry
}

func (a attributed) Record(ctx context.Context, event string, payload map[string]any) {
	op := restaurant.OperatorFrom(ctx)
	if op.StaffID != "" {
		stamped := map[string]any{"staff_id": op.StaffID}
		for key, value := range payload {
			stamped[key] = value
		}
		payload = stamped
	}
	a.next.Record(ctx, event, payload)
}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return TelemetryFunc(func(context.Context, string, map[string]any) {})
	}
	return attributed{next: t}
}
