package activity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Hook receives normalized activity events.
type Hook interface {
	Notify(ctx context.Context, evt Event) error
}

// HookFunc adapts a function into a Hook.
type HookFunc func(ctx context.Context, evt Event) error

// Notify implements Hook.
func (f HookFunc) Notify(ctx context.Context, evt Event) error {
	if f == nil {
		return nil
	}
	return f(ctx, evt)
}

// Hooks fans an event out to every hook. Events without a verb are dropped.
type Hooks []Hook

// Notify normalizes evt and delivers it to each hook, joining their errors.
func (h Hooks) Notify(ctx context.Context, evt Event) error {
	if len(h) == 0 || !evt.Valid() {
		return nil
	}
	evt = NormalizeEvent(evt)
	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CaptureHook keeps events in memory. Handy in tests.
type CaptureHook struct {
	mu     sync.Mutex
	Events []Event
}

// Notify implements Hook.
func (c *CaptureHook) Notify(_ context.Context, evt Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, evt)
	return nil
}

// LogHook writes events to a structured logger.
type LogHook struct {
	Logger *slog.Logger
}

// Notify implements Hook.
func (l LogHook) Notify(ctx context.Context, evt Event) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "activity",
		slog.String("verb", evt.Verb),
		slog.String("object_type", evt.ObjectType),
		slog.String("object_id", evt.ObjectID),
		slog.String("actor_id", evt.ActorID),
		slog.String("channel", evt.Channel),
	)
	return nil
}
