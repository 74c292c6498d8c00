package restaurant

import (
	"context"
	"time"
)

// NoticeKind selects how a notice is presented.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	// NoticeConfirm asks the operator to confirm Action on Subject.
	NoticeConfirm NoticeKind = "confirm"
)

// Notice is a typed user-facing message raised by a Service operation.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	// Subject identifies the record, e.g. "promotion/P-001".
	Subject string    `json:"subject,omitempty"`
	Action  string    `json:"action,omitempty"`
	At      time.Time `json:"at"`
}

// NoticeHook receives notices. Implementations must not block.
type NoticeHook interface {
	Notice(ctx context.Context, notice Notice) error
}

// NoticeHookFunc adapts a function into a NoticeHook.
type NoticeHookFunc func(ctx context.Context, notice Notice) error

// Notice implements NoticeHook.
func (f NoticeHookFunc) Notice(ctx context.Context, notice Notice) error {
	return f(ctx, notice)
}

type noopNoticeHook struct{}

func (noopNoticeHook) Notice(context.Context, Notice) error { return nil }
