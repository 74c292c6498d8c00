// Package usersink records restaurant activity as go-users activity records.
package usersink

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Sink is the subset of the go-users activity sink the hook needs.
type Sink interface {
	Log(ctx context.Context, record types.ActivityRecord) error
}

// Namespace derives stable UUIDs for staff and store codes such as "S-001".
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:fastfood-admin:staff"))

// Hook maps activity events onto go-users activity records.
type Hook struct {
	Sink Sink
}

var _ activity.Hook = Hook{}

func (h Hook) Notify(ctx context.Context, evt activity.Event) error {
	if h.Sink == nil || !evt.Valid() {
		return nil
	}
	evt = activity.NormalizeEvent(evt)
	data := make(map[string]any, len(evt.Metadata)+4)
	maps.Copy(data, evt.Metadata)
	if evt.DefinitionCode != "" {
		data["definition_code"] = evt.DefinitionCode
	}
	if len(evt.Recipients) > 0 {
		data["recipients"] = evt.Recipients
	}
	if evt.ActorID != "" {
		data["staff_id"] = evt.ActorID
	}
	if evt.TenantID != "" {
		data["store_id"] = evt.TenantID
	}
	return h.Sink.Log(ctx, types.ActivityRecord{
		UserID:     identity(evt.UserID),
		ActorID:    identity(evt.ActorID),
		TenantID:   identity(evt.TenantID),
		Verb:       evt.Verb,
		ObjectType: evt.ObjectType,
		ObjectID:   evt.ObjectID,
		Channel:    evt.Channel,
		Data:       data,
		OccurredAt: evt.OccurredAt,
	})
}

// identity keeps real UUIDs and hashes anything else into Namespace.
func identity(value string) uuid.UUID {
	if value == "" {
		return uuid.Nil
	}
	if id, err := uuid.Parse(value); err == nil {
		return id
	}
	return uuid.NewSHA1(Namespace, []byte(value))
}

// Journal is an in-memory Sink holding the most recent records.
type Journal struct {
	mu      sync.Mutex
	limit   int
	records []types.ActivityRecord
}

// NewJournal keeps up to limit records; limit <= 0 means 200.
func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = 200
	}
	return &Journal{limit: limit}
}

var _ Sink = (*Journal)(nil)

func (j *Journal) Log(_ context.Context, record types.ActivityRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, record)
	if over := len(j.records) - j.limit; over > 0 {
		j.records = slices.Delete(j.records, 0, over)
	}
	return nil
}

// Recent returns up to n records, newest first.
func (j *Journal) Recent(n int) []types.ActivityRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := slices.Clone(j.records)
	slices.Reverse(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
