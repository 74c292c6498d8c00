package usersink

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []types.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record types.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookMapsOrderAdvance(t *testing.T) {
	sink := &recordingSink{}
	hook := Hook{Sink: sink}
	at := time.Date(2024, 11, 28, 12, 31, 0, 0, time.UTC)

	err := hook.Notify(context.Background(), activity.Event{
		Verb:           "restaurant.order.advance",
		ActorID:        "S-002",
		UserID:         "S-002",
		TenantID:       "downtown",
		ObjectType:     "order",
		ObjectID:       "ORD-7432",
		Channel:        "restaurant",
		DefinitionCode: "order:advance",
		Recipients:     []string{"kitchen@burgerbarn.example"},
		Metadata:       map[string]any{"from": "PENDING", "to": "PREPARING"},
		OccurredAt:     at,
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	staff := uuid.NewSHA1(Namespace, []byte("S-002"))
	if record.ActorID != staff || record.UserID != staff {
		t.Fatalf("expected derived staff uuid %s, got actor %s user %s", staff, record.ActorID, record.UserID)
	}
	if record.TenantID != uuid.NewSHA1(Namespace, []byte("downtown")) {
		t.Fatalf("unexpected tenant %s", record.TenantID)
	}
	if record.Verb != "restaurant.order.advance" || record.ObjectType != "order" || record.ObjectID != "ORD-7432" {
		t.Fatalf("unexpected record payload: %+v", record)
	}
	if record.Channel != "restaurant" || !record.OccurredAt.Equal(at) {
		t.Fatalf("unexpected channel or time: %+v", record)
	}
	for key, want := range map[string]any{
		"staff_id":        "S-002",
		"store_id":        "downtown",
		"definition_code": "order:advance",
		"from":            "PENDING",
		"to":              "PREPARING",
	} {
		if record.Data[key] != want {
			t.Fatalf("data[%s] = %v, want %v", key, record.Data[key], want)
		}
	}
}

func TestHookKeepsRealUUIDs(t *testing.T) {
	sink := &recordingSink{}
	id := uuid.New()
	if err := (Hook{Sink: sink}).Notify(context.Background(), activity.Event{Verb: "restaurant.settings.save", ActorID: id.String()}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sink.records[0].ActorID != id {
		t.Fatalf("expected uuid passthrough, got %s", sink.records[0].ActorID)
	}
	if sink.records[0].TenantID != uuid.Nil {
		t.Fatalf("empty tenant should stay nil")
	}
}

func TestHookSkipsVerblessAndSurfacesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("sink down")}
	hook := Hook{Sink: sink}

	if err := hook.Notify(context.Background(), activity.Event{ObjectID: "P-002"}); err != nil {
		t.Fatalf("verbless event: %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected no records for verbless event, got %d", len(sink.records))
	}
	if err := hook.Notify(context.Background(), activity.Event{Verb: "restaurant.promotion.delete"}); err == nil {
		t.Fatalf("expected sink error")
	}
	if err := (Hook{}).Notify(context.Background(), activity.Event{Verb: "restaurant.promotion.delete"}); err != nil {
		t.Fatalf("nil sink should be a no-op, got %v", err)
	}
}

func TestJournalKeepsNewestFirst(t *testing.T) {
	journal := NewJournal(3)
	for i := range 5 {
		_ = journal.Log(context.Background(), types.ActivityRecord{ObjectID: fmt.Sprintf("ORD-%d", 7430+i)})
	}
	recent := journal.Recent(0)
	if len(recent) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(recent))
	}
	if recent[0].ObjectID != "ORD-7434" || recent[2].ObjectID != "ORD-7432" {
		t.Fatalf("unexpected order %v %v", recent[0].ObjectID, recent[2].ObjectID)
	}
	if got := journal.Recent(1); len(got) != 1 || got[0].ObjectID != "ORD-7434" {
		t.Fatalf("Recent(1) = %+v", got)
	}
}
