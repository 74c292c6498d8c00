package activity

import (
	"context"
	"testing"
)

func TestEmitterStampsRestaurantChannel(t *testing.T) {
	capture := &CaptureHook{}
	em := NewEmitter(Hooks{capture}, Config{Enabled: true})
	if !em.Enabled() {
		t.Fatalf("expected emitter enabled")
	}
	if err := em.Emit(context.Background(), Event{Verb: "restaurant.menu.toggle", ObjectType: "menu_item", ObjectID: "M-004"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := em.Emit(context.Background(), Event{Verb: "restaurant.order.advance", ObjectID: "ORD-7432", Channel: "kitchen"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(capture.Events) != 2 {
		t.Fatalf("expected two events, got %d", len(capture.Events))
	}
	if got := capture.Events[0].Channel; got != "restaurant" {
		t.Fatalf("expected default channel restaurant, got %q", got)
	}
	if got := capture.Events[1].Channel; got != "kitchen" {
		t.Fatalf("explicit channel overwritten: %q", got)
	}
}

func TestEmitterStaysQuiet(t *testing.T) {
	capture := &CaptureHook{}
	cases := map[string]*Emitter{
		"no hooks": NewEmitter(nil, Config{Enabled: true}),
		"disabled": NewEmitter(Hooks{capture}, Config{}),
		"nil":      nil,
	}
	for name, em := range cases {
		if em.Enabled() {
			t.Fatalf("%s: expected emitter disabled", name)
		}
		if err := em.Emit(context.Background(), Event{Verb: "restaurant.settings.save"}); err != nil {
			t.Fatalf("%s: emit: %v", name, err)
		}
	}
	if len(capture.Events) != 0 {
		t.Fatalf("disabled emitter delivered %d events", len(capture.Events))
	}
}
