package hosting

import (
	"errors"
	"testing"
	"time"
)

func TestIntentFlow(t *testing.T) {
	var in Intent
	if in.CanProceed() {
		t.Fatal("next is disabled until a kind is chosen")
	}
	if _, err := in.Submit("v1", time.Now()); !errors.Is(err, ErrNoKindChosen) {
		t.Fatalf("err=%v", err)
	}
	if err := in.Choose("castle"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v", err)
	}
	if err := in.Choose(KindExperience); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if err := in.Choose(KindService); err != nil {
		t.Fatalf("choose: %v", err)
	}
	ev, err := in.Submit("v1", time.Unix(0, 0))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ev.Kind != KindService || ev.EventName() != "hosting.intent_submitted" || ev.AggregateID() != "v1" {
		t.Fatalf("event=%+v", ev)
	}
	if in.CanProceed() {
		t.Fatal("submit resets the dialog")
	}
}

func TestChooseStoresCanonicalKind(t *testing.T) {
	var in Intent
	if err := in.Choose(Kind(" Home ")); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if in.Kind() != KindHome {
		t.Fatalf("kind=%q", in.Kind())
	}
	ev, err := in.Submit("v1", time.Now())
	if err != nil || ev.Kind != KindHome {
		t.Fatalf("ev=%+v err=%v", ev, err)
	}
	if err := in.Choose(Kind("castle")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v", err)
	}
}
