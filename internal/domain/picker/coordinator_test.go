package picker

import (
	"errors"
	"testing"
)

func TestOpeningOneFieldClosesTheOther(t *testing.T) {
	c := NewCoordinator()
	if err := c.Open(FieldDestination); err != nil {
		t.Fatalf("open destination: %v", err)
	}
	if err := c.Open(FieldCheckIn); err != nil {
		t.Fatalf("open checkin: %v", err)
	}
	if c.IsOpen(FieldDestination) {
		t.Fatal("destination panel still mounted")
	}
	if c.Active() != FieldCheckIn {
		t.Fatalf("active=%q", c.Active())
	}
}

func TestAnchors(t *testing.T) {
	cases := map[Field]Anchor{
		FieldDestination: AnchorLeft,
		FieldCheckIn:     AnchorFull,
		FieldCheckOut:    AnchorFull,
		FieldGuests:      AnchorRight,
		FieldNone:        AnchorNone,
	}
	for field, want := range cases {
		if got := field.Anchor(); got != want {
			t.Errorf("%q anchor=%q want %q", field, got, want)
		}
	}
}

func TestDismissal(t *testing.T) {
	c := NewCoordinator()
	_ = c.Open(FieldGuests)

	if c.PointerDown(true) {
		t.Fatal("press inside the panel must not dismiss")
	}
	if c.KeyDown("Enter") {
		t.Fatal("only Escape dismisses")
	}
	if !c.IsOpen(FieldGuests) {
		t.Fatal("panel closed unexpectedly")
	}
	if !c.PointerDown(false) {
		t.Fatal("outside press should dismiss")
	}
	if c.Active() != FieldNone {
		t.Fatalf("active=%q", c.Active())
	}

	_ = c.Open(FieldCheckOut)
	if !c.KeyDown("Escape") || c.Active() != FieldNone {
		t.Fatal("escape should dismiss")
	}
	if c.KeyDown("Escape") {
		t.Fatal("escape with nothing open reports no change")
	}
}

func TestTransitionsAreReported(t *testing.T) {
	c := NewCoordinator()
	var got []Transition
	c.OnChange(func(tr Transition) { got = append(got, tr) })

	_ = c.Open(FieldDestination)
	_ = c.Open(FieldDestination)
	_ = c.Open(FieldGuests)
	c.PointerDown(false)

	want := []Transition{
		{From: FieldNone, To: FieldDestination},
		{From: FieldDestination, To: FieldGuests},
		{From: FieldGuests, To: FieldNone, Reason: DismissOutside},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d transitions: %+v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestParseField(t *testing.T) {
	for raw, want := range map[string]Field{
		"where":    FieldDestination,
		"checkin":  FieldCheckIn,
		"checkOut": FieldCheckOut,
		"who":      FieldGuests,
	} {
		got, err := ParseField(raw)
		if err != nil || got != want {
			t.Errorf("ParseField(%q)=%q,%v want %q", raw, got, err, want)
		}
	}
	if _, err := ParseField("calendar"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err=%v", err)
	}
	if err := NewCoordinator().Open(Field("calendar")); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("open err=%v", err)
	}
}

func TestOverlaysAreIndependentOfSearchBar(t *testing.T) {
	c := NewCoordinator()
	var o Overlays
	_ = c.Open(FieldCheckIn)
	o.Open(OverlayLocalization)
	o.Open(OverlayBecomeHost)
	if o.Active() != OverlayBecomeHost {
		t.Fatalf("overlay=%q", o.Active())
	}
	if c.Active() != FieldCheckIn {
		t.Fatal("overlay must not touch the search bar panel")
	}
	if !o.KeyDown("Escape") || o.Active() != OverlayNone {
		t.Fatal("escape should close the overlay")
	}
	if _, err := ParseOverlay("wishlist"); !errors.Is(err, ErrUnknownOverlay) {
		t.Fatalf("err=%v", err)
	}
}
