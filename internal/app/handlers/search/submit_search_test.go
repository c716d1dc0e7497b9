package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayfront/internal/app/outbox"
	"stayfront/internal/app/visitor"
	"stayfront/internal/app/visitor/visitortest"
	"stayfront/internal/domain/guests"
	domainsearch "stayfront/internal/domain/search"
	"stayfront/internal/domain/shared/daterange"
)

type captureBox struct{ records []outbox.EventRecord }

func (c *captureBox) Add(_ context.Context, r outbox.EventRecord) error {
	c.records = append(c.records, r)
	return nil
}

func (c *captureBox) Flush(context.Context) error { return nil }

func TestSubmitSearch(t *testing.T) {
	registry := visitortest.NewRegistry()
	box := &captureBox{}
	h := &SubmitSearchHandler{Visitors: registry, Outbox: box, Now: visitortest.Clock}
	ctx := context.Background()

	if _, err := h.Handle(ctx, SubmitSearchCommand{VisitorID: "v1"}); !errors.Is(err, domainsearch.ErrMissingDestination) {
		t.Fatalf("err=%v", err)
	}
	if len(box.records) != 0 {
		t.Fatal("invalid submit records nothing")
	}

	v, _ := registry.Get(ctx, "v1")
	_ = v.Do(func(s visitor.State) error {
		s.SearchBar.TypeDestination("Paris")
		_ = s.SearchBar.PickDay(daterange.NewDay(2025, time.October, 31))
		_ = s.SearchBar.PickDay(daterange.NewDay(2025, time.November, 2))
		_ = s.SearchBar.IncrementGuests(guests.Adults)
		return nil
	})

	res, err := h.Handle(ctx, SubmitSearchCommand{VisitorID: "v1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := "/search?where=Paris&checkIn=2025-10-31&checkOut=2025-11-02&guests=1&adults=1&children=0&infants=0&pets=0"
	if res.Location != want {
		t.Fatalf("location=%q", res.Location)
	}
	if len(box.records) != 1 || box.records[0].Name != "search.submitted" || box.records[0].Aggregate != "v1" {
		t.Fatalf("records=%+v", box.records)
	}
}
