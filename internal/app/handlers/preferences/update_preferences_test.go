package preferences

import (
	"context"
	"errors"
	"testing"

	"stayfront/internal/app/outbox"
	"stayfront/internal/app/visitor/visitortest"
	"stayfront/internal/domain/locale"
)

type captureBox struct{ records []outbox.EventRecord }

func (c *captureBox) Add(_ context.Context, r outbox.EventRecord) error {
	c.records = append(c.records, r)
	return nil
}

func (c *captureBox) Flush(context.Context) error { return nil }

type memStore struct{ saved []locale.Settings }

func (m *memStore) Load(context.Context, string) (locale.Settings, bool, error) {
	return locale.Settings{}, false, nil
}

func (m *memStore) Save(_ context.Context, s locale.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

func TestUpdatePreferences(t *testing.T) {
	store := &memStore{}
	box := &captureBox{}
	h := &UpdatePreferencesHandler{Visitors: visitortest.NewRegistry(), Store: store, Outbox: box}
	ctx := context.Background()

	view, err := h.Handle(ctx, UpdatePreferencesCommand{VisitorID: "v1", Language: "bn-BD", Currency: "bdt"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Language.Language != locale.Bangla || view.Currency.Currency != locale.BDT {
		t.Fatalf("view=%+v", view)
	}
	if len(store.saved) != 1 || store.saved[0].VisitorID != "v1" || store.saved[0].Language != locale.Bangla {
		t.Fatalf("saved=%+v", store.saved)
	}
	if len(box.records) != 2 {
		t.Fatalf("records=%d", len(box.records))
	}

	// Re-selecting the active values is not a change.
	if _, err := h.Handle(ctx, UpdatePreferencesCommand{VisitorID: "v1", Language: "bn"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(store.saved) != 1 || len(box.records) != 2 {
		t.Fatal("unchanged preferences are not saved or published")
	}
}

func TestUpdatePreferencesRejectsUnknownValues(t *testing.T) {
	h := &UpdatePreferencesHandler{Visitors: visitortest.NewRegistry()}
	ctx := context.Background()
	if _, err := h.Handle(ctx, UpdatePreferencesCommand{VisitorID: "v", Language: "fr-FR"}); !errors.Is(err, locale.ErrUnknownLanguage) {
		t.Fatalf("err=%v", err)
	}
	if _, err := h.Handle(ctx, UpdatePreferencesCommand{VisitorID: "v", Currency: "XYZ"}); !errors.Is(err, locale.ErrUnknownCurrency) {
		t.Fatalf("err=%v", err)
	}
	if _, err := h.Handle(ctx, UpdatePreferencesCommand{VisitorID: "v"}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("err=%v", err)
	}
}
