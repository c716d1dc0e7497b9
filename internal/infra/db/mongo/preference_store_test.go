package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"stayfront/internal/domain/locale"
)

func TestPreferenceDocumentUsesIndexedField(t *testing.T) {
	at := time.Date(2025, time.October, 17, 9, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(preferenceDocument{Language: "bn", Currency: "BDT", UpdatedAt: at})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["updated_at"]; !ok {
		t.Fatalf("fields=%v", fields)
	}
	if _, ok := fields["_id"]; ok {
		t.Fatal("$set must not carry the id")
	}
}

func TestPreferenceDocumentToSettings(t *testing.T) {
	doc := preferenceDocument{ID: "v1", Language: "bn", Currency: "EUR"}
	got := doc.toSettings()
	want := locale.Settings{VisitorID: "v1", Language: locale.Language("bn"), Currency: locale.Currency("EUR")}
	if got != want {
		t.Fatalf("settings=%+v", got)
	}
}
