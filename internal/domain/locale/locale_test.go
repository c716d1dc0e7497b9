package locale

import (
	"errors"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{"en": English, "en-US": English, " BN ": Bangla, "bn_BD": Bangla}
	for raw, want := range cases {
		got, err := ParseLanguage(raw)
		if err != nil || got != want {
			t.Errorf("ParseLanguage(%q)=%q,%v", raw, got, err)
		}
	}
	for _, raw := range []string{"", "fr-FR", "es", "english"} {
		if _, err := ParseLanguage(raw); !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("ParseLanguage(%q) err=%v", raw, err)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	if c, err := ParseCurrency("eur"); err != nil || c != EUR {
		t.Fatalf("eur: %q %v", c, err)
	}
	if _, err := ParseCurrency("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("err=%v", err)
	}
	if len(CurrencyOptions()) != 10 {
		t.Fatalf("options=%d", len(CurrencyOptions()))
	}
	if BDT.Symbol() != "৳" {
		t.Fatalf("symbol=%q", BDT.Symbol())
	}
}

func TestTranslatorFallsBack(t *testing.T) {
	dict, err := LoadDictionary()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	en := dict.Translator(English)
	if got := en.T("search.missingDestination"); got != "Please enter a destination" {
		t.Fatalf("en=%q", got)
	}
	bn := dict.Translator(Bangla)
	if got := bn.T("date.clear"); got == "" || got == "Clear" {
		t.Fatalf("bn=%q", got)
	}
	if got := bn.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key=%q", got)
	}
}

func TestDictionariesShareKeys(t *testing.T) {
	dict, err := LoadDictionary()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for key := range dict[English] {
		if _, ok := dict[Bangla][key]; !ok {
			t.Errorf("bn missing %q", key)
		}
	}
}

func TestPreferencesNotifyObservers(t *testing.T) {
	p := NewPreferences(DefaultSettings("v1"))
	var seen []Change
	p.Observe(func(c Change) { seen = append(seen, c) })

	changed, err := p.SetLanguage(Bangla)
	if err != nil || !changed {
		t.Fatalf("set: %v %v", changed, err)
	}
	if len(seen) != 1 || seen[0].Previous.Language != English || seen[0].Current.Language != Bangla {
		t.Fatalf("changes=%+v", seen)
	}
	if p.Language() != Bangla {
		t.Fatal("language not applied")
	}

	if changed, _ := p.SetLanguage(Bangla); changed {
		t.Fatal("same language is not a change")
	}
	if len(seen) != 1 {
		t.Fatal("no notification without a change")
	}

	if _, err := p.SetLanguage("fr"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("err=%v", err)
	}
	if _, err := p.SetCurrency(JPY); err != nil {
		t.Fatalf("currency: %v", err)
	}
	if p.Currency() != JPY || len(seen) != 2 {
		t.Fatalf("currency=%q changes=%d", p.Currency(), len(seen))
	}
}

func TestNewPreferencesRepairsStoredValues(t *testing.T) {
	p := NewPreferences(Settings{VisitorID: "v", Language: "de", Currency: "ABC"})
	if p.Language() != DefaultLanguage || p.Currency() != DefaultCurrency {
		t.Fatalf("settings=%+v", p.Settings())
	}
}

func TestChangeEvents(t *testing.T) {
	p := NewPreferences(DefaultSettings("v9"))
	var evs []string
	p.Observe(func(c Change) {
		for _, ev := range c.Events() {
			evs = append(evs, ev.EventName())
		}
	})
	_, _ = p.SetCurrency(GBP)
	_, _ = p.SetLanguage(Bangla)
	if len(evs) != 2 || evs[0] != "locale.currency_changed" || evs[1] != "locale.language_changed" {
		t.Fatalf("events=%v", evs)
	}
}

func TestObserverAddedDuringNotificationWaitsForNextChange(t *testing.T) {
	p := NewPreferences(DefaultSettings("v2"))
	var late int
	p.Observe(func(Change) {
		p.Observe(func(Change) { late++ })
	})
	if _, err := p.SetLanguage(Bangla); err != nil {
		t.Fatalf("set: %v", err)
	}
	if late != 0 {
		t.Fatalf("late observer ran %d times for the change that registered it", late)
	}
	if _, err := p.SetCurrency(EUR); err != nil {
		t.Fatalf("set: %v", err)
	}
	if late != 1 {
		t.Fatalf("late=%d", late)
	}
}
