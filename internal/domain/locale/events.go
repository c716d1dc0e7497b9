package locale

import (
	"time"

	"stayfront/internal/domain/shared/events"
)

type LanguageChanged struct {
	VisitorID string    `json:"visitorId"`
	From      Language  `json:"from"`
	To        Language  `json:"to"`
	At        time.Time `json:"at"`
}

func (e LanguageChanged) EventName() string     { return "locale.language_changed" }
func (e LanguageChanged) AggregateID() string   { return e.VisitorID }
func (e LanguageChanged) OccurredAt() time.Time { return e.At }

type CurrencyChanged struct {
	VisitorID string    `json:"visitorId"`
	From      Currency  `json:"from"`
	To        Currency  `json:"to"`
	At        time.Time `json:"at"`
}

func (e CurrencyChanged) EventName() string     { return "locale.currency_changed" }
func (e CurrencyChanged) AggregateID() string   { return e.VisitorID }
func (e CurrencyChanged) OccurredAt() time.Time { return e.At }

// Events converts an applied change to the events it implies.
func (c Change) Events() []events.DomainEvent {
	var out []events.DomainEvent
	if c.Previous.Language != c.Current.Language {
		out = append(out, LanguageChanged{VisitorID: c.Current.VisitorID, From: c.Previous.Language, To: c.Current.Language, At: c.Current.UpdatedAt})
	}
	if c.Previous.Currency != c.Current.Currency {
		out = append(out, CurrencyChanged{VisitorID: c.Current.VisitorID, From: c.Previous.Currency, To: c.Current.Currency, At: c.Current.UpdatedAt})
	}
	return out
}
