package locale

import (
	"slices"
	"sync"
	"time"
)

// Settings is the persisted preference record of one visitor.
type Settings struct {
	VisitorID string    `json:"visitorId" bson:"_id"`
	Language  Language  `json:"language" bson:"language"`
	Currency  Currency  `json:"currency" bson:"currency"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// DefaultSettings is used for visitors without a stored record.
func DefaultSettings(visitorID string) Settings {
	return Settings{VisitorID: visitorID, Language: DefaultLanguage, Currency: DefaultCurrency}
}

// Change describes an applied preference update.
type Change struct {
	Previous Settings
	Current  Settings
}

// Preferences is the per-visitor container. Values change only through
// SetLanguage and SetCurrency; observers run synchronously after a change.
type Preferences struct {
	mu        sync.RWMutex
	settings  Settings
	observers []func(Change)
	now       func() time.Time
}

func NewPreferences(initial Settings) *Preferences {
	if _, err := ParseLanguage(string(initial.Language)); err != nil {
		initial.Language = DefaultLanguage
	}
	if _, err := ParseCurrency(string(initial.Currency)); err != nil {
		initial.Currency = DefaultCurrency
	}
	return &Preferences{settings: initial, now: time.Now}
}

func (p *Preferences) Settings() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

func (p *Preferences) Language() Language { return p.Settings().Language }

func (p *Preferences) Currency() Currency { return p.Settings().Currency }

func (p *Preferences) Observe(fn func(Change)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// SetLanguage reports whether the language actually changed.
func (p *Preferences) SetLanguage(l Language) (bool, error) {
	if _, err := ParseLanguage(string(l)); err != nil {
		return false, err
	}
	return p.update(func(s *Settings) bool {
		if s.Language == l {
			return false
		}
		s.Language = l
		return true
	}), nil
}

// SetCurrency reports whether the currency actually changed.
func (p *Preferences) SetCurrency(c Currency) (bool, error) {
	if _, err := ParseCurrency(string(c)); err != nil {
		return false, err
	}
	return p.update(func(s *Settings) bool {
		if s.Currency == c {
			return false
		}
		s.Currency = c
		return true
	}), nil
}

func (p *Preferences) update(apply func(*Settings) bool) bool {
	p.mu.Lock()
	prev := p.settings
	if !apply(&p.settings) {
		p.mu.Unlock()
		return false
	}
	p.settings.UpdatedAt = p.now().UTC()
	change := Change{Previous: prev, Current: p.settings}
	observers := slices.Clone(p.observers)
	p.mu.Unlock()

	for _, fn := range observers {
		fn(change)
	}
	return true
}
