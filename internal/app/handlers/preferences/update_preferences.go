package preferences

import (
	"context"
	"errors"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/dto"
	"stayfront/internal/app/outbox"
	"stayfront/internal/app/policies"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/locale"
)

const updatePreferencesKey = "preferences.update"

var ErrNothingToUpdate = errors.New("preferences: language or currency required")

// UpdatePreferencesCommand changes the language, the currency or both.
// Empty fields are left alone.
type UpdatePreferencesCommand struct {
	VisitorID string
	Language  string
	Currency  string
}

func (UpdatePreferencesCommand) Key() string { return updatePreferencesKey }

type UpdatePreferencesHandler struct {
	Visitors visitor.Registry
	Store    policies.PreferenceStore
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
}

func (h *UpdatePreferencesHandler) Handle(ctx context.Context, cmd UpdatePreferencesCommand) (dto.Preferences, error) {
	if cmd.Language == "" && cmd.Currency == "" {
		return dto.Preferences{}, ErrNothingToUpdate
	}
	var (
		lang locale.Language
		cur  locale.Currency
		err  error
	)
	if cmd.Language != "" {
		if lang, err = locale.ParseLanguage(cmd.Language); err != nil {
			return dto.Preferences{}, err
		}
	}
	if cmd.Currency != "" {
		if cur, err = locale.ParseCurrency(cmd.Currency); err != nil {
			return dto.Preferences{}, err
		}
	}

	v, err := h.Visitors.Get(ctx, cmd.VisitorID)
	if err != nil {
		return dto.Preferences{}, err
	}
	var view dto.Preferences
	evs, err := v.Apply(func(s visitor.State) error {
		if lang != "" {
			if _, err := s.Preferences.SetLanguage(lang); err != nil {
				return err
			}
		}
		if cur != "" {
			if _, err := s.Preferences.SetCurrency(cur); err != nil {
				return err
			}
		}
		view = View(s)
		return nil
	})
	if err != nil {
		return dto.Preferences{}, err
	}
	if len(evs) > 0 && h.Store != nil {
		if err := h.Store.Save(ctx, v.Preferences().Settings()); err != nil {
			return dto.Preferences{}, err
		}
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, evs); err != nil {
		return dto.Preferences{}, err
	}
	return view, nil
}

// View renders the preference and dialog state; call it under the visitor
// lock.
func View(s visitor.State) dto.Preferences {
	settings := s.Preferences.Settings()
	return dto.Preferences{
		Language:   settings.Language.Option(),
		Currency:   settings.Currency.Option(),
		Languages:  locale.LanguageOptions(),
		Currencies: locale.CurrencyOptions(),
		Overlay:    string(s.Overlays.Active()),
		HostKind:   string(s.Hosting.Kind()),
		CanHost:    s.Hosting.CanProceed(),
	}
}

var _ commands.Handler[UpdatePreferencesCommand, dto.Preferences] = (*UpdatePreferencesHandler)(nil)
