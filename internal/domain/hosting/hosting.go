package hosting

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownKind  = errors.New("hosting: unknown kind")
	ErrNoKindChosen = errors.New("hosting: choose what to host first")
)

// Kind is what a prospective host wants to offer.
type Kind string

const (
	KindHome       Kind = "home"
	KindExperience Kind = "experience"
	KindService    Kind = "service"
)

var Kinds = []Kind{KindHome, KindExperience, KindService}

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case KindHome, KindExperience, KindService:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Intent is the state of the "become a host" dialog.
type Intent struct {
	kind Kind
}

func (i *Intent) Kind() Kind { return i.kind }

func (i *Intent) Choose(k Kind) error {
	k, err := ParseKind(string(k))
	if err != nil {
		return err
	}
	i.kind = k
	return nil
}

// CanProceed reports whether the Next button is enabled.
func (i *Intent) CanProceed() bool { return i.kind != "" }

// Submit finalizes the choice and resets the dialog.
func (i *Intent) Submit(visitorID string, at time.Time) (IntentSubmitted, error) {
	if !i.CanProceed() {
		return IntentSubmitted{}, ErrNoKindChosen
	}
	ev := IntentSubmitted{VisitorID: visitorID, Kind: i.kind, At: at}
	i.kind = ""
	return ev, nil
}

type IntentSubmitted struct {
	VisitorID string    `json:"visitorId"`
	Kind      Kind      `json:"kind"`
	At        time.Time `json:"at"`
}

func (e IntentSubmitted) EventName() string     { return "hosting.intent_submitted" }
func (e IntentSubmitted) AggregateID() string   { return e.VisitorID }
func (e IntentSubmitted) OccurredAt() time.Time { return e.At }
