package visitor

import (
	"context"
	"errors"
	"sync"

	"stayfront/internal/app/results"
	"stayfront/internal/app/searchbar"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/locale"
	"stayfront/internal/domain/picker"
	"stayfront/internal/domain/shared/events"
)

var ErrUnknownVisitor = errors.New("visitor: unknown visitor")

// Visitor bundles the UI state of one browser: the search bar, the overlay
// dialogs, the hosting dialog, preferences and the results tracker. All of
// it is mutated under the visitor lock.
type Visitor struct {
	ID string

	mu          sync.Mutex
	searchBar   *searchbar.Session
	overlays    picker.Overlays
	hosting     hosting.Intent
	preferences *locale.Preferences
	results     *results.Tracker
	recorder    events.Recorder
}

func New(id string, settings locale.Settings, clock dates.Clock) *Visitor {
	settings.VisitorID = id
	v := &Visitor{
		ID:          id,
		searchBar:   searchbar.New(searchbar.Options{Clock: clock}),
		preferences: locale.NewPreferences(settings),
		results:     results.NewTracker(),
	}
	v.preferences.Observe(func(c locale.Change) {
		for _, ev := range c.Events() {
			v.recorder.Record(ev)
		}
	})
	return v
}

// State is the view of a visitor handed to callbacks under the lock.
type State struct {
	SearchBar   *searchbar.Session
	Overlays    *picker.Overlays
	Hosting     *hosting.Intent
	Preferences *locale.Preferences
	Events      *events.Recorder
}

// Do runs fn with exclusive access to the visitor's state.
func (v *Visitor) Do(fn func(State) error) error {
	_, err := v.Apply(fn)
	return err
}

// Apply is Do that also returns the events recorded by fn. Events recorded
// by a failing fn are discarded.
func (v *Visitor) Apply(fn func(State) error) ([]events.DomainEvent, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	err := fn(State{
		SearchBar:   v.searchBar,
		Overlays:    &v.overlays,
		Hosting:     &v.hosting,
		Preferences: v.preferences,
		Events:      &v.recorder,
	})
	evs := v.recorder.Drain()
	if err != nil {
		return nil, err
	}
	return evs, nil
}

// Results is safe to use without the visitor lock.
func (v *Visitor) Results() *results.Tracker { return v.results }

// Preferences is safe to read without the visitor lock.
func (v *Visitor) Preferences() *locale.Preferences { return v.preferences }

// Registry finds or creates visitors.
type Registry interface {
	Get(ctx context.Context, id string) (*Visitor, error)
}
