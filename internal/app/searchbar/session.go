package searchbar

import (
	"errors"
	"fmt"
	"time"

	"stayfront/internal/app/dto"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/destinations"
	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/locale"
	"stayfront/internal/domain/picker"
	"stayfront/internal/domain/search"
	"stayfront/internal/domain/shared/daterange"
)

var ErrNotDateField = errors.New("searchbar: not a date field")

// Session is one visitor's search bar: a coordinator deciding which panel is
// mounted plus the three selectors behind the panels. It is not safe for
// concurrent use; callers serialize access per visitor.
type Session struct {
	panel       *picker.Coordinator
	dates       *dates.Selector
	destination *destinations.Selector
	guests      *guests.Store
	clock       dates.Clock
}

type Options struct {
	Clock   dates.Clock
	Catalog []destinations.Suggestion
	Recent  *destinations.Recent
}

func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Catalog == nil {
		opts.Catalog = destinations.DefaultCatalog()
	}
	if opts.Recent == nil {
		opts.Recent = destinations.NewRecent(0, destinations.SeedRecent()...)
	}
	s := &Session{
		panel:       picker.NewCoordinator(),
		dates:       dates.NewSelector(opts.Clock),
		destination: destinations.NewSelector(opts.Catalog, opts.Recent),
		guests:      guests.NewStore(guests.Counts{}),
		clock:       opts.Clock,
	}
	s.panel.OnChange(s.syncFocus)
	return s
}

func (s *Session) Active() picker.Field { return s.panel.Active() }

func (s *Session) Range() daterange.DateRange { return s.dates.Range() }

func (s *Session) Counts() guests.Counts { return s.guests.Counts() }

func (s *Session) DestinationText() string { return s.destination.Text() }

// OnPanelChange registers a listener for panel transitions.
func (s *Session) OnPanelChange(fn func(picker.Transition)) { s.panel.OnChange(fn) }

// OnGuestsChange registers a listener for counter changes.
func (s *Session) OnGuestsChange(fn guests.Observer) { s.guests.Observe(fn) }

// Open mounts the panel for f. Opening a date field aims the next pick at it.
func (s *Session) Open(f picker.Field) error {
	return s.panel.Open(f)
}

func (s *Session) Dismiss(reason picker.DismissReason) bool {
	return s.panel.Close(reason)
}

func (s *Session) PointerDown(inside bool) bool {
	return s.panel.PointerDown(inside)
}

func (s *Session) KeyDown(key string) bool {
	return s.panel.KeyDown(key)
}

// TypeDestination stores the raw text and keeps the destination panel open.
func (s *Session) TypeDestination(text string) {
	s.destination.SetText(text)
	if !s.panel.IsOpen(picker.FieldDestination) {
		_ = s.panel.Open(picker.FieldDestination)
	}
}

// SelectDestination takes a suggestion or recent search and closes the panel.
func (s *Session) SelectDestination(name string) {
	s.destination.Select(name)
	s.panel.Close(picker.DismissSelected)
}

// ClearDestination empties the text and reopens its panel.
func (s *Session) ClearDestination() {
	s.destination.Clear()
	_ = s.panel.Open(picker.FieldDestination)
}

// PickDay applies a calendar click and keeps the panel on the boundary the
// selector now aims at.
func (s *Session) PickDay(day daterange.Day) error {
	if err := s.dates.Pick(day); err != nil {
		return err
	}
	s.openOnFocus()
	return nil
}

// ClearDate drops a boundary and reopens the panel on it.
func (s *Session) ClearDate(f picker.Field) error {
	focus, ok := focusFor(f)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotDateField, f)
	}
	if _, err := s.dates.Clear(focus); err != nil {
		return err
	}
	s.openOnFocus()
	return nil
}

func (s *Session) SetDateMode(m dates.Mode) error {
	return s.dates.SetMode(m)
}

func (s *Session) PrevMonth() bool { return s.dates.PrevMonth() }

func (s *Session) NextMonth() { s.dates.NextMonth() }

func (s *Session) SetMonthDuration(d dates.MonthDuration) error {
	return s.dates.SetMonthDuration(d)
}

func (s *Session) SetStayDuration(d dates.StayDuration) error {
	return s.dates.SetStayDuration(d)
}

func (s *Session) ToggleFlexibleMonth(name string) error {
	return s.dates.ToggleMonth(name)
}

func (s *Session) IncrementGuests(f guests.Field) error {
	return s.guests.Increment(f)
}

func (s *Session) DecrementGuests(f guests.Field) error {
	return s.guests.Decrement(f)
}

// ClearGuests zeroes the counters and reopens the guests panel.
func (s *Session) ClearGuests() {
	s.guests.Clear()
	_ = s.panel.Open(picker.FieldGuests)
}

// Submit builds the request from the three selectors. A valid submission
// closes the panel and is remembered as a recent search.
func (s *Session) Submit() (search.Request, error) {
	req, err := search.Build(s.destination.Text(), s.dates.Range(), s.guests.Counts())
	if err != nil {
		return search.Request{}, err
	}
	s.panel.Close(picker.DismissExplicit)
	s.destination.Remember(destinations.RecentSearch{
		ID:          fmt.Sprintf("recent-%d", s.clock().UnixNano()),
		Destination: req.Where,
		Dates:       dates.RangeLabel(req.Dates),
		Guests:      req.Guests.Summary(),
		Icon:        "🕘",
	})
	return req, nil
}

// Snapshot renders the state for the JSON API and the templates.
func (s *Session) Snapshot(t locale.Translator) dto.SearchBar {
	rng := s.dates.Range()
	label := func(v, fallbackKey string) string {
		if v == "" {
			return t.T(fallbackKey)
		}
		return v
	}

	months := s.dates.Months()
	weekdays := make([]string, 0, len(dates.WeekdayHeaders))
	weekdays = append(weekdays, dates.WeekdayHeaders[:]...)

	return dto.SearchBar{
		ActiveField: string(s.panel.Active()),
		Anchor:      string(s.panel.Anchor()),
		Destination: dto.DestinationUI{
			Text:        s.destination.Text(),
			Label:       label(s.destination.Text(), "search.destinations"),
			ShowRecent:  s.destination.ShowRecent(),
			Recent:      s.destination.Recent(),
			Suggestions: s.destination.Suggestions(),
		},
		Dates: dto.DatesUI{
			Mode:           string(s.dates.Mode()),
			Focus:          string(s.dates.Focus()),
			CheckIn:        rng.CheckIn.String(),
			CheckOut:       rng.CheckOut.String(),
			CheckInLabel:   label(dayLabel(rng.CheckIn), "search.addDates"),
			CheckOutLabel:  label(dayLabel(rng.CheckOut), "search.addDates"),
			Label:          label(s.dates.Label(), "search.addDates"),
			MonthDuration:  int(s.dates.MonthDuration()),
			Flexible:       s.dates.Flexible(),
			FlexibleMonths: dates.FlexibleMonths(s.dates.Today()),
			Months:         []dto.CalendarMonth{dto.CalendarMonthFrom(months[0]), dto.CalendarMonthFrom(months[1])},
			Weekdays:       weekdays,
		},
		Guests: dto.GuestsUI{
			Counts: s.guests.Counts(),
			Total:  s.guests.Counts().Total(),
			Label:  label(s.guests.Counts().Summary(), "search.addGuests"),
		},
	}
}

// syncFocus keeps the date selector aimed at the date field the coordinator
// mounted.
func (s *Session) syncFocus(t picker.Transition) {
	if focus, ok := focusFor(t.To); ok {
		_ = s.dates.SetFocus(focus)
	}
}

func (s *Session) openOnFocus() {
	f := picker.FieldCheckIn
	if s.dates.Focus() == dates.FocusCheckOut {
		f = picker.FieldCheckOut
	}
	_ = s.panel.Open(f)
}

func focusFor(f picker.Field) (dates.Focus, bool) {
	switch f {
	case picker.FieldCheckIn:
		return dates.FocusCheckIn, true
	case picker.FieldCheckOut:
		return dates.FocusCheckOut, true
	default:
		return "", false
	}
}

func dayLabel(d daterange.Day) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2")
}
