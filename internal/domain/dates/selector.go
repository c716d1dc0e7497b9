package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stayfront/internal/domain/shared/daterange"
)

var (
	ErrDayInPast    = errors.New("dates: day is before today")
	ErrNotExactMode = errors.New("dates: calendar picks need exact mode")
	ErrUnknownMode  = errors.New("dates: unknown mode")
	ErrUnknownFocus = errors.New("dates: unknown focus")
)

// Mode is the selection granularity of the picker.
type Mode string

const (
	ModeExact    Mode = "exact"
	ModeByMonth  Mode = "byMonth"
	ModeFlexible Mode = "flexible"
)

func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "exact", "dates":
		return ModeExact, nil
	case "bymonth", "months":
		return ModeByMonth, nil
	case "flexible":
		return ModeFlexible, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Focus is the boundary the next calendar pick is aimed at.
type Focus string

const (
	FocusCheckIn  Focus = "checkIn"
	FocusCheckOut Focus = "checkOut"
)

// Clock returns the current instant; tests pin it.
type Clock func() time.Time

// Selector is the date-range picker state machine.
type Selector struct {
	rng      daterange.DateRange
	mode     Mode
	focus    Focus
	byMonth  MonthDuration
	flexible Flexible
	pager    Pager
	clock    Clock
}

func NewSelector(clock Clock) *Selector {
	if clock == nil {
		clock = time.Now
	}
	s := &Selector{
		mode:     ModeExact,
		focus:    FocusCheckIn,
		byMonth:  DefaultMonthDuration,
		flexible: Flexible{Duration: StayWeekend},
		clock:    clock,
	}
	s.pager = NewPager(s.Today())
	return s
}

// Today is the current calendar day; anything before it is disabled.
func (s *Selector) Today() daterange.Day {
	return daterange.DayOf(s.clock())
}

func (s *Selector) Range() daterange.DateRange { return s.rng }
func (s *Selector) Mode() Mode { return s.mode }
func (s *Selector) Focus() Focus { return s.focus }

func (s *Selector) SetFocus(f Focus) error {
	switch f {
	case FocusCheckIn, FocusCheckOut:
		s.focus = f
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFocus, f)
	}
}

func (s *Selector) SetMode(m Mode) error {
	switch m {
	case ModeExact, ModeByMonth, ModeFlexible:
		s.mode = m
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
}

// Pick applies a calendar click. Exact mode only.
//
// An explicit check-in pick always moves check-in and drops a checkout that
// is no longer after it. Otherwise the first pick sets check-in, and a later
// pick sets checkout when it falls after check-in or restarts the range
// from that day when it does not.
func (s *Selector) Pick(day daterange.Day) error {
	if s.mode != ModeExact {
		return ErrNotExactMode
	}
	if day.IsZero() {
		return daterange.ErrInvalidDay
	}
	if day.Before(s.Today()) {
		return fmt.Errorf("%w: %s", ErrDayInPast, day)
	}

	switch {
	case s.focus == FocusCheckIn:
		s.rng.CheckIn = day
		if !s.rng.CheckOut.IsZero() && !s.rng.CheckOut.After(day) {
			s.rng.CheckOut = daterange.Day{}
		}
	case s.rng.CheckIn.IsZero():
		s.rng.CheckIn = day
	case day.After(s.rng.CheckIn):
		s.rng.CheckOut = day
	default:
		s.rng.CheckIn = day
		s.rng.CheckOut = daterange.Day{}
	}
	s.focus = FocusCheckOut
	return nil
}

// Clear drops the given boundary and returns the focus the picker should
// reopen on. Clearing check-in also clears checkout.
func (s *Selector) Clear(f Focus) (Focus, error) {
	switch f {
	case FocusCheckIn:
		s.rng = daterange.DateRange{}
	case FocusCheckOut:
		s.rng.CheckOut = daterange.Day{}
	default:
		return s.focus, fmt.Errorf("%w: %q", ErrUnknownFocus, f)
	}
	s.focus = f
	return f, nil
}

// Reset empties the selector and returns to exact mode.
func (s *Selector) Reset() {
	s.rng = daterange.DateRange{}
	s.mode = ModeExact
	s.focus = FocusCheckIn
	s.byMonth = DefaultMonthDuration
	s.flexible = Flexible{Duration: StayWeekend}
	s.pager = NewPager(s.Today())
}

// Label is the text shown in the search bar, or "" when nothing is chosen.
func (s *Selector) Label() string {
	switch s.mode {
	case ModeByMonth:
		return s.byMonth.Label()
	case ModeFlexible:
		return s.flexible.Label()
	}
	return RangeLabel(s.rng)
}

// RangeLabel renders "Oct 31 - Nov 2", a lone "Oct 31" or "".
func RangeLabel(rng daterange.DateRange) string {
	const layout = "Jan 2"
	switch {
	case rng.Complete():
		return rng.CheckIn.Format(layout) + " - " + rng.CheckOut.Format(layout)
	case !rng.CheckIn.IsZero():
		return rng.CheckIn.Format(layout)
	default:
		return ""
	}
}
