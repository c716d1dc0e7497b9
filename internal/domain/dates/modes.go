package dates

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"stayfront/internal/domain/shared/daterange"
)

var (
	ErrInvalidDuration = errors.New("dates: month duration must be between 1 and 12")
	ErrUnknownStay     = errors.New("dates: unknown stay duration")
	ErrUnknownMonth    = errors.New("dates: month is not offered")
)

// MonthDuration is the "months" mode dial, 1 to 12.
type MonthDuration int

const (
	DefaultMonthDuration MonthDuration = 3
	maxMonthDuration     MonthDuration = 12
)

func (d MonthDuration) Label() string {
	if d == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", int(d))
}

// StayDuration is the length chosen in flexible mode.
type StayDuration string

const (
	StayWeekend StayDuration = "weekend"
	StayWeek    StayDuration = "week"
	StayMonth   StayDuration = "month"
)

func ParseStayDuration(raw string) (StayDuration, error) {
	switch d := StayDuration(strings.ToLower(strings.TrimSpace(raw))); d {
	case StayWeekend, StayWeek, StayMonth:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStay, raw)
	}
}

// Flexible is the "go anytime" selector: a stay length plus optional months.
type Flexible struct {
	Duration StayDuration `json:"duration"`
	Months   []string     `json:"months"`
}

// Label gives "Anytime" until a month is chosen.
func (f Flexible) Label() string {
	if len(f.Months) == 0 {
		return "Anytime"
	}
	name := string(f.Duration)
	if name == "" {
		name = string(StayWeekend)
	}
	return strings.ToUpper(name[:1]) + name[1:] + " in " + strings.Join(f.Months, ", ")
}

// FlexibleMonthCount is how many months flexible mode offers.
const FlexibleMonthCount = 6

// FlexibleMonths names the offered months starting with the current one.
func FlexibleMonths(today daterange.Day) []string {
	first := today.FirstOfMonth()
	out := make([]string, 0, FlexibleMonthCount)
	for i := 0; i < FlexibleMonthCount; i++ {
		out = append(out, first.AddMonths(i).Format("January 2006"))
	}
	return out
}

func (s *Selector) MonthDuration() MonthDuration { return s.byMonth }

func (s *Selector) SetMonthDuration(d MonthDuration) error {
	if d < 1 || d > maxMonthDuration {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, int(d))
	}
	s.byMonth = d
	return nil
}

func (s *Selector) Flexible() Flexible {
	return Flexible{Duration: s.flexible.Duration, Months: slices.Clone(s.flexible.Months)}
}

func (s *Selector) SetStayDuration(d StayDuration) error {
	if _, err := ParseStayDuration(string(d)); err != nil {
		return err
	}
	s.flexible.Duration = d
	return nil
}

// ToggleMonth adds or removes one of the offered months, keeping the order
// in which they were chosen.
func (s *Selector) ToggleMonth(name string) error {
	if !slices.Contains(FlexibleMonths(s.Today()), name) {
		return fmt.Errorf("%w: %q", ErrUnknownMonth, name)
	}
	if idx := slices.Index(s.flexible.Months, name); idx >= 0 {
		s.flexible.Months = slices.Delete(s.flexible.Months, idx, idx+1)
		return nil
	}
	s.flexible.Months = append(s.flexible.Months, name)
	return nil
}
