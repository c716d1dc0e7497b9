package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
	ErrInvalidDay   = errors.New("daterange: invalid calendar day")
)

// ISOLayout is the wire format of a calendar day.
const ISOLayout = "2006-01-02"

// Day is a calendar date stored as UTC midnight. The zero Day means "no date".
type Day struct {
	t time.Time
}

// NewDay normalizes overflowing values the same way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf keeps the calendar date of t in its own location and drops the clock.
func DayOf(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

func ParseDay(raw string) (Day, error) {
	t, err := time.Parse(ISOLayout, raw)
	if err != nil {
		return Day{}, errors.Join(ErrInvalidDay, err)
	}
	return DayOf(t), nil
}

func (d Day) IsZero() bool { return d.t.IsZero() }

// String renders YYYY-MM-DD, or an empty string for the zero Day.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISOLayout)
}

func (d Day) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layout)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(raw []byte) error {
	if len(raw) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(raw))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Day) Time() time.Time { return d.t }
func (d Day) Year() int { return d.t.Year() }
func (d Day) Month() time.Month { return d.t.Month() }
func (d Day) DayOfMonth() int { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) AddMonths(n int) Day { return Day{t: d.t.AddDate(0, n, 0)} }
func (d Day) FirstOfMonth() Day { return NewDay(d.Year(), d.Month(), 1) }
func (d Day) DaysInMonth() int { return NewDay(d.Year(), d.Month()+1, 0).DayOfMonth() }
func (d Day) SameMonth(other Day) bool { return d.Year() == other.Year() && d.Month() == other.Month() }

// DateRange is a stay of [CheckIn, CheckOut). Either side may be zero while
// the range is still being picked.
type DateRange struct {
	CheckIn  Day
	CheckOut Day
}

func New(checkIn, checkOut Day) (DateRange, error) {
	dr := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// Validate accepts an empty range, a lone check-in, or a complete range with
// checkout strictly after checkin.
func (dr DateRange) Validate() error {
	if dr.CheckOut.IsZero() {
		return nil
	}
	if dr.CheckIn.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Complete() bool {
	return !dr.CheckIn.IsZero() && !dr.CheckOut.IsZero()
}

func (dr DateRange) IsEmpty() bool {
	return dr.CheckIn.IsZero() && dr.CheckOut.IsZero()
}

func (dr DateRange) Nights() int {
	if !dr.Complete() {
		return 0
	}
	return int(dr.CheckOut.t.Sub(dr.CheckIn.t).Hours() / 24)
}

// Between reports whether d lies strictly inside the range.
func (dr DateRange) Between(d Day) bool {
	if !dr.Complete() || d.IsZero() {
		return false
	}
	return d.After(dr.CheckIn) && d.Before(dr.CheckOut)
}

// IsBoundary reports whether d is the check-in or the check-out day.
func (dr DateRange) IsBoundary(d Day) bool {
	if d.IsZero() {
		return false
	}
	return d.Equal(dr.CheckIn) || d.Equal(dr.CheckOut)
}
