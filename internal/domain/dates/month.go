package dates

import "stayfront/internal/domain/shared/daterange"

// GridCells is the fixed size of a month grid: six weeks of seven days.
const GridCells = 42

// WeekdayHeaders label the grid columns, Sunday first.
var WeekdayHeaders = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// Cell is one square of the month grid. Blank cells pad the month.
type Cell struct {
	Day      daterange.Day `json:"day"`
	Blank    bool          `json:"blank"`
	Today    bool          `json:"today"`
	Selected bool          `json:"selected"`
	InRange  bool          `json:"inRange"`
	Disabled bool          `json:"disabled"`
}

// Month is a rendered calendar page.
type Month struct {
	First   daterange.Day   `json:"first"`
	Title   string          `json:"title"`
	CanPrev bool            `json:"canPrev"`
	CanNext bool            `json:"canNext"`
	Cells   [GridCells]Cell `json:"cells"`
}

// BuildMonth lays out the month containing first. Leading cells up to the
// weekday of day 1 and trailing cells up to 42 are blank.
func BuildMonth(first daterange.Day, rng daterange.DateRange, today daterange.Day) Month {
	first = first.FirstOfMonth()
	m := Month{
		First: first,
		Title: first.Format("January 2006"),
	}
	offset := int(first.Weekday())
	days := first.DaysInMonth()
	for i := range m.Cells {
		n := i - offset + 1
		if n < 1 || n > days {
			m.Cells[i] = Cell{Blank: true}
			continue
		}
		day := first.AddDays(n - 1)
		m.Cells[i] = Cell{
			Day:      day,
			Today:    day.Equal(today),
			Selected: rng.IsBoundary(day),
			InRange:  rng.Between(day),
			Disabled: day.Before(today),
		}
	}
	return m
}

// Pager tracks the left of the two visible months. It never moves before
// the current month.
type Pager struct {
	base  daterange.Day
	floor daterange.Day
}

func NewPager(today daterange.Day) Pager {
	first := today.FirstOfMonth()
	return Pager{base: first, floor: first}
}

func (p Pager) Left() daterange.Day { return p.base }
func (p Pager) Right() daterange.Day { return p.base.AddMonths(1) }

func (p Pager) CanPrev() bool {
	return p.base.After(p.floor)
}

func (p *Pager) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.base = p.base.AddMonths(-1)
	return true
}

func (p *Pager) Next() {
	p.base = p.base.AddMonths(1)
}

// follow raises the floor when the calendar month has rolled over.
func (p *Pager) follow(today daterange.Day) {
	p.floor = today.FirstOfMonth()
	if p.base.Before(p.floor) {
		p.base = p.floor
	}
}

// Months renders the two side-by-side months with the current selection.
func (s *Selector) Months() [2]Month {
	today := s.Today()
	s.pager.follow(today)
	left := BuildMonth(s.pager.Left(), s.rng, today)
	left.CanPrev = s.pager.CanPrev()
	right := BuildMonth(s.pager.Right(), s.rng, today)
	right.CanNext = true
	return [2]Month{left, right}
}

// PrevMonth pages back; it reports false at the current month.
func (s *Selector) PrevMonth() bool {
	s.pager.follow(s.Today())
	return s.pager.Prev()
}

func (s *Selector) NextMonth() { s.pager.Next() }
