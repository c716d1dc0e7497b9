package ginserver

import (
	"errors"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/dto"
	searchapp "stayfront/internal/app/handlers/search"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/locale"
	"stayfront/internal/domain/picker"
	"stayfront/internal/domain/shared/daterange"
)

// SearchBarHandler drives a visitor's search bar. Every call answers with
// the fresh snapshot.
type SearchBarHandler struct {
	Visitors   visitor.Registry
	Dictionary locale.Dictionary
	Commands   commands.Bus
}

type destinationForm struct {
	Text string `form:"text" json:"text"`
}

type selectForm struct {
	Name string `form:"name" json:"name" binding:"required"`
}

type dayForm struct {
	Day string `form:"day" json:"day" binding:"required"`
}

type monthDurationForm struct {
	Months int `form:"months" json:"months" binding:"required,min=1,max=12"`
}

type flexibleMonthForm struct {
	Month string `form:"month" json:"month" binding:"required"`
}

type submitForm struct {
	Where *string `form:"where" json:"where"`
}

func (h SearchBarHandler) State(c *gin.Context) {
	h.mutate(c, func(visitor.State) error { return nil })
}

func (h SearchBarHandler) Open(c *gin.Context) {
	field, err := picker.ParseField(c.Param("field"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.Open(field) })
}

// Dismiss closes the open panel; reason=escape and reason=outside behave
// like the matching key press and pointer event.
func (h SearchBarHandler) Dismiss(c *gin.Context) {
	reason := c.Query("reason")
	h.mutate(c, func(s visitor.State) error {
		switch reason {
		case string(picker.DismissEscape):
			s.SearchBar.KeyDown("Escape")
		case string(picker.DismissOutside):
			s.SearchBar.PointerDown(false)
		default:
			s.SearchBar.Dismiss(picker.DismissExplicit)
		}
		return nil
	})
}

func (h SearchBarHandler) Pointer(c *gin.Context) {
	inside, err := strconv.ParseBool(c.DefaultQuery("inside", "false"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.PointerDown(inside)
		return nil
	})
}

func (h SearchBarHandler) TypeDestination(c *gin.Context) {
	var form destinationForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.TypeDestination(form.Text)
		return nil
	})
}

func (h SearchBarHandler) SelectDestination(c *gin.Context) {
	var form selectForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.SelectDestination(form.Name)
		return nil
	})
}

func (h SearchBarHandler) ClearDestination(c *gin.Context) {
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.ClearDestination()
		return nil
	})
}

func (h SearchBarHandler) PickDay(c *gin.Context) {
	var form dayForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	day, err := daterange.ParseDay(form.Day)
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.PickDay(day) })
}

func (h SearchBarHandler) ClearDate(c *gin.Context) {
	field, err := picker.ParseField(c.Param("field"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.ClearDate(field) })
}

func (h SearchBarHandler) SetMode(c *gin.Context) {
	mode, err := dates.ParseMode(c.Param("mode"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.SetDateMode(mode) })
}

func (h SearchBarHandler) PrevMonth(c *gin.Context) {
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.PrevMonth()
		return nil
	})
}

func (h SearchBarHandler) NextMonth(c *gin.Context) {
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.NextMonth()
		return nil
	})
}

func (h SearchBarHandler) SetMonthDuration(c *gin.Context) {
	var form monthDurationForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.mutate(c, func(s visitor.State) error {
		return s.SearchBar.SetMonthDuration(dates.MonthDuration(form.Months))
	})
}

func (h SearchBarHandler) SetStayDuration(c *gin.Context) {
	stay, err := dates.ParseStayDuration(c.Param("duration"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.SetStayDuration(stay) })
}

func (h SearchBarHandler) ToggleFlexibleMonth(c *gin.Context) {
	var form flexibleMonthForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.SearchBar.ToggleFlexibleMonth(form.Month) })
}

func (h SearchBarHandler) IncrementGuests(c *gin.Context) {
	h.guests(c, func(s visitor.State, f guests.Field) error { return s.SearchBar.IncrementGuests(f) })
}

func (h SearchBarHandler) DecrementGuests(c *gin.Context) {
	h.guests(c, func(s visitor.State, f guests.Field) error { return s.SearchBar.DecrementGuests(f) })
}

func (h SearchBarHandler) ClearGuests(c *gin.Context) {
	h.mutate(c, func(s visitor.State) error {
		s.SearchBar.ClearGuests()
		return nil
	})
}

// Submit answers a valid search with the results location: 200 JSON for
// callers that accept JSON, 303 for plain form posts. A blank destination
// answers 422 and nothing is fetched. An optional "where" value replaces the
// typed destination first.
func (h SearchBarHandler) Submit(c *gin.Context) {
	var form submitForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	v, ok := loadVisitor(c, h.Visitors)
	if !ok {
		return
	}
	tr := h.Dictionary.Translator(v.Preferences().Language())
	if form.Where != nil {
		_ = v.Do(func(s visitor.State) error {
			s.SearchBar.TypeDestination(*form.Where)
			return nil
		})
	}
	if h.Commands == nil {
		writeError(c, &tr, errors.New("command bus unavailable"))
		return
	}
	res, err := commands.Dispatch[searchapp.SubmitSearchCommand, searchapp.SubmitResult](
		c.Request.Context(), h.Commands, searchapp.SubmitSearchCommand{VisitorID: v.ID},
	)
	if err != nil {
		writeError(c, &tr, err)
		return
	}
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, res)
		return
	}
	c.Redirect(http.StatusSeeOther, res.Location)
}

func (h SearchBarHandler) guests(c *gin.Context, fn func(visitor.State, guests.Field) error) {
	field, err := guests.ParseField(c.Param("field"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return fn(s, field) })
}

func (h SearchBarHandler) mutate(c *gin.Context, fn func(visitor.State) error) {
	v, ok := loadVisitor(c, h.Visitors)
	if !ok {
		return
	}
	tr := h.Dictionary.Translator(v.Preferences().Language())
	var snapshot dto.SearchBar
	err := v.Do(func(s visitor.State) error {
		if err := fn(s); err != nil {
			return err
		}
		snapshot = s.SearchBar.Snapshot(tr)
		return nil
	})
	if err != nil {
		writeError(c, &tr, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

var _ SearchBarHTTP = SearchBarHandler{}
