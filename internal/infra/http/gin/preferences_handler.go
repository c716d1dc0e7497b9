package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/dto"
	hostingapp "stayfront/internal/app/handlers/hosting"
	preferencesapp "stayfront/internal/app/handlers/preferences"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/picker"
)

// PreferencesHandler serves the language and currency picker, the overlay
// dialogs and the become-a-host dialog.
type PreferencesHandler struct {
	Visitors visitor.Registry
	Commands commands.Bus
}

type languageForm struct {
	Language string `form:"language" json:"language" binding:"required"`
}

type currencyForm struct {
	Currency string `form:"currency" json:"currency" binding:"required"`
}

func (h PreferencesHandler) Get(c *gin.Context) {
	h.mutate(c, func(visitor.State) error { return nil })
}

func (h PreferencesHandler) SetLanguage(c *gin.Context) {
	var form languageForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.update(c, preferencesapp.UpdatePreferencesCommand{VisitorID: visitorID(c), Language: form.Language})
}

func (h PreferencesHandler) SetCurrency(c *gin.Context) {
	var form currencyForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindError(c, err)
		return
	}
	h.update(c, preferencesapp.UpdatePreferencesCommand{VisitorID: visitorID(c), Currency: form.Currency})
}

func (h PreferencesHandler) OpenOverlay(c *gin.Context) {
	overlay, err := picker.ParseOverlay(c.Param("overlay"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error {
		s.Overlays.Open(overlay)
		return nil
	})
}

func (h PreferencesHandler) CloseOverlay(c *gin.Context) {
	h.mutate(c, func(s visitor.State) error {
		s.Overlays.Close()
		return nil
	})
}

func (h PreferencesHandler) ChooseHostKind(c *gin.Context) {
	kind, err := hosting.ParseKind(c.Param("kind"))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	h.mutate(c, func(s visitor.State) error { return s.Hosting.Choose(kind) })
}

// SubmitHosting answers 422 while no kind is chosen.
func (h PreferencesHandler) SubmitHosting(c *gin.Context) {
	if h.Commands == nil {
		writeError(c, nil, errors.New("command bus unavailable"))
		return
	}
	ev, err := commands.Dispatch[hostingapp.SubmitIntentCommand, hosting.IntentSubmitted](
		c.Request.Context(), h.Commands, hostingapp.SubmitIntentCommand{VisitorID: visitorID(c)},
	)
	if err != nil {
		writeError(c, nil, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"kind": ev.Kind, "submittedAt": ev.At})
}

func (h PreferencesHandler) update(c *gin.Context, cmd preferencesapp.UpdatePreferencesCommand) {
	if h.Commands == nil {
		writeError(c, nil, errors.New("command bus unavailable"))
		return
	}
	view, err := commands.Dispatch[preferencesapp.UpdatePreferencesCommand, dto.Preferences](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h PreferencesHandler) mutate(c *gin.Context, fn func(visitor.State) error) {
	v, ok := loadVisitor(c, h.Visitors)
	if !ok {
		return
	}
	var view dto.Preferences
	err := v.Do(func(s visitor.State) error {
		if err := fn(s); err != nil {
			return err
		}
		view = preferencesapp.View(s)
		return nil
	})
	if err != nil {
		writeError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

var _ PreferencesHTTP = PreferencesHandler{}
