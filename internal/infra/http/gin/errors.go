package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayfront/internal/app/handlers/listings"
	"stayfront/internal/app/handlers/preferences"
	"stayfront/internal/app/results"
	"stayfront/internal/app/searchbar"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/locale"
	"stayfront/internal/domain/picker"
	"stayfront/internal/domain/search"
	"stayfront/internal/domain/shared/daterange"
)

var badRequest = []error{
	visitor.ErrUnknownVisitor,
	searchbar.ErrNotDateField,
	picker.ErrUnknownField,
	picker.ErrUnknownOverlay,
	dates.ErrDayInPast,
	dates.ErrNotExactMode,
	dates.ErrUnknownMode,
	dates.ErrUnknownFocus,
	dates.ErrInvalidDuration,
	dates.ErrUnknownStay,
	dates.ErrUnknownMonth,
	daterange.ErrInvalidDay,
	daterange.ErrInvalidRange,
	guests.ErrUnknownField,
	hosting.ErrUnknownKind,
	locale.ErrUnknownLanguage,
	locale.ErrUnknownCurrency,
	preferences.ErrNothingToUpdate,
	listings.ErrRoomIDRequired,
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrMissingDestination), errors.Is(err, hosting.ErrNoKindChosen):
		return http.StatusUnprocessableEntity
	case errors.Is(err, results.ErrSuperseded):
		return http.StatusConflict
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// writeError answers {"error": ...}. The missing-destination message is
// shown to the visitor, so it is translated when t is set.
func writeError(c *gin.Context, t *locale.Translator, err error) {
	status := statusFor(err)
	msg := err.Error()
	if t != nil && errors.Is(err, search.ErrMissingDestination) {
		msg = t.T("search.missingDestination")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeBindError answers malformed input with 400.
func writeBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
