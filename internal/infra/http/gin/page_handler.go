package ginserver

import (
	"context"
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayfront/internal/app/dto"
	listingsapp "stayfront/internal/app/handlers/listings"
	preferencesapp "stayfront/internal/app/handlers/preferences"
	"stayfront/internal/app/queries"
	"stayfront/internal/app/results"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/locale"
	"stayfront/internal/domain/search"
)

// PageHandler renders the homepage, the results page and the room page.
type PageHandler struct {
	Queries    queries.Bus
	Visitors   visitor.Registry
	Dictionary locale.Dictionary
}

type pageData struct {
	Lang        string
	T           func(string) string
	SearchBar   dto.SearchBar
	Preferences dto.Preferences
	HostKinds   []hosting.Kind
	Home        dto.Homepage
	Results     dto.Results
	Room        dto.Room
}

func (h PageHandler) Home(c *gin.Context) {
	data, _, ok := h.frame(c)
	if !ok {
		return
	}
	home, err := queries.Ask[listingsapp.GetHomepageQuery, dto.Homepage](c.Request.Context(), h.Queries, listingsapp.GetHomepageQuery{})
	if err != nil {
		writeError(c, nil, err)
		return
	}
	data.Home = home
	c.HTML(http.StatusOK, "home", data)
}

// Search renders the results page. A render overtaken by a newer search of
// the same visitor answers 409 with no body.
func (h PageHandler) Search(c *gin.Context) {
	data, v, ok := h.frame(c)
	if !ok {
		return
	}
	view, err := h.results(c.Request.Context(), v, search.ParseQuery(c.Request.URL.Query()))
	if errors.Is(err, results.ErrSuperseded) {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusConflict)
		return
	}
	if err != nil {
		writeError(c, nil, err)
		return
	}
	view.Message = translateMessage(data.T, view.MessageKey)
	data.Results = view
	c.HTML(http.StatusOK, "search", data)
}

// Results is the JSON form of Search.
func (h PageHandler) Results(c *gin.Context) {
	v, ok := loadVisitor(c, h.Visitors)
	if !ok {
		return
	}
	view, err := h.results(c.Request.Context(), v, search.ParseQuery(c.Request.URL.Query()))
	if err != nil {
		writeError(c, nil, err)
		return
	}
	tr := h.Dictionary.Translator(v.Preferences().Language())
	view.Message = translateMessage(tr.T, view.MessageKey)
	c.JSON(http.StatusOK, view)
}

func (h PageHandler) Room(c *gin.Context) {
	data, _, ok := h.frame(c)
	if !ok {
		return
	}
	q := listingsapp.GetRoomQuery{ID: c.Param("id"), Search: search.ParseQuery(c.Request.URL.Query())}
	room, err := queries.Ask[listingsapp.GetRoomQuery, dto.Room](c.Request.Context(), h.Queries, q)
	if err != nil {
		writeError(c, nil, err)
		return
	}
	room.Message = translateMessage(data.T, room.MessageKey)
	data.Room = room
	c.HTML(http.StatusOK, "room", data)
}

func (h PageHandler) results(ctx context.Context, v *visitor.Visitor, q search.Query) (dto.Results, error) {
	return queries.Ask[listingsapp.SearchResultsQuery, dto.Results](ctx, h.Queries, listingsapp.SearchResultsQuery{
		Search:  q,
		Tracker: v.Results(),
	})
}

// frame collects what every page shows: the search bar, the dialogs and the
// translator of the visitor's language.
func (h PageHandler) frame(c *gin.Context) (pageData, *visitor.Visitor, bool) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "page handler unavailable"})
		return pageData{}, nil, false
	}
	v, ok := loadVisitor(c, h.Visitors)
	if !ok {
		return pageData{}, nil, false
	}
	tr := h.Dictionary.Translator(v.Preferences().Language())
	data := pageData{
		Lang:      string(tr.Language()),
		T:         tr.T,
		HostKinds: hosting.Kinds,
	}
	_ = v.Do(func(s visitor.State) error {
		data.SearchBar = s.SearchBar.Snapshot(tr)
		data.Preferences = preferencesapp.View(s)
		return nil
	})
	return data, v, true
}

func translateMessage(t func(string) string, key string) string {
	if key == "" {
		return ""
	}
	return t(key)
}

var _ PageHTTP = PageHandler{}
