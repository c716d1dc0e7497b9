package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayfront/internal/infra/config"
	"stayfront/internal/infra/obs"
)

type PageHTTP interface {
	Home(c *gin.Context)
	Search(c *gin.Context)
	Room(c *gin.Context)
	Results(c *gin.Context)
}

type SearchBarHTTP interface {
	State(c *gin.Context)
	Open(c *gin.Context)
	Dismiss(c *gin.Context)
	Pointer(c *gin.Context)
	TypeDestination(c *gin.Context)
	SelectDestination(c *gin.Context)
	ClearDestination(c *gin.Context)
	PickDay(c *gin.Context)
	ClearDate(c *gin.Context)
	SetMode(c *gin.Context)
	PrevMonth(c *gin.Context)
	NextMonth(c *gin.Context)
	SetMonthDuration(c *gin.Context)
	SetStayDuration(c *gin.Context)
	ToggleFlexibleMonth(c *gin.Context)
	IncrementGuests(c *gin.Context)
	DecrementGuests(c *gin.Context)
	ClearGuests(c *gin.Context)
	Submit(c *gin.Context)
}

type PreferencesHTTP interface {
	Get(c *gin.Context)
	SetLanguage(c *gin.Context)
	SetCurrency(c *gin.Context)
	OpenOverlay(c *gin.Context)
	CloseOverlay(c *gin.Context)
	ChooseHostKind(c *gin.Context)
	SubmitHosting(c *gin.Context)
}

type Handlers struct {
	Pages       PageHTTP
	SearchBar   SearchBarHTTP
	Preferences PreferencesHTTP
	Visitors    gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, obsMW, health, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the engine without touching the global gin mode.
func NewRouter(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.HTMLRender = newPageRender()

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	site := router.Group("")
	if h.Visitors != nil {
		site.Use(h.Visitors)
	}
	if h.Pages != nil {
		site.GET("/", h.Pages.Home)
		site.GET("/search", h.Pages.Search)
		site.GET("/rooms/:id", h.Pages.Room)
	}

	api := site.Group("/api/v1")
	if h.Pages != nil {
		api.GET("/search", h.Pages.Results)
	}
	if h.SearchBar != nil {
		sb := api.Group("/searchbar")
		sb.GET("", h.SearchBar.State)
		sb.POST("/open/:field", h.SearchBar.Open)
		sb.POST("/dismiss", h.SearchBar.Dismiss)
		sb.POST("/pointer", h.SearchBar.Pointer)
		sb.POST("/destination", h.SearchBar.TypeDestination)
		sb.POST("/destination/select", h.SearchBar.SelectDestination)
		sb.POST("/destination/clear", h.SearchBar.ClearDestination)
		sb.POST("/dates/pick", h.SearchBar.PickDay)
		sb.POST("/dates/clear/:field", h.SearchBar.ClearDate)
		sb.POST("/dates/mode/:mode", h.SearchBar.SetMode)
		sb.POST("/dates/months/prev", h.SearchBar.PrevMonth)
		sb.POST("/dates/months/next", h.SearchBar.NextMonth)
		sb.POST("/dates/month-duration", h.SearchBar.SetMonthDuration)
		sb.POST("/dates/flexible/duration/:duration", h.SearchBar.SetStayDuration)
		sb.POST("/dates/flexible/month", h.SearchBar.ToggleFlexibleMonth)
		sb.POST("/guests/:field/increment", h.SearchBar.IncrementGuests)
		sb.POST("/guests/:field/decrement", h.SearchBar.DecrementGuests)
		sb.POST("/guests/clear", h.SearchBar.ClearGuests)
		sb.POST("/submit", h.SearchBar.Submit)
	}
	if h.Preferences != nil {
		api.GET("/preferences", h.Preferences.Get)
		api.POST("/preferences/language", h.Preferences.SetLanguage)
		api.POST("/preferences/currency", h.Preferences.SetCurrency)
		api.POST("/overlays/:overlay/open", h.Preferences.OpenOverlay)
		api.POST("/overlays/close", h.Preferences.CloseOverlay)
		api.POST("/hosting/kind/:kind", h.Preferences.ChooseHostKind)
		api.POST("/hosting/submit", h.Preferences.SubmitHosting)
	}
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", obs.RequestIDHeader},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Location",
			obs.RequestIDHeader,
		},
		MaxAge: 12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug", "dev", "local":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
