package obs

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appoutbox "stayfront/internal/app/outbox"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/shared/events"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDPropagation(t *testing.T) {
	var buf bytes.Buffer
	mw := Middleware{Logger: newLogger(&buf, "prod")}
	r := gin.New()
	r.Use(mw.RequestID(), mw.LoggerMiddleware())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		TagVisitor(c, "v-1")
		c.Status(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "abc" || rec.Header().Get(RequestIDHeader) != "abc" {
		t.Fatalf("seen=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}
	out := buf.String()
	if !strings.Contains(out, `"request_id":"abc"`) || !strings.Contains(out, `"visitor_id":"v-1"`) || !strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("log=%s", out)
	}
}

type captureBox struct{ records []appoutbox.EventRecord }

func (b *captureBox) Add(_ context.Context, rec appoutbox.EventRecord) error {
	b.records = append(b.records, rec)
	return nil
}

func (b *captureBox) Flush(context.Context) error { return nil }

func TestRequestIDReachesEventHeaders(t *testing.T) {
	box := &captureBox{}
	r := gin.New()
	r.Use(Middleware{}.RequestID())
	r.POST("/x", func(c *gin.Context) {
		ev := hosting.IntentSubmitted{VisitorID: "v-1", Kind: hosting.KindHome, At: time.Now()}
		if err := appoutbox.RecordDomainEvents(c.Request.Context(), box, nil, []events.DomainEvent{ev}); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent || len(box.records) != 1 {
		t.Fatalf("code=%d records=%d", rec.Code, len(box.records))
	}
	if got := box.records[0].Headers["request_id"]; got != "req-42" {
		t.Fatalf("request_id=%q", got)
	}
}

func TestGeneratedRequestID(t *testing.T) {
	r := gin.New()
	r.Use(Middleware{}.RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("id=%q", rec.Header().Get(RequestIDHeader))
	}
}

func TestReadyz(t *testing.T) {
	h := HealthHandlers{Checks: map[string]Check{
		"mongo": func(context.Context) error { return errors.New("down") },
		"cache": func(context.Context) error { return nil },
	}}
	r := gin.New()
	r.GET("/readyz", h.Readyz)
	r.GET("/livez", h.Livez)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("livez=%d", rec.Code)
	}
}
