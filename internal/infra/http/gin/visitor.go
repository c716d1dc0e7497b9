package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayfront/internal/app/visitor"
	"stayfront/internal/infra/obs"
)

const (
	VisitorCookie    = "stayfront_visitor"
	visitorCtxKey    = "stayfront.visitor"
	visitorCookieAge = 365 * 24 * 60 * 60
)

// VisitorMiddleware assigns every browser a stable visitor id. Ids that are
// not UUIDs are replaced.
func VisitorMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorCookieAge, "/", "", secure, true)
		}
		c.Set(visitorCtxKey, id)
		obs.TagVisitor(c, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorCtxKey)
}

// loadVisitor resolves the request's visitor and writes the error response
// when it cannot.
func loadVisitor(c *gin.Context, visitors visitor.Registry) (*visitor.Visitor, bool) {
	if visitors == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor registry unavailable"})
		return nil, false
	}
	v, err := visitors.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		writeError(c, nil, err)
		return nil, false
	}
	return v, true
}
