package middleware

import (
	"net/http"
	"time"

	"univar/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the session identifier
const SessionKey = "session_id"

// EnsureSession gives every browser a session cookie and exposes its
// identifier under SessionKey
func EnsureSession(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.IDFromRequest(c.Request)
		if !ok {
			id = session.NewID()
		}
		// Re-issued on every hit so the browser cookie outlives idle time
		// the same way the stored dataset does.
		http.SetCookie(c.Writer, session.NewCookie(id, ttl))
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the identifier set by EnsureSession
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
