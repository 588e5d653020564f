package session

import (
	"net/http"
	"time"

	"univar/domain/core"
)

// CookieName is the cookie that carries the session identifier
const CookieName = "univar_session"

// IDFromRequest returns the session identifier carried by r, if any
func IDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	if _, err := core.ParseID(cookie.Value); err != nil {
		return "", false
	}
	return cookie.Value, true
}

// NewCookie builds the session cookie for id
func NewCookie(id string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
