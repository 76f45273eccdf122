package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sentinela/gateway/internal/session"
)

const (
	PinHeader     = "X-Sentinela-Pin"
	PinCookie     = "sentinela_pin"
	TokenCookie   = "sentinela_token"
	SessionCookie = "sentinela_sid"
)

type SessionDefaults struct {
	PIN   string
	Token string
}

// Session resolves the request's session scope and stores it in the
// request context. The PIN comes from the X-Sentinela-Pin header, the pin
// query parameter, the PIN cookie or the configured default, in that order;
// the token from the Authorization header, the token cookie or the
// configured default. A session idle past the tracker's timeout is
// rejected and its cookies cleared.
func Session(defaults SessionDefaults, tracker *session.Tracker, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			setCookie(c, SessionCookie, sid)
		}
		if tracker != nil && tracker.Touch(sid, now()) {
			ClearSessionCookies(c)
			abort(c, http.StatusUnauthorized, "SESSION_EXPIRED", session.ErrExpired.Error())
			return
		}

		s := session.New(sid, resolvePIN(c, defaults.PIN), resolveToken(c, defaults.Token))
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), s))
		c.Next()
	}
}

func resolvePIN(c *gin.Context, fallback string) string {
	if v := strings.TrimSpace(c.GetHeader(PinHeader)); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Query("pin")); v != "" {
		return v
	}
	if v, err := c.Cookie(PinCookie); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func resolveToken(c *gin.Context, fallback string) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if tok, ok := strings.CutPrefix(auth, "Bearer "); ok && strings.TrimSpace(tok) != "" {
			return tok
		}
	}
	if v, err := c.Cookie(TokenCookie); err == nil && v != "" {
		return v
	}
	return fallback
}

func setCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, 0, "/", "", false, true)
}

// SetSessionPIN persists the PIN for subsequent requests.
func SetSessionPIN(c *gin.Context, pin string) {
	setCookie(c, PinCookie, pin)
}

func SetSessionToken(c *gin.Context, token string) {
	setCookie(c, TokenCookie, token)
}

func ClearSessionCookies(c *gin.Context) {
	for _, name := range []string{PinCookie, TokenCookie, SessionCookie} {
		c.SetCookie(name, "", -1, "/", "", false, true)
	}
}
