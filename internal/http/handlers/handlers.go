package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"
)

type Handler struct {
	Backend     *backend.Client
	Dashboard   *service.Dashboard
	Notes       *service.Notes
	Sessions    *session.Tracker
	Validator   *validator.Validate
	Logger      zerolog.Logger
	Placeholder string
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Backend.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Backend unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// writeUpstreamError maps a backend client error to the error envelope.
// Client errors reported by the backend keep their status.
func writeUpstreamError(c *gin.Context, err error, message string) {
	var se *backend.StatusError
	switch {
	case errors.Is(err, session.ErrNoPIN):
		writeError(c, http.StatusBadRequest, "NO_PIN", session.ErrNoPIN.Error(), nil)
	case errors.As(err, &se):
		status := http.StatusBadGateway
		if se.StatusCode >= 400 && se.StatusCode < 500 {
			status = se.StatusCode
		}
		writeError(c, status, "UPSTREAM_STATUS", backend.Detail(err, message), gin.H{"upstream_status": se.StatusCode})
	case errors.Is(err, backend.ErrDecode):
		writeError(c, http.StatusBadGateway, "DECODE_ERROR", message, err.Error())
	default:
		writeError(c, http.StatusBadGateway, "UPSTREAM_ERROR", message, err.Error())
	}
}

func currentSession(c *gin.Context) session.Session {
	return session.FromContext(c.Request.Context())
}
