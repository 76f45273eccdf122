package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sentinela/gateway/internal/http/middleware"
)

type SessionRequest struct {
	Pin   string `json:"pin" validate:"required,max=64"`
	Token string `json:"token,omitempty" validate:"max=4096"`
}

// @Summary Select subject PIN
// @Description Stores the PIN (and optionally the bearer token) for the current session
// @Tags session
// @Accept json
// @Produce json
// @Param body body SessionRequest true "session"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/session [post]
func (h *Handler) SessionCreate(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	req.Pin = strings.TrimSpace(req.Pin)
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	middleware.SetSessionPIN(c, req.Pin)
	if req.Token != "" {
		middleware.SetSessionToken(c, req.Token)
	}
	c.JSON(http.StatusOK, gin.H{"pin": req.Pin, "session_id": currentSession(c).ID})
}

// SessionGet reports the resolved session scope. The token is never echoed.
func (h *Handler) SessionGet(c *gin.Context) {
	s := currentSession(c)
	c.JSON(http.StatusOK, gin.H{"session_id": s.ID, "pin": s.PIN, "authenticated": s.HasToken()})
}

// @Summary Logout
// @Tags session
// @Success 204
// @Router /api/session [delete]
func (h *Handler) SessionDelete(c *gin.Context) {
	s := currentSession(c)
	if h.Sessions != nil {
		h.Sessions.Forget(s.ID)
	}
	if h.Notes != nil {
		h.Notes.Forget(s.ID)
	}
	middleware.ClearSessionCookies(c)
	c.Status(http.StatusNoContent)
}
