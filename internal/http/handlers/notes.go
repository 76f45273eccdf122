package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type NoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// @Summary Set analyst note
// @Description Notes live in the gateway session only and are not sent to the backend
// @Tags calls
// @Accept json
// @Produce json
// @Param id path string true "Call id"
// @Param body body NoteRequest true "note"
// @Success 200 {object} map[string]any
// @Router /api/calls/{id}/note [put]
func (h *Handler) CallNotePut(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	h.Notes.Set(currentSession(c).ID, id, req.Note)
	c.JSON(http.StatusOK, gin.H{"id": id, "nota_analista": req.Note})
}
