package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/geocode"
)

// @Summary Area-code lookup
// @Tags lookup
// @Produce json
// @Param number path string true "Phone number"
// @Success 200 {object} geocode.LadaInfo
// @Failure 404 {object} map[string]any
// @Router /api/lada/{number} [get]
func (h *Handler) Lada(c *gin.Context) {
	info, ok := geocode.GetLadaInfo(c.Param("number"))
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Número sin LADA conocida", nil)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Photo serves the subject photo, redirecting to the placeholder image
// when the backend has none.
func (h *Handler) Photo(c *gin.Context) {
	pin := c.Param("pin")
	body, contentType, err := h.Backend.FetchPhoto(c.Request.Context(), pin)
	if err != nil {
		if !errors.Is(err, backend.ErrNoPhoto) {
			h.Logger.Warn().Err(err).Str("pin", pin).Msg("photo fetch failed")
		}
		c.Redirect(http.StatusFound, h.Placeholder)
		return
	}
	c.Data(http.StatusOK, contentType, body)
}
