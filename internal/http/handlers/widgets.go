package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Widget endpoints answer 200 with a resource envelope
// {"state":"ready|failed", "data":..., "empty":..., "error":...}; a failed
// upstream fetch is a failed resource, not an HTTP error.

// @Summary Calls per day
// @Tags widgets
// @Produce json
// @Param pin query string false "Subject PIN"
// @Success 200 {object} map[string]any
// @Router /api/widgets/daily [get]
func (h *Handler) WidgetDaily(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Daily(c.Request.Context(), currentSession(c)))
}

// @Summary Calls per hour of day
// @Tags widgets
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/widgets/hourly [get]
func (h *Handler) WidgetHourly(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Hourly(c.Request.Context(), currentSession(c)))
}

// @Summary Top 10 dialed numbers
// @Tags widgets
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/widgets/top-numbers [get]
func (h *Handler) WidgetTopNumbers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.TopNumbers(c.Request.Context(), currentSession(c)))
}

func (h *Handler) WidgetCallMap(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.CallMap(c.Request.Context(), currentSession(c)))
}

func (h *Handler) WidgetRecentCalls(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.RecentCalls(c.Request.Context(), currentSession(c)))
}

func (h *Handler) WidgetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Alerts(c.Request.Context(), currentSession(c)))
}

func (h *Handler) WidgetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Profile(c.Request.Context(), currentSession(c)))
}

// @Summary Relationship graph
// @Tags widgets
// @Produce json
// @Param hover query string false "Hovered node id"
// @Success 200 {object} map[string]any
// @Router /api/widgets/network [get]
func (h *Handler) WidgetNetwork(c *gin.Context) {
	hovered := strings.TrimSpace(c.Query("hover"))
	c.JSON(http.StatusOK, h.Dashboard.Network(c.Request.Context(), currentSession(c), hovered))
}

// @Summary Contact drill-down
// @Tags widgets
// @Produce json
// @Param node query string true "Node id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/widgets/contact [get]
func (h *Handler) WidgetContact(c *gin.Context) {
	node := strings.TrimSpace(c.Query("node"))
	if node == "" {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "node is required", nil)
		return
	}
	c.JSON(http.StatusOK, h.Dashboard.Contact(c.Request.Context(), currentSession(c), node))
}

func (h *Handler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Summary(c.Request.Context(), currentSession(c)))
}
