package handler

import (
	"github.com/gin-gonic/gin"

	"designdesk/internal/service"
)

// StatsHandler handles dashboard endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/stats/dashboard
// @Summary      Dashboard stats
// @Description  Returns lead, project, invoice and IRN aggregates for the dashboard
// @Tags         stats
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.DashboardStats}
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
