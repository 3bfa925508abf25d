package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns service health including database connectivity
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is unreachable")
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
