package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness
type HealthHandler struct {
	timeProvider coreport.TimeProvider
	startedAt    time.Time
}

// NewHealthHandler creates a health handler; uptime is measured from now
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{
		timeProvider: timeProvider,
		startedAt:    timeProvider.Now(),
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(h.timeProvider.Since(h.startedAt).Seconds()),
	})
}
