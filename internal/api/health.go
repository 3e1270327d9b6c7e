package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twliao/finwatch/internal/domain/dto"
)

// HealthHandler provides the liveness endpoint for the service.
//
// There is no readiness distinction: the service holds no connections
// or state, so being up means being ready.
type HealthHandler struct {
	now func() time.Time // injected for deterministic timestamps in tests
}

// NewHealthHandler constructs a HealthHandler using the given clock.
// Pass time.Now outside of tests.
func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// Register mounts the health endpoint into the provided Gin router.
//
// Routes:
//   - GET /health: Always returns 200 with a status and timestamp.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Health godoc
	// @Summary      Liveness probe
	// @Description  Always returns healthy while the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  dto.HealthResponse
	// @Router       /health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:    "healthy",
			Timestamp: h.now().Format(time.RFC3339),
		})
	})
}
