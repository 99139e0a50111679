package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
	"github.com/SscSPs/diary_app/internal/dto"
	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type healthHandler struct {
	healthService  portssvc.HealthSvc
	storeBackend   string
	gratitudeLimit int
}

// RegisterHealthRoutes registers GET /health.
func RegisterHealthRoutes(r gin.IRoutes, healthService portssvc.HealthSvc, storeBackend string, gratitudeLimit int) {
	h := &healthHandler{
		healthService:  healthService,
		storeBackend:   storeBackend,
		gratitudeLimit: gratitudeLimit,
	}
	r.GET("/health", h.getHealth)
}

// getHealth godoc
// @Summary Show the status of server and store.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	resp := dto.HealthResponse{
		ServerStatus:   "up",
		StoreStatus:    "up",
		StoreBackend:   h.storeBackend,
		GratitudeLimit: h.gratitudeLimit,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.healthService.CheckStore(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Health check failed", slog.String("error", err.Error()))
		resp.StoreStatus = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
