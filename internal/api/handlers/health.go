package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler reports service health. The engine has no external
// dependencies, so health is liveness only.
type HealthHandler struct {
	logger *logrus.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(log *logrus.Logger) *HealthHandler {
	return &HealthHandler{logger: log}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "lineup-engine",
		"timestamp": time.Now().UTC(),
	})
}
