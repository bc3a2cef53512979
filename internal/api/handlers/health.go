package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gurohotvedt/cab230serverside/internal/infra/database/postgres"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	dbPool  *postgres.Pool
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dbPool *postgres.Pool, version string) *HealthHandler {
	return &HealthHandler{
		dbPool:  dbPool,
		version: version,
	}
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   h.version,
		"timestamp": time.Now(),
	})
}

// Ready returns readiness check backed by a database ping
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	dbHealth := h.dbPool.Health(c.Request.Context())

	status := http.StatusOK
	ready := "ready"
	if dbHealth.Status != "healthy" {
		status = http.StatusServiceUnavailable
		ready = "not ready"
	}

	c.JSON(status, gin.H{
		"status":    ready,
		"database":  dbHealth,
		"timestamp": time.Now(),
	})
}
