// Package handler provides the HTTP request handlers.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/postgres"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/redis"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	pg    *postgres.Client
	redis *redis.Client
}

func NewHealthHandler(pg *postgres.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{pg: pg, redis: redisClient}
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health reports that the process is up.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready reports whether the backing stores answer. Redis is optional; when
// it is not configured the check is marked disabled rather than failing.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"postgres": {Status: "unknown"},
		"redis":    {Status: "disabled"},
	}
	ready := true

	start := time.Now()
	if err := h.pg.HealthCheck(ctx); err != nil {
		checks["postgres"].Status = "down"
		checks["postgres"].Error = err.Error()
		ready = false
	} else {
		checks["postgres"].Status = "up"
		checks["postgres"].LatencyMs = time.Since(start).Milliseconds()
	}

	if h.redis != nil {
		start = time.Now()
		if err := h.redis.HealthCheck(ctx); err != nil {
			checks["redis"].Status = "down"
			checks["redis"].Error = err.Error()
			ready = false
		} else {
			checks["redis"].Status = "up"
			checks["redis"].LatencyMs = time.Since(start).Milliseconds()
		}
	}

	status := http.StatusOK
	overall := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}
	c.JSON(status, readinessResponse{Status: overall, Checks: checks})
}

// Live reports that the event loop is responsive.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "alive"})
}
