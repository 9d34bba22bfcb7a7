package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// HealthHandler reports process and dependency health
type HealthHandler struct {
	pool  *pgxpool.Pool
	redis *goredis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(pool *pgxpool.Pool, redis *goredis.Client) *HealthHandler {
	return &HealthHandler{pool: pool, redis: redis}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// Ready handles GET /ready. It pings whatever backing stores are
// configured; a memory-only deployment is always ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{"database": "disabled", "redis": "disabled"}

	if h.pool != nil {
		if err := h.pool.Ping(ctx); err != nil {
			checks["database"] = "down"
			response.Error(c, http.StatusServiceUnavailable, "not ready")
			return
		}
		checks["database"] = "up"
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			response.Error(c, http.StatusServiceUnavailable, "not ready")
			return
		}
		checks["redis"] = "up"
	}
	response.Success(c, checks)
}
