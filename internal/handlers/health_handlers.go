package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stockyard/internal/caching"
	"stockyard/internal/common"
)

// DBPinger is satisfied by pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandlers struct {
	db    DBPinger
	cache caching.CacheService
}

func NewHealthHandlers(db DBPinger, cache caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

func (h *HealthHandlers) Register(e *echo.Echo) {
	e.GET("/health", h.Live)
	e.GET("/health/ready", h.Ready)
	e.GET("/health/detailed", h.Detailed)
}

// Live reports process liveness only.
func (h *HealthHandlers) Live(c echo.Context) error {
	return common.RespondData(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready fails when the database is unreachable; Redis is degraded, not
// fatal, since every cached path falls back to SQL.
func (h *HealthHandlers) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return common.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
	}
	return common.RespondData(c, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandlers) Detailed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok", "redis": "ok"}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
	}

	if status != http.StatusOK {
		return c.JSON(status, common.Envelope{Success: false, Data: checks, Error: "degraded"})
	}
	return common.RespondData(c, status, checks)
}
