package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
)

// LoginRateLimiter bounds login attempts per client IP with a Redis
// fixed window. A cache failure lets the request through; the limiter
// is protection, not a dependency.
func LoginRateLimiter(cache caching.CacheService, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited, err := cache.IsRateLimited(c.Request().Context(), "login:"+c.RealIP(), limit, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				return next(c)
			}
			if limited {
				return common.RespondError(c, http.StatusTooManyRequests, "Too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
