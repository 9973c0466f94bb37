package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brijesh-0/job-board-backend/internal/infrastructure/db/redis"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// RateLimit guards the credential endpoints with a per-IP fixed window.
// A nil limiter disables the guard (tests, local runs without Redis).
func RateLimit(limiter *redis.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:auth:" + c.RealIP()
			if !limiter.Allow(c.Request().Context(), key, loginRateLimit, loginRateWindow) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
