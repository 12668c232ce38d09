package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/logger"
)

// RequestLoggerMiddleware logs every request with a level matched to
// the response status.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, status := c.Request(), c.Response().Status

			result := "ok"
			logFn := logger.Debug
			switch {
			case status >= 500:
				result, logFn = "failed", logger.Error
			case status >= 400:
				result, logFn = "failed", logger.Warn
			}

			logFn("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)
			return nil
		}
	}
}
