package http

import (
	"time"

	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it has been handled. The request
// id set by echo's RequestID middleware is put on the request context so
// that every log entry of the request carries it.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				c.SetRequest(c.Request().WithContext(logger.WithRequestID(c.Request().Context(), id)))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				log.ErrorContext(req.Context(), "Request failed", append(fields, logger.ErrorField(err))...)
				return nil
			}
			log.InfoContext(req.Context(), "Request handled", fields...)
			return nil
		}
	}
}
