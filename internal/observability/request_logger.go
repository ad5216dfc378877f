package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// RequestLogger logs every request with method, path, status, and duration,
// and feeds the request counters. Errors returned by handlers are logged
// here with the status they will be rendered with, then passed upstream.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			status = util.ToDomainError(err).HTTPStatus
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}
		if err != nil {
			logger.Warn("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("request completed", fields...)
		}

		metrics.RecordRequest(c.Path(), c.Method(), status, duration)
		return err
	}
}
