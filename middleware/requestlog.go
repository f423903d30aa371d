package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"faithshop/pkg/logx"
)

// RequestLog logs one line per request with method, path, status and
// latency.
func RequestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	logx.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("request")

	return err
}
