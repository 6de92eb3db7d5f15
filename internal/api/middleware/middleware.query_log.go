package middleware

import (
	"time"

	"creator_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// QueryLogMiddleware log mỗi request của một domain dashboard và đo thời gian
// xử lý. Domain truyền vào lúc đăng ký route (revenue, acquisition, content,
// audience) để filter log theo domain hoạt động được.
//
// ⚠️ Đăng ký qua RegisterRouteWithMiddleware, KHÔNG truyền trực tiếp vào
// router.Get (bug Fiber v3, xem internal/api/router/routes.go).
func QueryLogMiddleware(domain string) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		entry := logger.WithRequestInfo(c, domain).WithFields(map[string]interface{}{
			"status":      c.Response().StatusCode(),
			"duration_ms": elapsed.Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("Dashboard request failed")
			return err
		}
		entry.Debug("Dashboard request served")
		logger.LogQueryDuration(domain, c.Path(), elapsed)
		return nil
	}
}
