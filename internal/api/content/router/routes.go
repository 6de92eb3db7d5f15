// Package router đăng ký các route thuộc domain Content: performance, top,
// watch-time-trend.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "creator_insight/internal/api/content/handler"
	"creator_insight/internal/api/middleware"
	apirouter "creator_insight/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	contentHandler, err := contenthdl.NewContentHandler()
	if err != nil {
		return fmt.Errorf("create content handler: %w", err)
	}
	queryLogMiddleware := middleware.QueryLogMiddleware("content")
	apirouter.RegisterRouteWithMiddleware(v1, "/content", "GET", "/performance", []fiber.Handler{queryLogMiddleware}, contentHandler.HandlePerformance)
	apirouter.RegisterRouteWithMiddleware(v1, "/content", "GET", "/top", []fiber.Handler{queryLogMiddleware}, contentHandler.HandleTop)
	apirouter.RegisterRouteWithMiddleware(v1, "/content", "GET", "/watch-time-trend", []fiber.Handler{queryLogMiddleware}, contentHandler.HandleWatchTimeTrend)
	return nil
}
