// Package router đăng ký các route thuộc domain Audience: followers,
// retention, realtime.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	audiencehdl "creator_insight/internal/api/audience/handler"
	"creator_insight/internal/api/middleware"
	apirouter "creator_insight/internal/api/router"
)

// Register đăng ký tất cả route audience lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	audienceHandler, err := audiencehdl.NewAudienceHandler()
	if err != nil {
		return fmt.Errorf("create audience handler: %w", err)
	}
	queryLogMiddleware := middleware.QueryLogMiddleware("audience")
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/followers", []fiber.Handler{queryLogMiddleware}, audienceHandler.HandleFollowers)
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/retention", []fiber.Handler{queryLogMiddleware}, audienceHandler.HandleRetention)
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/realtime", []fiber.Handler{queryLogMiddleware}, audienceHandler.HandleRealtime)
	return nil
}
