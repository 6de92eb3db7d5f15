// Package router đăng ký các route thuộc domain Acquisition: funnel, sources,
// platform-arpu, mix.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	acquisitionhdl "creator_insight/internal/api/acquisition/handler"
	"creator_insight/internal/api/middleware"
	apirouter "creator_insight/internal/api/router"
)

// Register đăng ký tất cả route acquisition lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	acquisitionHandler, err := acquisitionhdl.NewAcquisitionHandler()
	if err != nil {
		return fmt.Errorf("create acquisition handler: %w", err)
	}
	queryLogMiddleware := middleware.QueryLogMiddleware("acquisition")
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/funnel", []fiber.Handler{queryLogMiddleware}, acquisitionHandler.HandleFunnel)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/sources", []fiber.Handler{queryLogMiddleware}, acquisitionHandler.HandleSources)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/platform-arpu", []fiber.Handler{queryLogMiddleware}, acquisitionHandler.HandlePlatformArpu)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/mix", []fiber.Handler{queryLogMiddleware}, acquisitionHandler.HandleMix)
	return nil
}
