// Package router đăng ký các route thuộc domain Revenue: summary, breakdown,
// transactions, top-payers, trend.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"creator_insight/internal/api/middleware"
	revenuehdl "creator_insight/internal/api/revenue/handler"
	apirouter "creator_insight/internal/api/router"
)

// Register đăng ký tất cả route revenue lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	revenueHandler, err := revenuehdl.NewRevenueHandler()
	if err != nil {
		return fmt.Errorf("create revenue handler: %w", err)
	}
	queryLogMiddleware := middleware.QueryLogMiddleware("revenue")
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/summary", []fiber.Handler{queryLogMiddleware}, revenueHandler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/breakdown", []fiber.Handler{queryLogMiddleware}, revenueHandler.HandleBreakdown)
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/transactions", []fiber.Handler{queryLogMiddleware}, revenueHandler.HandleTransactions)
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/top-payers", []fiber.Handler{queryLogMiddleware}, revenueHandler.HandleTopPayers)
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/trend", []fiber.Handler{queryLogMiddleware}, revenueHandler.HandleTrend)
	return nil
}
