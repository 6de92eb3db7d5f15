// Package revenuehdl - Handler cho dashboard Revenue (summary, breakdown,
// transactions, top payers, trend).
package revenuehdl

import (
	basehdl "creator_insight/internal/api/base/handler"
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	revenuesvc "creator_insight/internal/api/revenue/service"
	"creator_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// RevenueHandler xử lý các route thuộc domain Revenue
type RevenueHandler struct {
	RevenueService *revenuesvc.RevenueService
}

// NewRevenueHandler tạo một instance mới của RevenueHandler
func NewRevenueHandler() (*RevenueHandler, error) {
	service, err := revenuesvc.NewRevenueService()
	if err != nil {
		return nil, err
	}
	return &RevenueHandler{RevenueService: service}, nil
}

// HandleSummary xử lý GET /revenue/summary — chỉ số tổng hợp của kỳ.
// Khi compare ≠ none, summary mang thêm deltas.vsPrev hoặc deltas.yoy.
func (h *RevenueHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		summary, seed, err := h.RevenueService.Summary(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("revenue", "summary", seed, c, map[string]interface{}{"compare": state.Compare})
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": summary,
		}, nil)
		return nil
	})
}

// HandleBreakdown xử lý GET /revenue/breakdown — doanh thu theo loại sản phẩm.
func (h *RevenueHandler) HandleBreakdown(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		dataset, seed, err := h.RevenueService.Dataset(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("revenue", "breakdown", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.Breakdown,
		}, nil)
		return nil
	})
}

// HandleTransactions xử lý GET /revenue/transactions — danh sách giao dịch có
// phân trang. Query: page (mặc định 1), limit (mặc định 50, max 200).
func (h *RevenueHandler) HandleTransactions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		dataset, seed, err := h.RevenueService.Dataset(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := dashboarddto.ParsePagination(c)
		meta := dashboarddto.BuildMeta(state)
		meta["pagination"] = dashboarddto.PaginationMeta(page, limit, len(dataset.Transactions))
		logger.LogQuery("revenue", "transactions", seed, c, map[string]interface{}{"page": page, "limit": limit})
		basehdl.HandleResponse(c, fiber.Map{
			"meta": meta,
			"data": dashboarddto.Paginate(dataset.Transactions, page, limit),
		}, nil)
		return nil
	})
}

// HandleTopPayers xử lý GET /revenue/top-payers — tối đa 10 người trả nhiều nhất.
func (h *RevenueHandler) HandleTopPayers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		dataset, seed, err := h.RevenueService.Dataset(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("revenue", "top-payers", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.TopPayers,
		}, nil)
		return nil
	})
}

// HandleTrend xử lý GET /revenue/trend — doanh thu theo bucket.
// Query: product (all|single|subscription|tip, mặc định all, giá trị lạ 400).
func (h *RevenueHandler) HandleTrend(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		product, err := dashboarddto.ParseTrendProduct(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		trend, seed, err := h.RevenueService.Trend(state, product)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("revenue", "trend", seed, c, map[string]interface{}{"product": product})
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": trend,
		}, nil)
		return nil
	})
}
