// Package contenthdl - Handler cho dashboard Content (performance, top,
// watch-time-trend).
package contenthdl

import (
	basehdl "creator_insight/internal/api/base/handler"
	contentsvc "creator_insight/internal/api/content/service"
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/logger"
	"creator_insight/internal/mockgen"

	"github.com/gofiber/fiber/v3"
)

// ContentHandler xử lý các route thuộc domain Content
type ContentHandler struct {
	ContentService *contentsvc.ContentService
}

// NewContentHandler tạo một instance mới của ContentHandler
func NewContentHandler() (*ContentHandler, error) {
	service, err := contentsvc.NewContentService()
	if err != nil {
		return nil, err
	}
	return &ContentHandler{ContentService: service}, nil
}

// dataset parse query state rồi sinh dataset, trả về cả state để dựng meta.
func (h *ContentHandler) dataset(c fiber.Ctx) (*dashboarddto.QueryState, *mockgen.ContentDataset, string, error) {
	state, err := dashboarddto.ParseQueryState(c)
	if err != nil {
		return nil, nil, "", err
	}
	dataset, seed, err := h.ContentService.Dataset(state)
	if err != nil {
		return nil, nil, seed, err
	}
	return state, dataset, seed, nil
}

// HandlePerformance xử lý GET /content/performance — catalog 30 item sắp theo
// doanh thu giảm dần, có phân trang (page mặc định 1, limit mặc định 50).
func (h *ContentHandler) HandlePerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := dashboarddto.ParsePagination(c)
		meta := dashboarddto.BuildMeta(state)
		meta["pagination"] = dashboarddto.PaginationMeta(page, limit, len(dataset.Performance))
		logger.LogQuery("content", "performance", seed, c, map[string]interface{}{"page": page, "limit": limit})
		basehdl.HandleResponse(c, fiber.Map{
			"meta": meta,
			"data": dashboarddto.Paginate(dataset.Performance, page, limit),
		}, nil)
		return nil
	})
}

// HandleTop xử lý GET /content/top — 5 item doanh thu cao nhất.
func (h *ContentHandler) HandleTop(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("content", "top", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.TopPerformers,
		}, nil)
		return nil
	})
}

// HandleWatchTimeTrend xử lý GET /content/watch-time-trend — thời lượng xem
// trung bình theo bucket.
func (h *ContentHandler) HandleWatchTimeTrend(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("content", "watch-time-trend", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.WatchTimeTrend,
		}, nil)
		return nil
	})
}
