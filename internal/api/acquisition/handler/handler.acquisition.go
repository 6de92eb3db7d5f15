// Package acquisitionhdl - Handler cho dashboard Acquisition (funnel, sources,
// platform-arpu, mix).
package acquisitionhdl

import (
	acquisitionsvc "creator_insight/internal/api/acquisition/service"
	basehdl "creator_insight/internal/api/base/handler"
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/logger"
	"creator_insight/internal/mockgen"

	"github.com/gofiber/fiber/v3"
)

// AcquisitionHandler xử lý các route thuộc domain Acquisition
type AcquisitionHandler struct {
	AcquisitionService *acquisitionsvc.AcquisitionService
}

// NewAcquisitionHandler tạo một instance mới của AcquisitionHandler
func NewAcquisitionHandler() (*AcquisitionHandler, error) {
	service, err := acquisitionsvc.NewAcquisitionService()
	if err != nil {
		return nil, err
	}
	return &AcquisitionHandler{AcquisitionService: service}, nil
}

// dataset parse query state rồi sinh dataset, trả về cả state để dựng meta.
func (h *AcquisitionHandler) dataset(c fiber.Ctx) (*dashboarddto.QueryState, *mockgen.AcquisitionDataset, string, error) {
	state, err := dashboarddto.ParseQueryState(c)
	if err != nil {
		return nil, nil, "", err
	}
	dataset, seed, err := h.AcquisitionService.Dataset(state)
	if err != nil {
		return nil, nil, seed, err
	}
	return state, dataset, seed, nil
}

// HandleFunnel xử lý GET /acquisition/funnel — 3 bậc funnel kèm conversion rate.
// Meta mang thêm metrics: avg_time_to_first_purchase_hours, external_share.
func (h *AcquisitionHandler) HandleFunnel(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		meta := dashboarddto.BuildMeta(state)
		meta["metrics"] = fiber.Map{
			"avg_time_to_first_purchase_hours": dataset.AvgTimeToFirstPurchaseHours,
			"external_share":                   dataset.ExternalShare,
		}
		logger.LogQuery("acquisition", "funnel", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": meta,
			"data": dataset.Funnel,
		}, nil)
		return nil
	})
}

// HandleSources xử lý GET /acquisition/sources — hiệu suất theo nguồn traffic.
func (h *AcquisitionHandler) HandleSources(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("acquisition", "sources", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.Sources,
		}, nil)
		return nil
	})
}

// HandlePlatformArpu xử lý GET /acquisition/platform-arpu — ARPU theo platform.
func (h *AcquisitionHandler) HandlePlatformArpu(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("acquisition", "platform-arpu", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.PlatformArpu,
		}, nil)
		return nil
	})
}

// HandleMix xử lý GET /acquisition/mix — tỉ trọng external/internal/direct theo bucket.
func (h *AcquisitionHandler) HandleMix(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, dataset, seed, err := h.dataset(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("acquisition", "mix", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.Mix,
		}, nil)
		return nil
	})
}
