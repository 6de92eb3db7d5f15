// Package audiencehdl - Handler cho dashboard Audience (followers, retention,
// realtime).
package audiencehdl

import (
	audiencesvc "creator_insight/internal/api/audience/service"
	basehdl "creator_insight/internal/api/base/handler"
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AudienceHandler xử lý các route thuộc domain Audience
type AudienceHandler struct {
	AudienceService *audiencesvc.AudienceService
}

// NewAudienceHandler tạo một instance mới của AudienceHandler
func NewAudienceHandler() (*AudienceHandler, error) {
	service, err := audiencesvc.NewAudienceService()
	if err != nil {
		return nil, err
	}
	return &AudienceHandler{AudienceService: service}, nil
}

// HandleFollowers xử lý GET /audience/followers — trend follower theo bucket.
func (h *AudienceHandler) HandleFollowers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		dataset, seed, err := h.AudienceService.Dataset(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("audience", "followers", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.Followers,
		}, nil)
		return nil
	})
}

// HandleRetention xử lý GET /audience/retention — 3 cohort 7d/30d/90d.
func (h *AudienceHandler) HandleRetention(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		dataset, seed, err := h.AudienceService.Dataset(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("audience", "retention", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": dataset.Retention,
		}, nil)
		return nil
	})
}

// HandleRealtime xử lý GET /audience/realtime — số active user tại thời điểm
// poll, có noise boundary nên hai lần gọi có thể khác nhau.
func (h *AudienceHandler) HandleRealtime(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		state, err := dashboarddto.ParseQueryState(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		realtime, seed, err := h.AudienceService.Realtime(state)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogQuery("audience", "realtime", seed, c, nil)
		basehdl.HandleResponse(c, fiber.Map{
			"meta": dashboarddto.BuildMeta(state),
			"data": realtime,
		}, nil)
		return nil
	})
}
