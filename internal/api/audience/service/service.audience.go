// Package audiencesvc sinh dataset audience (follower trend, retention,
// realtime) cho dashboard.
package audiencesvc

import (
	"math"
	"math/rand"
	"time"

	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/mockgen"
)

const domain = "audience"

// AudienceService sinh dataset audience. Stateless.
type AudienceService struct{}

// NewAudienceService tạo mới AudienceService
func NewAudienceService() (*AudienceService, error) {
	return &AudienceService{}, nil
}

// Dataset sinh dataset audience cho query state hiện tại.
func (s *AudienceService) Dataset(state *dashboarddto.QueryState) (*mockgen.AudienceDataset, string, error) {
	params := state.GeneratorParams()
	seed := mockgen.SeedFor(domain, params.Range, params.GroupBy, params.Filters, params.Compare)
	dataset, err := mockgen.GenerateAudienceDataset(params)
	return dataset, seed, err
}

// Realtime trả về số active user tại thời điểm poll. Base vẫn deterministic
// theo seed; chỉ lớp boundary này cộng thêm noise ±6% không seed để hai lần
// poll liên tiếp trông như số liệu sống. Kết quả không bao giờ âm.
func (s *AudienceService) Realtime(state *dashboarddto.QueryState) (*mockgen.RealtimeActive, string, error) {
	dataset, seed, err := s.Dataset(state)
	if err != nil {
		return nil, seed, err
	}

	base := dataset.Realtime.ActiveUsers
	noise := int64(math.Round((rand.Float64() - 0.5) * float64(base) * 0.12))
	active := base + noise
	if active < 0 {
		active = 0
	}
	return &mockgen.RealtimeActive{
		ActiveUsers: active,
		PolledAt:    time.Now().UTC().Format(time.RFC3339),
	}, seed, nil
}
