// Package contentsvc sinh dataset content (catalog 30 item, top performers,
// watch-time trend) cho dashboard.
package contentsvc

import (
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/mockgen"
)

const domain = "content"

// ContentService sinh dataset content. Stateless.
type ContentService struct{}

// NewContentService tạo mới ContentService
func NewContentService() (*ContentService, error) {
	return &ContentService{}, nil
}

// Dataset sinh dataset content cho query state hiện tại.
func (s *ContentService) Dataset(state *dashboarddto.QueryState) (*mockgen.ContentDataset, string, error) {
	params := state.GeneratorParams()
	seed := mockgen.SeedFor(domain, params.Range, params.GroupBy, params.Filters, params.Compare)
	dataset, err := mockgen.GenerateContentDataset(params)
	return dataset, seed, err
}
