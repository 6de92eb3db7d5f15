// Package acquisitionsvc sinh dataset acquisition (funnel, sources, platform
// ARPU, traffic mix) cho dashboard.
package acquisitionsvc

import (
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/mockgen"
)

const domain = "acquisition"

// AcquisitionService sinh dataset acquisition. Stateless.
type AcquisitionService struct{}

// NewAcquisitionService tạo mới AcquisitionService
func NewAcquisitionService() (*AcquisitionService, error) {
	return &AcquisitionService{}, nil
}

// Dataset sinh dataset acquisition cho query state hiện tại.
func (s *AcquisitionService) Dataset(state *dashboarddto.QueryState) (*mockgen.AcquisitionDataset, string, error) {
	params := state.GeneratorParams()
	seed := mockgen.SeedFor(domain, params.Range, params.GroupBy, params.Filters, params.Compare)
	dataset, err := mockgen.GenerateAcquisitionDataset(params)
	return dataset, seed, err
}
