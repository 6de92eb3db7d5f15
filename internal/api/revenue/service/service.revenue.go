// Package revenuesvc sinh và lắp ráp dataset revenue cho dashboard.
// Service không giữ state nào — mọi dữ liệu sinh lại từ seed theo request.
package revenuesvc

import (
	dashboarddto "creator_insight/internal/api/dashboard/dto"
	"creator_insight/internal/mockgen"
)

const domain = "revenue"

// RevenueService sinh dataset revenue. Stateless, dùng chung được giữa các request.
type RevenueService struct{}

// NewRevenueService tạo mới RevenueService
func NewRevenueService() (*RevenueService, error) {
	return &RevenueService{}, nil
}

// Dataset sinh dataset revenue cho query state hiện tại. Seed trả về để
// boundary audit log đúng descriptor đã dùng.
func (s *RevenueService) Dataset(state *dashboarddto.QueryState) (*mockgen.RevenueDataset, string, error) {
	params := state.GeneratorParams()
	seed := mockgen.SeedFor(domain, params.Range, params.GroupBy, params.Filters, params.Compare)
	dataset, err := mockgen.GenerateRevenueDataset(params)
	return dataset, seed, err
}

// Summary trả về summary của kỳ hiện tại. Khi compare ≠ none, sinh thêm
// dataset của kỳ so sánh (range dịch, compare="none") và gắn delta gross
// vào vsPrev hoặc yoy tùy mode.
func (s *RevenueService) Summary(state *dashboarddto.QueryState) (*mockgen.RevenueSummary, string, error) {
	dataset, seed, err := s.Dataset(state)
	if err != nil {
		return nil, seed, err
	}

	summary := dataset.Summary
	if state.Compare != mockgen.CompareNone {
		compareDataset, err := mockgen.GenerateRevenueDataset(state.CompareParams())
		if err != nil {
			return nil, seed, err
		}
		delta := mockgen.Delta(float64(summary.Gross), float64(compareDataset.Summary.Gross))
		deltas := &mockgen.SummaryDeltas{}
		if state.Compare == mockgen.ComparePrevious {
			deltas.VsPrev = &delta
		} else {
			deltas.Yoy = &delta
		}
		summary.Deltas = deltas
	}
	return &summary, seed, nil
}

// Trend gom các giao dịch đã sinh vào bucket theo groupBy, lọc theo product
// nếu có. Product rỗng coi như "all".
func (s *RevenueService) Trend(state *dashboarddto.QueryState, product mockgen.ProductType) ([]mockgen.RevenueTrendPoint, string, error) {
	dataset, seed, err := s.Dataset(state)
	if err != nil {
		return nil, seed, err
	}
	if product == "" {
		product = mockgen.ProductAll
	}
	trend := mockgen.BuildRevenueTrend(dataset.Transactions, state.Range, state.GroupBy, product)
	return trend, seed, nil
}
