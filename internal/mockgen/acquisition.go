package mockgen

import "math"

// AcquisitionDataset gom funnel, hiệu suất nguồn, ARPU theo nền tảng và
// cơ cấu traffic theo bucket cho một request descriptor.
type AcquisitionDataset struct {
	Funnel                      []FunnelStage
	Sources                     []SourcePerformance
	PlatformArpu                []PlatformArpu
	Mix                         []TrafficMixPoint
	AvgTimeToFirstPurchaseHours float64
	ExternalShare               float64
}

// GenerateAcquisitionDataset sinh dataset acquisition. Thứ tự draw: tổng
// funnel theo bucket, phân bổ source (visits rồi freeViews rồi purchases),
// revenue từng source, phân bổ platform + revenue, mix theo bucket, cuối cùng
// là avg time to first purchase.
func GenerateAcquisitionDataset(params GeneratorParams) (*AcquisitionDataset, error) {
	ctx := NewMockContext("acquisition", params.Range, params.GroupBy, params.Filters, params.Compare)

	totals := buildFunnelTotals(ctx)
	sources := buildSourcePerformance(ctx, totals)
	platformArpu := buildPlatformArpu(ctx, totals)
	mix := buildTrafficMix(ctx, totals)

	avgTimeToFirstPurchaseHours := RandomBetween(9, 26, ctx.Random)

	var externalVisits, totalVisits int64
	for _, source := range sources {
		totalVisits += source.Visits
		if IsExternalSource(source.Source) {
			externalVisits += source.Visits
		}
	}
	externalShare := CalculateConversionRate(float64(externalVisits), float64(totalVisits))

	return &AcquisitionDataset{
		Funnel:                      CalculateFunnelStages(totals),
		Sources:                     sources,
		PlatformArpu:                platformArpu,
		Mix:                         mix,
		AvgTimeToFirstPurchaseHours: avgTimeToFirstPurchaseHours,
		ExternalShare:               externalShare,
	}, nil
}

// buildFunnelTotals: visits có mùa vụ nhẹ theo sin, freeViews 65–80% visits,
// firstPurchases 8–12% freeViews.
func buildFunnelTotals(ctx *MockContext) FunnelTotals {
	var visitsSum float64
	for idx := range ctx.Buckets {
		base := RandomBetween(7000, 14000, ctx.Random)
		seasonal := 1 + math.Sin(float64(idx)/2)*0.15
		visitsSum += base * seasonal
	}

	visits := math.Round(visitsSum)
	freeViews := math.Round(visits * RandomBetween(0.65, 0.8, ctx.Random))
	firstPurchases := math.Round(freeViews * RandomBetween(0.08, 0.12, ctx.Random))

	return FunnelTotals{
		Visits:         int64(visits),
		FreeViews:      int64(freeViews),
		FirstPurchases: int64(firstPurchases),
	}
}

func buildSourcePerformance(ctx *MockContext, totals FunnelTotals) []SourcePerformance {
	weights := make([]float64, len(Sources))
	for index := range Sources {
		weights[index] = 1 + math.Cos(float64(index))
	}

	visitAllocations := Distribute(float64(totals.Visits), weights, ctx.Random)
	freeViewAllocations := Distribute(float64(totals.FreeViews), weights, ctx.Random)
	purchaseAllocations := Distribute(float64(totals.FirstPurchases), weights, ctx.Random)

	result := make([]SourcePerformance, 0, len(Sources))
	for index, source := range Sources {
		visits := int64(math.Round(visitAllocations[index]))
		freeViews := int64(math.Round(freeViewAllocations[index]))
		firstPurchases := int64(math.Round(purchaseAllocations[index]))
		if firstPurchases < 0 {
			firstPurchases = 0
		}
		revenue := float64(firstPurchases) * RandomBetween(1800, 3400, ctx.Random)
		arpu := SafeDivide(revenue, math.Max(1, float64(visits)), 4)

		result = append(result, SourcePerformance{
			Source:         source,
			Visits:         visits,
			FreeViews:      freeViews,
			FirstPurchases: firstPurchases,
			ConversionRate: CalculateConversionRate(float64(firstPurchases), float64(visits)),
			Arpu:           arpu,
			Revenue:        int64(math.Round(revenue)),
		})
	}
	return result
}

func buildPlatformArpu(ctx *MockContext, totals FunnelTotals) []PlatformArpu {
	weights := make([]float64, len(Platforms))
	for idx := range Platforms {
		weights[idx] = 1 + math.Sin(float64(idx))
	}
	allocations := Distribute(float64(totals.FirstPurchases), weights, ctx.Random)

	result := make([]PlatformArpu, 0, len(Platforms))
	for index, platform := range Platforms {
		purchasers := math.Max(1, allocations[index])
		revenue := purchasers * RandomBetween(2200, 4200, ctx.Random)
		arpu := SafeDivide(revenue, math.Max(1, float64(totals.Visits)*0.2), 4)

		result = append(result, PlatformArpu{
			Platform: platform,
			Arpu:     arpu,
			Revenue:  int64(math.Round(revenue)),
		})
	}
	return result
}

// buildTrafficMix chia baseline visits mỗi bucket thành external/internal/direct,
// direct là phần dư nên tổng ba kênh không vượt baseline quá nhiều.
func buildTrafficMix(ctx *MockContext, totals FunnelTotals) []TrafficMixPoint {
	mix := make([]TrafficMixPoint, 0, len(ctx.Buckets))
	baseline := float64(totals.Visits) / float64(len(ctx.Buckets))

	for index, bucket := range ctx.Buckets {
		external := baseline * RandomBetween(0.35, 0.6, ctx.Random)
		internal := baseline * RandomBetween(0.25, 0.45, ctx.Random)
		direct := math.Max(0, baseline-external-internal)

		mix = append(mix, TrafficMixPoint{
			Date:     FormatUTC(bucket.Start),
			External: int64(math.Round(external * (1 + math.Sin(float64(index)/2)*0.05))),
			Internal: int64(math.Round(internal * (1 + math.Cos(float64(index)/2)*0.05))),
			Direct:   int64(math.Round(direct)),
		})
	}
	return mix
}
