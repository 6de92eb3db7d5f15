package mockgen

import (
	"math"
	"time"
)

// AudienceDataset gồm trend follower, retention theo cohort và snapshot realtime.
type AudienceDataset struct {
	Followers          []FollowersTrendPoint
	Retention          []RetentionPoint
	Realtime           RealtimeActive
	SevenDayRetention  float64
	ThirtyDayRetention float64
}

// GenerateAudienceDataset sinh dataset audience. Thứ tự draw: base follower,
// mỗi bucket 2 draw (new + churn), 3 draw retention cohort, 1 draw realtime.
func GenerateAudienceDataset(params GeneratorParams) (*AudienceDataset, error) {
	ctx := NewMockContext("audience", params.Range, params.GroupBy, params.Filters, params.Compare)

	followers := buildFollowersTrend(ctx)
	retention := buildRetention(ctx)
	realtime := buildRealtime(ctx)

	dataset := &AudienceDataset{
		Followers: followers,
		Retention: retention,
		Realtime:  realtime,
	}
	for _, point := range retention {
		switch point.CohortStart {
		case "7d":
			dataset.SevenDayRetention = point.RetentionRate
		case "30d":
			dataset.ThirtyDayRetention = point.RetentionRate
		}
	}
	return dataset, nil
}

// buildFollowersTrend chạy một running total từ base 280k–410k, mỗi bucket cộng
// follower mới trừ churn (35–55% số mới).
func buildFollowersTrend(ctx *MockContext) []FollowersTrendPoint {
	base := RandomInt(280000, 410000, ctx.Random)
	runningTotal := float64(base)

	trend := make([]FollowersTrendPoint, 0, len(ctx.Buckets))
	for index, bucket := range ctx.Buckets {
		newFollowers := math.Round(RandomBetween(900, 2100, ctx.Random) * (1 + math.Sin(float64(index)/3)*0.1))
		churned := math.Round(newFollowers * RandomBetween(0.35, 0.55, ctx.Random))
		runningTotal += newFollowers - churned

		trend = append(trend, FollowersTrendPoint{
			Date:             FormatUTC(bucket.Start),
			FollowersTotal:   int64(math.Max(0, math.Round(runningTotal))),
			FollowersNew:     int64(newFollowers),
			FollowersChurned: int64(churned),
		})
	}
	return trend
}

func buildRetention(ctx *MockContext) []RetentionPoint {
	definitions := []struct {
		Label string
		Base  float64
	}{
		{"7d", 0.42},
		{"30d", 0.31},
		{"90d", 0.22},
	}

	cohorts := make([]RetentionPoint, 0, len(definitions))
	for _, def := range definitions {
		retention := def.Base * RandomBetween(0.9, 1.08, ctx.Random)
		cohorts = append(cohorts, RetentionPoint{
			CohortStart:   def.Label,
			RetentionRate: RoundTo(retention, 3),
			ChurnRate:     RoundTo(1-retention, 3),
		})
	}
	return cohorts
}

func buildRealtime(ctx *MockContext) RealtimeActive {
	activeUsers := int64(math.Round(RandomBetween(950, 3800, ctx.Random)))
	return RealtimeActive{
		ActiveUsers: activeUsers,
		PolledAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
