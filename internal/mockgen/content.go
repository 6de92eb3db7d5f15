package mockgen

import (
	"fmt"
	"math"
	"sort"
)

// ContentDataset gồm bảng hiệu suất 30 content, top 5 theo doanh thu và
// trend thời lượng xem theo bucket.
type ContentDataset struct {
	Performance    []ContentPerformanceRow
	TopPerformers  []ContentTopItem
	WatchTimeTrend []WatchTimeTrendPoint
}

// GenerateContentDataset sinh dataset content. 30 row cố định, mỗi row tiêu
// thụ đúng 9 draw (8 metric + 1 draw id), sau đó mỗi bucket 1 draw cho trend.
func GenerateContentDataset(params GeneratorParams) (*ContentDataset, error) {
	ctx := NewMockContext("content", params.Range, params.GroupBy, params.Filters, params.Compare)

	performance := buildPerformanceRows(ctx)

	top := make([]ContentPerformanceRow, len(performance))
	copy(top, performance)
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].Revenue > top[b].Revenue
	})
	if len(top) > 5 {
		top = top[:5]
	}
	topPerformers := make([]ContentTopItem, 0, len(top))
	for _, row := range top {
		topPerformers = append(topPerformers, ContentTopItem{
			ContentID: row.ContentID,
			Title:     row.Title,
			Revenue:   row.Revenue,
			Views:     row.Views,
		})
	}

	watchTimeTrend := buildWatchTimeTrend(ctx, performance)

	return &ContentDataset{
		Performance:    performance,
		TopPerformers:  topPerformers,
		WatchTimeTrend: watchTimeTrend,
	}, nil
}

func buildPerformanceRows(ctx *MockContext) []ContentPerformanceRow {
	rows := make([]ContentPerformanceRow, 0, 30)
	for index := 0; index < 30; index++ {
		genre := ContentGenres[index%len(ContentGenres)]
		title := fmt.Sprintf("Episode %d: %s Highlights", index+1, genre)

		uniqueViewers := RandomInt(12000, 85000, ctx.Random)
		views := int64(math.Round(float64(uniqueViewers) * RandomBetween(1.2, 2.8, ctx.Random)))
		sales := int64(math.Round(float64(uniqueViewers) * RandomBetween(0.02, 0.08, ctx.Random)))
		revenue := int64(math.Round(float64(sales) * RandomBetween(1800, 4200, ctx.Random)))
		avgWatch := int64(math.Round(RandomBetween(220, 980, ctx.Random)))
		likes := int64(math.Round(float64(views) * RandomBetween(0.01, 0.08, ctx.Random)))
		comments := int64(math.Round(float64(views) * RandomBetween(0.002, 0.01, ctx.Random)))
		reposts := int64(math.Round(float64(views) * RandomBetween(0.001, 0.004, ctx.Random)))
		status := ContentStatuses[index%len(ContentStatuses)]

		rows = append(rows, ContentPerformanceRow{
			ContentID:       GenerateID("content", index, ctx.Random),
			Title:           title,
			Views:           views,
			UniqueViewers:   int64(uniqueViewers),
			Sales:           sales,
			Revenue:         revenue,
			ConversionRate:  SafeDivide(float64(sales), float64(uniqueViewers), 4),
			AvgWatchTimeSec: avgWatch,
			Likes:           likes,
			Comments:        comments,
			Reposts:         reposts,
			Status:          status,
			Platform:        contentPlatform(ctx, index),
			CreatorSegment:  genre,
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Revenue > rows[b].Revenue
	})
	return rows
}

// contentPlatform không tiêu thụ draw: filter chiếm chỗ, không thì xoay vòng pool.
func contentPlatform(ctx *MockContext, index int) string {
	if len(ctx.Filters.Platform) > 0 {
		return ctx.Filters.Platform[0]
	}
	return Platforms[index%len(Platforms)]
}

func buildWatchTimeTrend(ctx *MockContext, performance []ContentPerformanceRow) []WatchTimeTrendPoint {
	var totalAvgWatch int64
	for _, row := range performance {
		totalAvgWatch += row.AvgWatchTimeSec
	}
	baseline := float64(totalAvgWatch) / float64(len(performance))

	trend := make([]WatchTimeTrendPoint, 0, len(ctx.Buckets))
	for index, bucket := range ctx.Buckets {
		trend = append(trend, WatchTimeTrendPoint{
			Date: FormatUTC(bucket.Start),
			AvgWatchTimeSec: int64(math.Round(
				baseline * RandomBetween(0.88, 1.12, ctx.Random) * (1 + math.Sin(float64(index)/2)*0.05),
			)),
		})
	}
	return trend
}
