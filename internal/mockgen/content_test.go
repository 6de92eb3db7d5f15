package mockgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentDatasetDeterministic(t *testing.T) {
	first, err := GenerateContentDataset(weekParams(t))
	require.NoError(t, err)
	second, err := GenerateContentDataset(weekParams(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContentPerformanceRows(t *testing.T) {
	dataset, err := GenerateContentDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.Performance, 30)

	for i, row := range dataset.Performance {
		if i > 0 {
			assert.GreaterOrEqual(t, dataset.Performance[i-1].Revenue, row.Revenue, "bảng hiệu suất sort theo doanh thu giảm dần")
		}
		assert.GreaterOrEqual(t, row.Views, row.UniqueViewers, "views luôn >= unique viewers")
		assert.LessOrEqual(t, row.Sales, row.UniqueViewers)
		assert.GreaterOrEqual(t, row.ConversionRate, 0.0)
		assert.LessOrEqual(t, row.ConversionRate, 1.0)
		assert.NotEmpty(t, row.Title)
		assert.Contains(t, ContentStatuses, row.Status)
		assert.Contains(t, ContentGenres, row.CreatorSegment)
	}
}

func TestContentTopPerformers(t *testing.T) {
	dataset, err := GenerateContentDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.TopPerformers, 5)

	assert.Equal(t, dataset.Performance[0].ContentID, dataset.TopPerformers[0].ContentID)
	for i := 1; i < len(dataset.TopPerformers); i++ {
		assert.GreaterOrEqual(t, dataset.TopPerformers[i-1].Revenue, dataset.TopPerformers[i].Revenue)
	}
}

func TestContentPlatformFilterPins(t *testing.T) {
	params := weekParams(t)
	params.Filters = Filters{Platform: []string{"TikTok"}}

	dataset, err := GenerateContentDataset(params)
	require.NoError(t, err)
	for _, row := range dataset.Performance {
		assert.Equal(t, "TikTok", row.Platform)
	}
}

func TestContentWatchTimeTrend(t *testing.T) {
	dataset, err := GenerateContentDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.WatchTimeTrend, 7)

	for _, point := range dataset.WatchTimeTrend {
		assert.NotEmpty(t, point.Date)
		assert.Positive(t, point.AvgWatchTimeSec)
	}
}
