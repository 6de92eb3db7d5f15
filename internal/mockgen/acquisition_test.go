package mockgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAcquisitionDatasetDeterministic(t *testing.T) {
	first, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	second, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAcquisitionFunnelMonotonic(t *testing.T) {
	dataset, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.Funnel, 3)

	assert.GreaterOrEqual(t, dataset.Funnel[0].Volume, dataset.Funnel[1].Volume)
	assert.GreaterOrEqual(t, dataset.Funnel[1].Volume, dataset.Funnel[2].Volume)
	assert.Equal(t, 1.0, dataset.Funnel[0].ConversionRate)
	for _, stage := range dataset.Funnel[1:] {
		assert.Greater(t, stage.ConversionRate, 0.0)
		assert.LessOrEqual(t, stage.ConversionRate, 1.0)
	}
}

func TestAcquisitionSources(t *testing.T) {
	dataset, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.Sources, len(Sources))

	for i, source := range dataset.Sources {
		assert.Equal(t, Sources[i], source.Source, "giữ nguyên thứ tự pool nguồn")
		assert.GreaterOrEqual(t, source.Visits, int64(0))
		assert.GreaterOrEqual(t, source.FirstPurchases, int64(0))
		assert.GreaterOrEqual(t, source.ConversionRate, 0.0)
		assert.GreaterOrEqual(t, source.Revenue, int64(0))
	}
}

func TestAcquisitionExternalShare(t *testing.T) {
	dataset, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, dataset.ExternalShare, 0.0)
	assert.LessOrEqual(t, dataset.ExternalShare, 1.0)
	assert.GreaterOrEqual(t, dataset.AvgTimeToFirstPurchaseHours, 9.0)
	assert.Less(t, dataset.AvgTimeToFirstPurchaseHours, 26.0)
}

func TestAcquisitionPlatformArpu(t *testing.T) {
	dataset, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.PlatformArpu, len(Platforms))

	for i, row := range dataset.PlatformArpu {
		assert.Equal(t, Platforms[i], row.Platform)
		assert.Positive(t, row.Revenue)
		assert.Greater(t, row.Arpu, 0.0)
	}
}

func TestAcquisitionTrafficMixPerBucket(t *testing.T) {
	dataset, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	require.Len(t, dataset.Mix, 7)

	for _, point := range dataset.Mix {
		assert.NotEmpty(t, point.Date)
		assert.GreaterOrEqual(t, point.External, int64(0))
		assert.GreaterOrEqual(t, point.Internal, int64(0))
		assert.GreaterOrEqual(t, point.Direct, int64(0))
	}
}

func TestAcquisitionIndependentFromOtherDomains(t *testing.T) {
	acquisition, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)

	// sinh revenue trước không được làm lệch stream của acquisition
	_, err = GenerateRevenueDataset(weekParams(t))
	require.NoError(t, err)

	again, err := GenerateAcquisitionDataset(weekParams(t))
	require.NoError(t, err)
	assert.Equal(t, acquisition, again)
}
