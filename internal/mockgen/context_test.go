package mockgen

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return DateRange{Start: s, End: e}
}

func TestSeedConstruction(t *testing.T) {
	r := utcRange(t, "2024-01-01T00:00:00Z", "2024-01-07T23:59:59Z")
	ctx := NewMockContext("revenue", r, GranularityDay, Filters{}, CompareNone)

	assert.Equal(t, "revenue-2024-01-01T00:00:00Z-2024-01-07T23:59:59Z-day-none-none", ctx.Seed)
}

func TestSeedChangesWithEveryComponent(t *testing.T) {
	r := utcRange(t, "2024-01-01T00:00:00Z", "2024-01-07T23:59:59Z")
	base := NewMockContext("revenue", r, GranularityDay, Filters{}, CompareNone)

	otherDomain := NewMockContext("content", r, GranularityDay, Filters{}, CompareNone)
	otherGroupBy := NewMockContext("revenue", r, GranularityWeek, Filters{}, CompareNone)
	otherCompare := NewMockContext("revenue", r, GranularityDay, Filters{}, ComparePrevious)
	otherFilters := NewMockContext("revenue", r, GranularityDay, Filters{Platform: []string{"YouTube"}}, CompareNone)

	assert.NotEqual(t, base.Seed, otherDomain.Seed)
	assert.NotEqual(t, base.Seed, otherGroupBy.Seed)
	assert.NotEqual(t, base.Seed, otherCompare.Seed)
	assert.NotEqual(t, base.Seed, otherFilters.Seed)
}

func TestHashFilters(t *testing.T) {
	assert.Equal(t, "none", HashFilters(Filters{}))

	// thứ tự chiều cố định, value trong chiều được sort
	withValues := HashFilters(Filters{
		Country:  []string{"US", "JP"},
		Platform: []string{"YouTube"},
	})
	assert.Equal(t, "platform:YouTube|country:JP|country:US", withValues)

	// hoán vị input không đổi hash
	permuted := HashFilters(Filters{
		Platform: []string{"YouTube"},
		Country:  []string{"JP", "US"},
	})
	assert.Equal(t, withValues, permuted)
}

func TestDistributeConservesTotalApproximately(t *testing.T) {
	random := NewSeededRandom("distribute")
	weights := []float64{1.5, 0.8, -0.2, 1.0}
	total := 10000.0

	allocation := Distribute(total, weights, random)
	require.Len(t, allocation, len(weights))

	var sum float64
	for _, v := range allocation {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	// phần dư được chia đều lại nên tổng chỉ lệch khi có phần tử bị kẹp về 0
	assert.InDelta(t, total, sum, total*0.05)
}

func TestAllocateByWeights(t *testing.T) {
	random := NewSeededRandom("allocate")
	allocation := AllocateByWeights(5000, []float64{0.5, 0.3, 0.2}, random)

	require.Len(t, allocation, 3)
	for _, v := range allocation {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestGenerateID(t *testing.T) {
	random := NewSeededRandom("ids")
	id := GenerateID("content", 4, random)
	assert.Regexp(t, regexp.MustCompile(`^content-4-\d{4}$`), id)

	// cùng seed cùng vị trí draw thì id giống nhau
	again := GenerateID("content", 4, NewSeededRandom("ids"))
	assert.Equal(t, id, again)
}

func TestRandomTimeWithinBucket(t *testing.T) {
	loc := ResolveTimezone(DefaultTimezone)
	r := utcRange(t, "2024-01-01T00:00:00Z", "2024-01-03T23:59:59Z")
	buckets := BuildBuckets(r, GranularityDay, loc)
	require.NotEmpty(t, buckets)

	random := NewSeededRandom("bucket-time")
	for i := 0; i < 200; i++ {
		stamp := RandomTimeWithinBucket(buckets[0], random)
		parsed, err := time.Parse(time.RFC3339, stamp)
		require.NoError(t, err)
		assert.False(t, parsed.Before(buckets[0].Start))
		assert.False(t, parsed.After(buckets[0].End))
	}
}

func TestBucketizeLength(t *testing.T) {
	r := utcRange(t, "2024-01-01T00:00:00Z", "2024-01-07T23:59:59Z")
	ctx := NewMockContext("revenue", r, GranularityDay, Filters{}, CompareNone)

	values := Bucketize(70000, len(ctx.Buckets), ctx.Random)
	assert.Len(t, values, len(ctx.Buckets))
}
