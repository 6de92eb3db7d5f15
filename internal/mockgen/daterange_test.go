package mockgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator_insight/internal/common"
)

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestEnsureValidRangeSwapsReversedBounds(t *testing.T) {
	loc := tokyo(t)
	r, err := EnsureValidRange("2024-03-10T00:00:00Z", "2024-03-01T00:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, r.Start.Before(r.End) || r.Start.Equal(r.End))
}

func TestEnsureValidRangeRejectsGarbage(t *testing.T) {
	loc := tokyo(t)
	_, err := EnsureValidRange("not-a-date", "2024-03-01T00:00:00Z", loc)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidDate)
}

func TestInferGranularityBoundaries(t *testing.T) {
	loc := tokyo(t)
	mk := func(start, end string) DateRange {
		r, err := EnsureValidRange(start, end, loc)
		require.NoError(t, err)
		return r
	}

	// mốc 14/90 tính theo hiệu số ngày lịch, biên thuộc về mức nhỏ hơn
	assert.Equal(t, GranularityDay, InferGranularity(mk("2024-01-01T00:00:00Z", "2024-01-15T23:59:59Z")))
	assert.Equal(t, GranularityWeek, InferGranularity(mk("2024-01-01T00:00:00Z", "2024-01-16T23:59:59Z")))
	assert.Equal(t, GranularityWeek, InferGranularity(mk("2024-01-01T00:00:00Z", "2024-03-31T23:59:59Z")))
	assert.Equal(t, GranularityMonth, InferGranularity(mk("2024-01-01T00:00:00Z", "2024-04-01T23:59:59Z")))
}

func TestBuildBucketsDaily(t *testing.T) {
	loc := tokyo(t)
	r, err := EnsureValidRange("2024-01-01T00:00:00+09:00", "2024-01-07T23:59:59+09:00", loc)
	require.NoError(t, err)

	buckets := BuildBuckets(r, GranularityDay, loc)
	require.Len(t, buckets, 7)

	for i := 1; i < len(buckets); i++ {
		// liền kề, không chồng lấn: start bucket sau = end bucket trước + 1s
		assert.Equal(t, buckets[i-1].End.Add(time.Second), buckets[i].Start)
	}
	assert.Equal(t, "2024-01-01", buckets[0].Label)
	assert.Equal(t, "2024-01-07", buckets[6].Label)
}

func TestBuildBucketsWeeklyAlignsToMonday(t *testing.T) {
	loc := tokyo(t)
	// 2024-01-03 là thứ Tư; bucket tuần đầu phải floor về thứ Hai 2024-01-01
	r, err := EnsureValidRange("2024-01-03T00:00:00+09:00", "2024-01-12T23:59:59+09:00", loc)
	require.NoError(t, err)

	buckets := BuildBuckets(r, GranularityWeek, loc)
	require.Len(t, buckets, 2)

	first := buckets[0].Start.In(loc)
	assert.Equal(t, time.Monday, first.Weekday())
	assert.Equal(t, "2024-01-01", buckets[0].Label)

	// bucket cuối được phép vượt quá end của range
	assert.True(t, buckets[1].End.After(r.End))
}

func TestBuildBucketsMonthly(t *testing.T) {
	loc := tokyo(t)
	r, err := EnsureValidRange("2024-01-15T00:00:00+09:00", "2024-03-20T23:59:59+09:00", loc)
	require.NoError(t, err)

	buckets := BuildBuckets(r, GranularityMonth, loc)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01-01", buckets[0].Label)
	assert.Equal(t, "2024-02-01", buckets[1].Label)
	assert.Equal(t, "2024-03-01", buckets[2].Label)
}

func TestResolvePresets(t *testing.T) {
	loc := tokyo(t)
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)

	today := ResolvePreset(PresetToday, loc, now)
	assert.Equal(t, 15, today.Start.In(loc).Day())
	assert.Equal(t, 0, today.Start.In(loc).Hour())
	assert.Equal(t, 23, today.End.In(loc).Hour())

	yesterday := ResolvePreset(PresetYesterday, loc, now)
	assert.Equal(t, 14, yesterday.Start.In(loc).Day())

	last7 := ResolvePreset(PresetLast7, loc, now)
	assert.Equal(t, 7, calendarDays(last7.Start, last7.End))

	last30 := ResolvePreset(PresetLast30, loc, now)
	assert.Equal(t, 30, calendarDays(last30.Start, last30.End))

	thisMonth := ResolvePreset(PresetThisMonth, loc, now)
	assert.Equal(t, 1, thisMonth.Start.In(loc).Day())
	assert.Equal(t, time.March, thisMonth.Start.In(loc).Month())

	prevMonth := ResolvePreset(PresetPrevMonth, loc, now)
	assert.Equal(t, time.February, prevMonth.Start.In(loc).Month())
	assert.Equal(t, 29, prevMonth.End.In(loc).Day(), "2024 nhuận nên tháng Hai kết thúc ngày 29")
}

func TestShiftRange(t *testing.T) {
	loc := tokyo(t)
	r, err := EnsureValidRange("2024-03-08T00:00:00+09:00", "2024-03-14T23:59:59+09:00", loc)
	require.NoError(t, err)

	prev := ShiftRange(r, ComparePrevious, GranularityDay)
	assert.True(t, prev.End.Before(r.Start), "kỳ trước phải nằm trọn trước kỳ hiện tại")
	assert.Equal(t, calendarDays(r.Start, r.End), calendarDays(prev.Start, prev.End), "kỳ trước giữ nguyên độ dài")

	yoyDay := ShiftRange(r, CompareYoy, GranularityDay)
	assert.Equal(t, r.Start.AddDate(0, 0, -365), yoyDay.Start)

	yoyWeek := ShiftRange(r, CompareYoy, GranularityWeek)
	assert.Equal(t, r.Start.AddDate(0, 0, -364), yoyWeek.Start, "yoy theo tuần lùi 364 ngày để giữ thứ trong tuần")

	yoyMonth := ShiftRange(r, CompareYoy, GranularityMonth)
	assert.Equal(t, r.Start.AddDate(0, -12, 0), yoyMonth.Start)
}

func TestFormatUTC(t *testing.T) {
	loc := tokyo(t)
	moment := time.Date(2024, 1, 1, 9, 0, 0, 0, loc)
	assert.Equal(t, "2024-01-01T00:00:00Z", FormatUTC(moment))
}
