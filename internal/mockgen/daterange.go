package mockgen

import (
	"time"

	"creator_insight/internal/common"
)

// DefaultTimezone là múi giờ mặc định của dashboard khi request không chỉ định tz.
const DefaultTimezone = "Asia/Tokyo"

// utcSecondLayout: mọi timestamp trong engine serialize ở UTC, độ chính xác giây.
// Format này cũng là thành phần của chuỗi seed nên không được đổi.
const utcSecondLayout = "2006-01-02T15:04:05Z"

const dayLabelLayout = "2006-01-02"

// ResolveTimezone trả về *time.Location cho tên tz; tên rỗng hoặc không hợp lệ
// rơi về DefaultTimezone.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	return loc
}

// FormatUTC serialize một instant về chuỗi UTC chuẩn của engine.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(utcSecondLayout)
}

// parseLayouts là các dạng ISO-like được chấp nhận ở đầu vào. Dạng có zone
// được parse tuyệt đối, dạng không zone được hiểu là giờ địa phương của tz.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseLocalInstant parse một chuỗi ISO-like thành instant theo múi giờ loc.
// Trả về common.ErrInvalidDate nếu không dạng nào khớp.
func ParseLocalInstant(value string, loc *time.Location) (time.Time, error) {
	for i, layout := range parseLayouts {
		if i == 0 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.ErrInvalidDate
}

// EnsureValidRange parse hai chuỗi ngày thành DateRange hợp lệ. Nếu caller đưa
// start > end thì hoán đổi/clamp để luôn có Start ≤ End — đây không phải lỗi.
func EnsureValidRange(start, end string, loc *time.Location) (DateRange, error) {
	startAt, err := ParseLocalInstant(start, loc)
	if err != nil {
		return DateRange{}, err
	}
	endAt, err := ParseLocalInstant(end, loc)
	if err != nil {
		return DateRange{}, err
	}

	safeStart := startAt
	safeEnd := endAt
	if safeStart.After(safeEnd) {
		safeStart = endAt
	}
	if safeEnd.Before(safeStart) {
		safeEnd = safeStart
	}

	return DateRange{Start: safeStart, End: safeEnd}, nil
}

// calendarDays đếm số ngày lịch (UTC) giữa hai instant.
func calendarDays(start, end time.Time) int {
	s := start.UTC()
	e := end.UTC()
	sDay := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	eDay := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(eDay.Sub(sDay).Hours() / 24)
}

// InferGranularity suy ra granularity từ độ dài range khi request không chỉ định:
// ≤14 ngày → day, ≤90 ngày → week, còn lại → month. Biên 14/90 thuộc về mức nhỏ hơn.
func InferGranularity(r DateRange) Granularity {
	days := calendarDays(r.Start, r.End)
	if days < 1 {
		days = 1
	}
	if days <= 14 {
		return GranularityDay
	}
	if days <= 90 {
		return GranularityWeek
	}
	return GranularityMonth
}

// ResolvePreset tính DateRange cho một preset theo "now" ở múi giờ loc.
// last7/last30 là cửa sổ N ngày tính cả hôm nay. Preset custom trả về hôm nay —
// caller phải tự đưa start/end qua EnsureValidRange.
func ResolvePreset(preset RangePreset, loc *time.Location, now time.Time) DateRange {
	local := now.In(loc)
	todayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	todayEnd := endOfDay(todayStart)

	start := todayStart
	end := todayEnd

	switch preset {
	case PresetToday:
	case PresetYesterday:
		start = todayStart.AddDate(0, 0, -1)
		end = endOfDay(start)
	case PresetLast7:
		start = todayStart.AddDate(0, 0, -6)
	case PresetLast30:
		start = todayStart.AddDate(0, 0, -29)
	case PresetThisMonth:
		start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	case PresetPrevMonth:
		firstOfMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		start = firstOfMonth.AddDate(0, -1, 0)
		end = firstOfMonth.Add(-time.Second)
	case PresetCustom:
	}

	return DateRange{Start: start, End: end}
}

// endOfDay trả về giây cuối cùng của ngày chứa dayStart.
func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Second)
}

// ShiftRange dịch range về quá khứ theo chế độ so sánh: previous lùi đúng số
// ngày (inclusive) của range, yoy lùi 12 tháng / 52 tuần / 365 ngày tùy
// granularity. CompareNone trả về range nguyên vẹn.
func ShiftRange(r DateRange, mode CompareMode, groupBy Granularity) DateRange {
	switch mode {
	case ComparePrevious:
		diff := calendarDays(r.Start, r.End) + 1
		return DateRange{
			Start: r.Start.AddDate(0, 0, -diff),
			End:   r.End.AddDate(0, 0, -diff),
		}
	case CompareYoy:
		switch groupBy {
		case GranularityMonth:
			return DateRange{Start: r.Start.AddDate(0, -12, 0), End: r.End.AddDate(0, -12, 0)}
		case GranularityWeek:
			return DateRange{Start: r.Start.AddDate(0, 0, -364), End: r.End.AddDate(0, 0, -364)}
		default:
			return DateRange{Start: r.Start.AddDate(0, 0, -365), End: r.End.AddDate(0, 0, -365)}
		}
	default:
		return r
	}
}

// BuildBuckets chia range thành các bucket liên tục theo granularity, neo theo
// biên lịch của múi giờ loc (ngày: nửa đêm, tuần: thứ Hai, tháng: mùng 1).
// Con trỏ bắt đầu từ floor của Start và tiến một đơn vị cho tới khi vượt End.
// End của bucket luôn là cuối chu kỳ tự nhiên của nó, KHÔNG clamp về range.End —
// bucket cuối có thể thò quá biên range. Hành vi này cố ý giữ nguyên vì logic
// lọc trend phía sau dựa vào đúng biên này.
func BuildBuckets(r DateRange, groupBy Granularity, loc *time.Location) []Bucket {
	var buckets []Bucket

	cursor := floorBucket(r.Start.In(loc), groupBy)
	for !cursor.After(r.End) {
		next := advanceBucket(cursor, groupBy)
		buckets = append(buckets, Bucket{
			Start: cursor,
			End:   next.Add(-time.Second),
			Label: cursor.Format(dayLabelLayout),
		})
		cursor = next
	}

	return buckets
}

// floorBucket đưa một thời điểm địa phương về đầu chu kỳ chứa nó.
func floorBucket(local time.Time, groupBy Granularity) time.Time {
	switch groupBy {
	case GranularityWeek:
		dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
		// time.Weekday: Sunday = 0, tuần của dashboard bắt đầu thứ Hai
		offset := (int(dayStart.Weekday()) + 6) % 7
		return dayStart.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())
	default:
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	}
}

func advanceBucket(cursor time.Time, groupBy Granularity) time.Time {
	switch groupBy {
	case GranularityWeek:
		return cursor.AddDate(0, 0, 7)
	case GranularityMonth:
		return cursor.AddDate(0, 1, 0)
	default:
		return cursor.AddDate(0, 0, 1)
	}
}
