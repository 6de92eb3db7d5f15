package dashboarddto

import (
	"strings"
	"time"

	"creator_insight/internal/common"
	"creator_insight/internal/global"
	"creator_insight/internal/mockgen"

	"github.com/gofiber/fiber/v3"
)

// QueryState là trạng thái query đã chuẩn hóa của một dashboard request,
// dùng chung cho cả bốn domain. Dựng qua ParseQueryState, bất biến sau đó.
type QueryState struct {
	Range   mockgen.DateRange
	Preset  mockgen.RangePreset
	Compare mockgen.CompareMode
	GroupBy mockgen.Granularity
	Filters mockgen.Filters
	Tz      string
}

// ParseQueryState đọc và validate query param của request thành QueryState.
// Quy tắc resolve:
//   - tz mặc định Asia/Tokyo, preset mặc định last7
//   - start+end (đủ cả hai) thắng preset, thiếu một trong hai thì bỏ qua
//   - compare "prev" chuẩn hóa thành "previous", giá trị lạ thành "none"
//   - groupBy bỏ trống thì suy ra từ độ dài range
//
// Ngày không parse được trả về lỗi VAL_003 (400) cho client.
func ParseQueryState(c fiber.Ctx) (*QueryState, error) {
	var q DashboardQuery
	if err := c.Bind().Query(&q); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	if err := global.Validate.Struct(&q); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	tz := q.Tz
	if tz == "" {
		tz = defaultTimezone()
	}
	loc := mockgen.ResolveTimezone(tz)

	preset := mockgen.RangePreset(q.Preset)
	if preset == "" {
		preset = mockgen.PresetLast7
	}

	var rng mockgen.DateRange
	if q.Start != "" && q.End != "" {
		var err error
		rng, err = mockgen.EnsureValidRange(q.Start, q.End, loc)
		if err != nil {
			return nil, err
		}
	} else {
		rng = mockgen.ResolvePreset(preset, loc, time.Now())
	}

	return &QueryState{
		Range:   rng,
		Preset:  preset,
		Compare: normalizeCompare(q.Compare),
		GroupBy: resolveGroupBy(q.GroupBy, rng),
		Filters: parseFilters(q),
		Tz:      tz,
	}, nil
}

// GeneratorParams chuyển QueryState thành request descriptor cho generator.
func (s *QueryState) GeneratorParams() mockgen.GeneratorParams {
	return mockgen.GeneratorParams{
		Range:   s.Range,
		GroupBy: s.GroupBy,
		Filters: s.Filters,
		Compare: s.Compare,
	}
}

// CompareParams trả về descriptor của kỳ so sánh: range dịch theo compare mode,
// compare đặt lại "none" để seed của kỳ so sánh không phụ thuộc mode hiện tại.
func (s *QueryState) CompareParams() mockgen.GeneratorParams {
	return mockgen.GeneratorParams{
		Range:   mockgen.ShiftRange(s.Range, s.Compare, s.GroupBy),
		GroupBy: s.GroupBy,
		Filters: s.Filters,
		Compare: mockgen.CompareNone,
	}
}

// defaultTimezone lấy tz mặc định từ config server (DEFAULT_TIMEZONE).
// Fallback về hằng của generator khi config chưa được init (unit test).
func defaultTimezone() string {
	if global.ServerConfig != nil && global.ServerConfig.DefaultTimezone != "" {
		return global.ServerConfig.DefaultTimezone
	}
	return mockgen.DefaultTimezone
}

// normalizeCompare chuẩn hóa compare mode: "prev" là alias cũ của "previous",
// giá trị không nhận diện được rơi về "none".
func normalizeCompare(value string) mockgen.CompareMode {
	switch value {
	case "prev", "previous":
		return mockgen.ComparePrevious
	case "yoy":
		return mockgen.CompareYoy
	}
	return mockgen.CompareNone
}

// resolveGroupBy dùng groupBy client gửi nếu hợp lệ, ngược lại suy ra từ range.
func resolveGroupBy(candidate string, rng mockgen.DateRange) mockgen.Granularity {
	switch candidate {
	case "day", "week", "month":
		return mockgen.Granularity(candidate)
	}
	return mockgen.InferGranularity(rng)
}

// parseFilters tách các filter CSV thành Filters, bỏ entry rỗng.
func parseFilters(q DashboardQuery) mockgen.Filters {
	return mockgen.Filters{
		Platform: splitCSV(q.Platform),
		Country:  splitCSV(q.Country),
		Device:   splitCSV(q.Device),
		UserType: splitCSV(q.UserType),
		Product:  splitCSV(q.Product),
	}
}

func splitCSV(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildMeta dựng khối meta chung của response dashboard.
// generated_at là thời điểm lắp ráp response, không tham gia seed.
func BuildMeta(s *QueryState) fiber.Map {
	return fiber.Map{
		"range": fiber.Map{
			"start":   mockgen.FormatUTC(s.Range.Start),
			"end":     mockgen.FormatUTC(s.Range.End),
			"tz":      s.Tz,
			"groupBy": s.GroupBy,
		},
		"filters":      s.Filters,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"compare":      s.Compare,
		"preset":       s.Preset,
	}
}

// ParseTrendProduct đọc query product của /revenue/trend. Bỏ trống trả về
// "all"; giá trị ngoài danh sách product trả lỗi VAL_001 (400).
func ParseTrendProduct(c fiber.Ctx) (mockgen.ProductType, error) {
	var q TrendQuery
	if err := c.Bind().Query(&q); err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	if err := global.Validate.Struct(&q); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	if q.Product == "" {
		return mockgen.ProductAll, nil
	}
	return mockgen.ProductType(q.Product), nil
}

// ParsePagination đọc page/limit từ query: page mặc định 1, limit mặc định 50
// và tối đa 200.
func ParsePagination(c fiber.Ctx) (page int, limit int) {
	var q PaginationQuery
	_ = c.Bind().Query(&q)
	page = q.Page
	if page <= 0 {
		page = 1
	}
	limit = q.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}

// PaginationMeta dựng khối pagination nhét vào meta.
func PaginationMeta(page, limit, total int) fiber.Map {
	return fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
	}
}

// Paginate lấy slice con theo offset (page-1)*limit. Trang vượt quá cuối danh
// sách trả về slice rỗng, không phải lỗi.
func Paginate[T any](items []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	to := offset + limit
	if to > len(items) {
		to = len(items)
	}
	return items[offset:to]
}
