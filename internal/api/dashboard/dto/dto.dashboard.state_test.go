package dashboarddto

import (
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"creator_insight/config"
	"creator_insight/internal/common"
	"creator_insight/internal/global"
	"creator_insight/internal/mockgen"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}

// parseState chạy ParseQueryState qua một route probe để có fiber.Ctx thật.
func parseState(t *testing.T, target string) (*QueryState, error) {
	t.Helper()
	var state *QueryState
	var parseErr error

	app := fiber.New()
	app.Get("/probe", func(c fiber.Ctx) error {
		state, parseErr = ParseQueryState(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return state, parseErr
}

func TestParseQueryStateDefaults(t *testing.T) {
	state, err := parseState(t, "/probe")
	require.NoError(t, err)

	assert.Equal(t, mockgen.PresetLast7, state.Preset)
	assert.Equal(t, mockgen.DefaultTimezone, state.Tz)
	assert.Equal(t, mockgen.CompareNone, state.Compare)
	assert.Equal(t, mockgen.GranularityDay, state.GroupBy)
	assert.Empty(t, state.Filters.Platform)
	assert.True(t, state.Range.Start.Before(state.Range.End))
}

func TestParseQueryStateExplicitRange(t *testing.T) {
	state, err := parseState(t, "/probe?start=2024-01-01&end=2024-01-07&groupBy=week&compare=prev")
	require.NoError(t, err)

	assert.Equal(t, mockgen.GranularityWeek, state.GroupBy)
	assert.Equal(t, mockgen.ComparePrevious, state.Compare)
	assert.Equal(t, "2023-12-31T15:00:00Z", mockgen.FormatUTC(state.Range.Start))
}

// Thiếu một trong hai đầu range thì bỏ qua cả start lẫn end, dùng preset.
func TestParseQueryStateHalfRangeFallsBackToPreset(t *testing.T) {
	state, err := parseState(t, "/probe?start=2024-01-01&preset=last30")
	require.NoError(t, err)

	assert.Equal(t, mockgen.PresetLast30, state.Preset)
	rangeDays := state.Range.End.Sub(state.Range.Start).Hours() / 24
	assert.Greater(t, rangeDays, 28.0)
}

func TestParseQueryStateFilters(t *testing.T) {
	state, err := parseState(t, "/probe?platform=YouTube,TikTok&country=JP&product=single,tip")
	require.NoError(t, err)

	assert.Equal(t, []string{"YouTube", "TikTok"}, state.Filters.Platform)
	assert.Equal(t, []string{"JP"}, state.Filters.Country)
	assert.Equal(t, []string{"single", "tip"}, state.Filters.Product)
	assert.Empty(t, state.Filters.Device)
}

func TestParseQueryStateInvalidDate(t *testing.T) {
	_, err := parseState(t, "/probe?start=not-a-date&end=also-bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidDate)
}

func TestParseQueryStateRejectsUnknownGroupBy(t *testing.T) {
	_, err := parseState(t, "/probe?groupBy=hour")
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
}

func TestParseQueryStateTimezoneOverride(t *testing.T) {
	state, err := parseState(t, "/probe?tz=UTC&start=2024-01-01&end=2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, "UTC", state.Tz)
	assert.Equal(t, "2024-01-01T00:00:00Z", mockgen.FormatUTC(state.Range.Start))
}

// Tz mặc định lấy từ DEFAULT_TIMEZONE của server config khi request không gửi tz.
func TestParseQueryStateDefaultTimezoneFromConfig(t *testing.T) {
	global.ServerConfig = &config.Configuration{DefaultTimezone: "UTC"}
	defer func() { global.ServerConfig = nil }()

	state, err := parseState(t, "/probe?start=2024-01-01&end=2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, "UTC", state.Tz)
	assert.Equal(t, "2024-01-01T00:00:00Z", mockgen.FormatUTC(state.Range.Start))
}

// Query product của /revenue/trend đi qua validator: rỗng về "all", giá trị lạ 400.
func TestParseTrendProduct(t *testing.T) {
	parse := func(target string) (mockgen.ProductType, error) {
		var product mockgen.ProductType
		var parseErr error
		app := fiber.New()
		app.Get("/probe", func(c fiber.Ctx) error {
			product, parseErr = ParseTrendProduct(c)
			return c.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		return product, parseErr
	}

	product, err := parse("/probe")
	require.NoError(t, err)
	assert.Equal(t, mockgen.ProductAll, product)

	product, err = parse("/probe?product=subscription")
	require.NoError(t, err)
	assert.Equal(t, mockgen.ProductSubscription, product)

	_, err = parse("/probe?product=bundle")
	require.Error(t, err)
	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, common.ErrCodeValidationInput.Code, customErr.Code.Code)
}

func TestCompareParamsShiftsRangeAndResetsMode(t *testing.T) {
	state, err := parseState(t, "/probe?start=2024-01-08&end=2024-01-14&compare=previous&groupBy=day")
	require.NoError(t, err)

	params := state.CompareParams()
	assert.Equal(t, mockgen.CompareNone, params.Compare)
	assert.True(t, params.Range.End.Before(state.Range.Start))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, 10)
	require.Len(t, first, 10)
	assert.Equal(t, 0, first[0])

	second := Paginate(items, 2, 10)
	require.Len(t, second, 10)
	assert.Equal(t, 10, second[0])

	last := Paginate(items, 3, 12)
	assert.Len(t, last, 6)

	assert.Empty(t, Paginate(items, 9, 10))
}
