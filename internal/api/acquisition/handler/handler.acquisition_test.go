package acquisitionhdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	apirouter "creator_insight/internal/api/router"
	"creator_insight/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}

func newAcquisitionApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	v1 := app.Group("/api/v1")
	handler, err := NewAcquisitionHandler()
	require.NoError(t, err)
	noop := func(c fiber.Ctx) error { return c.Next() }
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/funnel", []fiber.Handler{noop}, handler.HandleFunnel)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/sources", []fiber.Handler{noop}, handler.HandleSources)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/platform-arpu", []fiber.Handler{noop}, handler.HandlePlatformArpu)
	apirouter.RegisterRouteWithMiddleware(v1, "/acquisition", "GET", "/mix", []fiber.Handler{noop}, handler.HandleMix)
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

const weekQuery = "start=2024-01-01&end=2024-01-07&groupBy=day"

func TestHandleFunnel(t *testing.T) {
	app := newAcquisitionApp(t)
	status, body := getJSON(t, app, "/api/v1/acquisition/funnel?"+weekQuery)

	require.Equal(t, 200, status)
	assert.Equal(t, "success", body["status"])

	payload := body["data"].(map[string]interface{})
	stages := payload["data"].([]interface{})
	require.Len(t, stages, 3)

	wantIDs := []string{"visit", "free_view", "first_purchase"}
	prev := float64(-1)
	for i, raw := range stages {
		stage := raw.(map[string]interface{})
		assert.Equal(t, wantIDs[i], stage["id"])
		volume := stage["volume"].(float64)
		if i > 0 {
			// mỗi bậc funnel không vượt quá bậc trước
			assert.LessOrEqual(t, volume, prev)
		}
		prev = volume
	}

	metrics := payload["meta"].(map[string]interface{})["metrics"].(map[string]interface{})
	assert.Greater(t, metrics["avg_time_to_first_purchase_hours"].(float64), 0.0)
	share := metrics["external_share"].(float64)
	assert.GreaterOrEqual(t, share, 0.0)
	assert.LessOrEqual(t, share, 1.0)
}

func TestHandleSources(t *testing.T) {
	app := newAcquisitionApp(t)
	status, body := getJSON(t, app, "/api/v1/acquisition/sources?"+weekQuery)

	require.Equal(t, 200, status)
	rows := body["data"].(map[string]interface{})["data"].([]interface{})
	require.NotEmpty(t, rows)
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		assert.NotEmpty(t, row["source"])
		assert.GreaterOrEqual(t, row["visits"].(float64), 0.0)
		assert.GreaterOrEqual(t, row["free_views"].(float64), 0.0)
		// jitter phân bổ từng nguồn có thể lệch, nhưng purchases luôn nhỏ hơn visits
		assert.Less(t, row["first_purchases"].(float64), row["visits"].(float64)+1)
	}
}

func TestHandlePlatformArpu(t *testing.T) {
	app := newAcquisitionApp(t)
	status, body := getJSON(t, app, "/api/v1/acquisition/platform-arpu?"+weekQuery)

	require.Equal(t, 200, status)
	rows := body["data"].(map[string]interface{})["data"].([]interface{})
	require.NotEmpty(t, rows)
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		assert.NotEmpty(t, row["platform"])
		assert.GreaterOrEqual(t, row["arpu"].(float64), 0.0)
	}
}

func TestHandleMix(t *testing.T) {
	app := newAcquisitionApp(t)
	status, body := getJSON(t, app, "/api/v1/acquisition/mix?"+weekQuery)

	require.Equal(t, 200, status)
	rows := body["data"].(map[string]interface{})["data"].([]interface{})
	// 7 ngày, groupBy=day → 7 dòng
	assert.Len(t, rows, 7)
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		assert.NotEmpty(t, row["date"])
		assert.GreaterOrEqual(t, row["external"].(float64), 0.0)
		assert.GreaterOrEqual(t, row["internal"].(float64), 0.0)
		assert.GreaterOrEqual(t, row["direct"].(float64), 0.0)
	}
}

func TestAcquisitionDeterministic(t *testing.T) {
	app := newAcquisitionApp(t)
	_, first := getJSON(t, app, "/api/v1/acquisition/funnel?"+weekQuery)
	_, second := getJSON(t, app, "/api/v1/acquisition/funnel?"+weekQuery)

	assert.Equal(t,
		first["data"].(map[string]interface{})["data"],
		second["data"].(map[string]interface{})["data"])
}
