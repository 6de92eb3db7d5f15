package audiencehdl

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

func newAudienceApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	v1 := app.Group("/api/v1")
	handler, err := NewAudienceHandler()
	require.NoError(t, err)
	noop := func(c fiber.Ctx) error { return c.Next() }
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/followers", []fiber.Handler{noop}, handler.HandleFollowers)
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/retention", []fiber.Handler{noop}, handler.HandleRetention)
	apirouter.RegisterRouteWithMiddleware(v1, "/audience", "GET", "/realtime", []fiber.Handler{noop}, handler.HandleRealtime)
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

func TestHandleFollowers(t *testing.T) {
	app := newAudienceApp(t)
	status, body := getJSON(t, app, "/api/v1/audience/followers?"+weekQuery)

	require.Equal(t, 200, status)
	assert.Equal(t, "success", body["status"])

	points := body["data"].(map[string]interface{})["data"].([]interface{})
	assert.Len(t, points, 7)
	for _, raw := range points {
		point := raw.(map[string]interface{})
		assert.NotEmpty(t, point["date"])
		assert.GreaterOrEqual(t, point["followers_total"].(float64), 0.0)
		assert.Greater(t, point["followers_new"].(float64), 0.0)
		assert.GreaterOrEqual(t, point["followers_new"].(float64), point["followers_churned"].(float64))
	}
}

func TestHandleRetention(t *testing.T) {
	app := newAudienceApp(t)
	status, body := getJSON(t, app, "/api/v1/audience/retention?"+weekQuery)

	require.Equal(t, 200, status)
	cohorts := body["data"].(map[string]interface{})["data"].([]interface{})
	require.Len(t, cohorts, 3)

	wantCohorts := []string{"7d", "30d", "90d"}
	for i, raw := range cohorts {
		cohort := raw.(map[string]interface{})
		assert.Equal(t, wantCohorts[i], cohort["cohort_start"])
		retention := cohort["retention_rate"].(float64)
		churn := cohort["churn_rate"].(float64)
		assert.Greater(t, retention, 0.0)
		assert.Less(t, retention, 1.0)
		assert.InDelta(t, 1.0, retention+churn, 0.001)
	}
}

func TestHandleRealtime(t *testing.T) {
	app := newAudienceApp(t)
	status, body := getJSON(t, app, "/api/v1/audience/realtime?"+weekQuery)

	require.Equal(t, 200, status)
	realtime := body["data"].(map[string]interface{})["data"].(map[string]interface{})
	assert.GreaterOrEqual(t, realtime["active_users"].(float64), 0.0)
	assert.NotEmpty(t, realtime["polled_at"])
}

func TestFollowersDeterministic(t *testing.T) {
	app := newAudienceApp(t)
	_, first := getJSON(t, app, "/api/v1/audience/followers?"+weekQuery)
	_, second := getJSON(t, app, "/api/v1/audience/followers?"+weekQuery)

	assert.Equal(t,
		first["data"].(map[string]interface{})["data"],
		second["data"].(map[string]interface{})["data"])
}
