package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
	"github.com/ardhian127/bike-rental-analyst/internal/repository/memory"
	"github.com/ardhian127/bike-rental-analyst/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := memory.NewDemoRepository()
	tables, err := service.LoadTables(context.Background(), repo)
	require.NoError(t, err)

	metrics := service.NewPipelineMetrics()
	dashboardSvc := service.NewDashboardService(tables, repo, metrics, zerolog.Nop())
	chartSvc := service.NewChartService("800px", "400px")

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, dashboardSvc, chartSvc, metrics.Registry())
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

type dashboardResponse struct {
	Success bool                 `json:"success"`
	Data    domain.DashboardData `json:"data"`
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/health")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestGetDashboardDefaultRange(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/dashboard")
	require.Equal(t, fiber.StatusOK, code)

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2012-03-21", resp.Data.Range.Start.Format(domain.DateLayout))
	assert.Equal(t, "2012-12-21", resp.Data.Range.End.Format(domain.DateLayout))
	assert.Equal(t, 4, resp.Data.DayCount)
	assert.Equal(t, 96, resp.Data.HourCount)
	assert.Len(t, resp.Data.Hourly, 24)
	assert.Len(t, resp.Data.Seasonal, 4)
	assert.Equal(t, domain.SeasonFall, resp.Data.Seasonal[0].Season)
	require.NotNil(t, resp.Data.PeakTrough)
	assert.Equal(t, 17, resp.Data.PeakTrough.PeakHour)
	assert.Equal(t, 4, resp.Data.PeakTrough.LowHour)
}

func TestGetDashboardCustomRange(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/dashboard?start=2012-06-01&end=2012-06-30")
	require.Equal(t, fiber.StatusOK, code)

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 1, resp.Data.DayCount)
	require.Len(t, resp.Data.Seasonal, 1)
	assert.Equal(t, domain.SeasonSummer, resp.Data.Seasonal[0].Season)
	assert.InDelta(t, 100.0, resp.Data.Seasonal[0].Percent, 1e-9)
}

func TestGetDashboardEmptyRange(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/dashboard?start=2013-01-01&end=2013-02-01")
	require.Equal(t, fiber.StatusOK, code)

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Empty(t, resp.Data.Hourly)
	assert.Empty(t, resp.Data.Seasonal)
	assert.Nil(t, resp.Data.PeakTrough)
}

func TestGetDashboardInvalidDate(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/dashboard?start=21-06-2012")

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, `"error":true`)
	assert.Contains(t, body, "Invalid start date")
}

func TestGetHourly(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/hourly?end=2012-03-21")
	require.Equal(t, fiber.StatusOK, code)

	var resp struct {
		Data       []domain.HourlyTotal `json:"data"`
		PeakTrough *domain.PeakTrough   `json:"peak_trough"`
		Count      int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 24, resp.Count)
	assert.Equal(t, 17, resp.Data[0].Hour)
	assert.Equal(t, int64(300), resp.Data[0].Total)
	require.NotNil(t, resp.PeakTrough)
	assert.Equal(t, int64(2), resp.PeakTrough.LowValue)
}

func TestGetSeasonal(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/v1/seasonal")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"count":4`)
	assert.Contains(t, body, `"season":"fall"`)
}

func TestDashboardPage(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/?start=2012-03-21&end=2012-12-21")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `name="start" value="2012-03-21"`)
	assert.Contains(t, body, `min="2012-03-21"`)
	assert.Contains(t, body, "Peak: 17.00")
	assert.Contains(t, body, "Low: 04.00")
	assert.Contains(t, body, "/charts/season?start=2012-03-21")
	assert.NotContains(t, body, seasonExplanation)
	assert.NotContains(t, body, hourlyExplanation)
}

func TestDashboardPageExplanations(t *testing.T) {
	app := newTestApp(t)

	_, body := get(t, app, "/?explain=season")
	assert.Contains(t, body, seasonExplanation)
	assert.NotContains(t, body, hourlyExplanation)

	_, body = get(t, app, "/?explain=hourly")
	assert.Contains(t, body, hourlyExplanation)
	assert.NotContains(t, body, seasonExplanation)
}

func TestDashboardPageEmptyRange(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/?start=2013-01-01&end=2013-01-02")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "No rentals in the selected range.")
	assert.NotContains(t, body, "Peak:")
}

func TestChartEndpoints(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/charts/season")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "Bike rental distribution by season")

	code, body = get(t, app, "/charts/hourly?start=2012-09-22&end=2012-09-22")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "Peak: 750")
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	get(t, app, "/api/v1/dashboard")

	code, body := get(t, app, "/metrics")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `dashboard_pipeline_runs_total{outcome="ok"} 1`)
}
