package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ardhian127/bike-rental-analyst/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, dashboardSvc *service.DashboardService, chartSvc *service.ChartService, registry *prometheus.Registry) {
	handler := NewHandler(dashboardSvc, chartSvc)

	// Health check and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Dashboard page and its chart frames
	app.Get("/", handler.Dashboard)
	charts := app.Group("/charts")
	{
		charts.Get("/season", handler.SeasonChart)
		charts.Get("/hourly", handler.HourlyChart)
	}

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/dashboard", handler.GetDashboard)
		api.Get("/hourly", handler.GetHourly)
		api.Get("/seasonal", handler.GetSeasonal)
	}
}
