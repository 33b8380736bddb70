package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
	"github.com/ardhian127/bike-rental-analyst/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc *service.DashboardService
	chartSvc     *service.ChartService
}

// NewHandler creates a new handler
func NewHandler(dashboardSvc *service.DashboardService, chartSvc *service.ChartService) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		chartSvc:     chartSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status, code := "ok", fiber.StatusOK
	source := "ok"
	if err := h.dashboardSvc.Health(c.Context()); err != nil {
		status, code = "degraded", fiber.StatusServiceUnavailable
		source = err.Error()
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"source":  source,
		"service": "bike-rental-dashboard",
		"version": "1.0.0",
	})
}

// GetDashboard returns every aggregate for the requested range
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetHourly returns hourly totals ranked by total, with the peak and low hour
func (h *Handler) GetHourly(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        data.Hourly,
		"peak_trough": data.PeakTrough,
		"count":       len(data.Hourly),
	})
}

// GetSeasonal returns seasonal totals ranked by total
func (h *Handler) GetSeasonal(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data.Seasonal,
		"count":   len(data.Seasonal),
	})
}

// SeasonChart renders the seasonal pie chart page
func (h *Handler) SeasonChart(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.chartSvc.RenderSeasonPie(&buf, data.Seasonal); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render season chart")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// HourlyChart renders the hourly line chart page
func (h *Handler) HourlyChart(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.chartSvc.RenderHourlyLine(&buf, data.Hourly, data.PeakTrough); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render hourly chart")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Dashboard renders the interactive dashboard page
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	data, err := h.build(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	view := newPageView(data, h.dashboardSvc.DefaultRange(), c.Query("explain"))
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render dashboard")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// build parses the requested range and runs the pipeline
func (h *Handler) build(c *fiber.Ctx) (domain.DashboardData, error) {
	r, err := parseRange(c, h.dashboardSvc.DefaultRange())
	if err != nil {
		return domain.DashboardData{}, err
	}

	data, err := h.dashboardSvc.Build(c.Context(), r)
	if err != nil {
		return domain.DashboardData{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to build dashboard data")
	}
	return data, nil
}

// parseRange reads start and end query dates, falling back to def for missing ones
func parseRange(c *fiber.Ctx, def domain.DateRange) (domain.DateRange, error) {
	r := def
	if raw := c.Query("start"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid start date %q, expected YYYY-MM-DD", raw))
		}
		r.Start = d
	}
	if raw := c.Query("end"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid end date %q, expected YYYY-MM-DD", raw))
		}
		r.End = d
	}
	return r, nil
}
