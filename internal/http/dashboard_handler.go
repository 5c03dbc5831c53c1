// Package http contains the fiber handlers serving the dashboard page and the
// report API.
package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"trafficlens/internal/analytics"
	"trafficlens/internal/dashboard"
)

// Handlers serves a single computed report. The underlying dataset is
// immutable, so the report is computed once and shared across requests.
type Handlers struct {
	logger *slog.Logger
	report analytics.Report
}

// NewHandlers creates the handler set for a report.
func NewHandlers(logger *slog.Logger, report analytics.Report) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{logger: logger, report: report}
}

// DashboardIndexAction renders the HTML dashboard.
func (h *Handlers) DashboardIndexAction(c *fiber.Ctx) error {
	view, err := dashboard.NewView(h.report)
	if err != nil {
		h.logger.Error("Error building dashboard view", slog.Any("error", err))
		return fiber.ErrInternalServerError
	}
	return c.Render("dashboard", view)
}

// ReportIndexAction returns the full report document as JSON.
func (h *Handlers) ReportIndexAction(c *fiber.Ctx) error {
	return c.JSON(h.report)
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthIndexAction handles the health check endpoint
func (h *Handlers) HealthIndexAction(c *fiber.Ctx) error {
	return c.JSON(HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}
