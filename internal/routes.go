package internal

import (
	"github.com/gofiber/fiber/v2"

	"trafficlens/internal/http"
)

// MountAppRoutes mounts all application routes on the fiber app.
func MountAppRoutes(app *fiber.App, h *http.Handlers) {
	app.Get("/", h.DashboardIndexAction)
	app.Get("/health", h.HealthIndexAction)

	api := app.Group("/api/v1")
	api.Get("/report", h.ReportIndexAction)
}
