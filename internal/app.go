// Package internal contains core application functionality
package internal

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"trafficlens/internal/analytics"
	"trafficlens/internal/config"
	"trafficlens/internal/http"
	"trafficlens/web"
)

// Application wraps the fiber server that exposes the dashboard and report API.
type Application struct {
	Server *fiber.App
	Logger *slog.Logger

	cfg *config.Config
}

// NewApp creates the application around a computed report.
func NewApp(cfg *config.Config, logger *slog.Logger, report analytics.Report) *Application {
	engine := html.NewFileSystem(nethttp.FS(web.Templates()), ".html")

	server := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 engine,
		DisableStartupMessage: true,
	})
	server.Use(recover.New())

	MountAppRoutes(server, http.NewHandlers(logger, report))

	return &Application{
		Server: server,
		Logger: logger,
		cfg:    cfg,
	}
}

// Start listens on the configured port. It blocks until the server stops.
func (a *Application) Start() error {
	a.Logger.Info("starting dashboard server", slog.String("port", a.cfg.GetPort()))
	return a.Server.Listen(":" + a.cfg.GetPort())
}

// Shutdown gracefully stops the server, honoring the context deadline.
func (a *Application) Shutdown(ctx context.Context) error {
	a.Logger.Info("shutting down dashboard server")
	return a.Server.ShutdownWithContext(ctx)
}
