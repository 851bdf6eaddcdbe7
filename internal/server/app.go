// Package server implements the serving process for the storefront UI:
// a static file server for the built single-page application with a health
// endpoint and client-side-routing fallback. It proxies no logic of its
// own; graceful shutdown is handled on SIGINT/SIGTERM.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shopeasy/storefront/internal/logging"
	"github.com/shopeasy/storefront/internal/server/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	echo   *echo.Echo
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", healthHandler)

	// Serve the built SPA; unknown paths fall back to the entry document
	// so client-side routing keeps working on reload.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  c.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))

	return &App{config: c, logger: logger, echo: e}, nil
}

// healthHandler reports liveness for the serving process.
func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "frontend",
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server on all interfaces and blocks until the
// context is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	addr := ":" + app.config.Port
	app.logger.Info(ctx, "frontend server running", "addr", addr, "static_dir", app.config.StaticDir)

	go func() {
		if err := app.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, "server stopped", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}
}
