// Package server assembles the HTTP application and runs it until the process
// receives SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"credvault/docs"
	"credvault/internal/config"
	handlers "credvault/internal/http/handler"
	"credvault/internal/http/middleware"
	"credvault/internal/service"
	"credvault/internal/storage"
)

// ShutdownTimeout bounds how long in-flight requests may run after a stop signal.
const ShutdownTimeout = 10 * time.Second

// App owns the Fiber application and the store handle it serves from.
type App struct {
	cfg     *config.AppConfig
	log     *zap.Logger
	fiber   *fiber.App
	backend *backend
}

// New opens the configured store and object storage and builds the HTTP app.
func New(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*App, error) {
	b, err := openBackend(ctx, cfg.Store, log)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	log.Info("store_ready", zap.String("driver", cfg.Store.Driver), zap.String("database", cfg.Store.Name))

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Info("object_storage_disabled", zap.String("reason", "MINIO_ENDPOINT not set"))
	case err != nil:
		_ = b.close(context.Background())
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	default:
		b.services.ApplicationFiles = service.NewApplicationFileService(objStore, b.jobHunt)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := NewFiberApp(log, reg, b.pinger, b.services)
	if err != nil {
		_ = b.close(context.Background())
		return nil, err
	}
	return &App{cfg: cfg, log: log, fiber: app, backend: b}, nil
}

// NewFiberApp wires middleware, resource routes, metrics and Swagger UI.
func NewFiberApp(log *zap.Logger, reg *prometheus.Registry, db handlers.Pinger, svcs handlers.Services) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, db, svcs, handlers.NewValidator())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}

// Run serves until ctx is cancelled or a stop signal arrives, then drains
// requests and closes the store.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server_starting", zap.String("addr", addr), zap.String("app_host", a.cfg.AppHost))
		errCh <- a.fiber.Listen(addr)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
		if serveErr != nil {
			serveErr = fmt.Errorf("failed to start server: %w", serveErr)
		}
	case <-ctx.Done():
		a.log.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := a.fiber.ShutdownWithContext(shutdownCtx); err != nil {
			a.log.Error("server_shutdown_failed", zap.Error(err))
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := a.backend.close(closeCtx); err != nil {
		a.log.Error("store_close_failed", zap.Error(err))
	}
	return serveErr
}
