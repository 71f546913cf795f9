package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"credvault/internal/config"
	"credvault/internal/logger"
	"credvault/internal/otel"
	"credvault/internal/server"
)

// @title Credential Vault API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl := logger.New(cfg.LogLevel)
	if err := run(cfg, zl); err != nil {
		zl.Error("server_exit", zap.Error(err))
		_ = zl.Sync()
		log.Fatal(err)
	}
	_ = zl.Sync()
}

func run(cfg *config.AppConfig, zl *zap.Logger) error {
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, zl)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zl.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	app, err := server.New(ctx, cfg, zl)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
