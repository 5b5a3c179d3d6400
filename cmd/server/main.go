package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IT-Union-DAO/tg-admin/internal/di"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/config"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/metrics"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/version"
	httpServer "github.com/IT-Union-DAO/tg-admin/internal/transport/http"
	"github.com/IT-Union-DAO/tg-admin/internal/transport/telegram"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	metrics.MustRegister()
	metrics.SetBuildInfo(version.Version, version.Commit)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	cfg := do.MustInvoke[*config.Config](injector)
	client := do.MustInvoke[*telegram.Client](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	// Register webhook in the background; best effort, startup does not
	// block or fail on its outcome.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		slog.Info("Registering Telegram webhook", "url", cfg.WebhookURL())
		if client.RegisterWebhook(ctx) {
			slog.Info("Webhook registration completed successfully")
		} else {
			slog.Error("Webhook registration failed")
		}
	}()

	// Start webhook HTTP server
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Bot started", "port", cfg.HTTPPort, "version", version.Version)
	slog.Info("Press Ctrl+C to stop")

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	slog.Info("Shutting down...")
}
