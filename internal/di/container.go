package di

import (
	"context"
	"log/slog"

	moderationService "github.com/IT-Union-DAO/tg-admin/internal/modules/moderation/service"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/config"
	httpServer "github.com/IT-Union-DAO/tg-admin/internal/transport/http"
	"github.com/IT-Union-DAO/tg-admin/internal/transport/telegram"
	"github.com/go-telegram/bot"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Service names for dependency injection
const (
	ServiceConfig            = "config"
	ServiceBot               = "bot"
	ServiceTelegramClient    = "telegram-client"
	ServiceModerationService = "moderation-service"
	ServiceHTTPServer        = "http-server"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Bot. Construction performs no network I/O; connectivity is
	// checked by the health probe and the startup webhook registration.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithSkipGetMe(),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		return b, nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		b := do.MustInvoke[*bot.Bot](i)
		client := telegram.NewClient(cfg, b)
		client.SetLogger(slog.Default())
		return client, nil
	})

	// Register Moderation Service
	do.Provide(injector, func(i do.Injector) (*moderationService.Service, error) {
		client := do.MustInvoke[*telegram.Client](i)
		return moderationService.New(client), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dispatcher := do.MustInvoke[*moderationService.Service](i)
		client := do.MustInvoke[*telegram.Client](i)
		server := httpServer.New(cfg, dispatcher, client)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
