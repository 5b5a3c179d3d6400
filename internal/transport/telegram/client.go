package telegram

import (
	"context"
	"log/slog"

	"github.com/IT-Union-DAO/tg-admin/internal/shared/config"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/metrics"
	"github.com/go-telegram/bot"
	"github.com/samber/oops"
)

// BotInfo is the bot identity returned by the getMe connectivity probe
type BotInfo struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Client is a thin wrapper around the Bot API for the three remote
// operations this service performs. A single instance is shared across
// concurrent requests; the underlying bot is safe for concurrent use.
type Client struct {
	cfg    *config.Config
	bot    *bot.Bot
	logger *slog.Logger
}

// NewClient creates a new Telegram API client
func NewClient(cfg *config.Config, b *bot.Bot) *Client {
	return &Client{
		cfg:    cfg,
		bot:    b,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// RegisterWebhook registers https://{domain}/webhook as the update callback.
// Only message and channel_post updates are requested.
func (c *Client) RegisterWebhook(ctx context.Context) bool {
	webhookURL := c.cfg.WebhookURL()

	ok, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:            webhookURL,
		AllowedUpdates: []string{"message", "channel_post"},
	})
	if err != nil {
		c.logger.Error("Failed to register webhook", "url", webhookURL, "error", err)
		return false
	}

	return ok
}

// DeleteMessage deletes a single message. Transport faults and non-ok
// responses collapse to false; the detail stays in the logs.
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) bool {
	ok, err := c.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		c.logger.Error("Failed to delete message",
			"chat_id", chatID,
			"message_id", messageID,
			"error", err)
		metrics.DeleteCall(false)
		return false
	}

	metrics.DeleteCall(ok)
	return ok
}

// GetBotInfo probes Bot API connectivity and returns the bot identity.
func (c *Client) GetBotInfo(ctx context.Context) (*BotInfo, error) {
	me, err := c.bot.GetMe(ctx)
	if err != nil {
		c.logger.Error("Failed to get bot info", "error", err)
		return nil, oops.With("context", "getMe probe").Wrap(err)
	}

	return &BotInfo{
		ID:        me.ID,
		IsBot:     me.IsBot,
		FirstName: me.FirstName,
		Username:  me.Username,
	}, nil
}
