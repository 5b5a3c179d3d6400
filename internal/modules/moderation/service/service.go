package service

import (
	"context"
	"log/slog"

	"github.com/IT-Union-DAO/tg-admin/internal/modules/moderation/domain"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/metrics"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

// BotAPI is the outbound surface the dispatcher needs from the Telegram
// client. Failures are collapsed to false by the implementation.
type BotAPI interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) bool
}

// Service dispatches inbound webhook updates to moderation actions
type Service struct {
	bot BotAPI
}

// New creates a new moderation service
func New(bot BotAPI) *Service {
	return &Service{
		bot: bot,
	}
}

// Process classifies an update and performs at most one outbound side
// effect: deleting the message that carried a membership change. Updates
// without membership changes are ignored and reported as processed.
func (s *Service) Process(ctx context.Context, update *models.Update) bool {
	event := domain.Classify(update)

	switch event.Kind {
	case domain.EventKindMemberJoin:
		slog.Info("New member message detected",
			"chat_id", event.ChatID,
			"message_id", event.MessageID,
			"members", len(event.Joined))
		s.logJoinedMembers(event.Joined)
		return s.deleteMessage(ctx, event)

	case domain.EventKindChannelMemberJoin:
		slog.Info("New member message detected in channel",
			"chat_id", event.ChatID,
			"message_id", event.MessageID,
			"members", len(event.Joined))
		s.logJoinedMembers(event.Joined)
		return s.deleteMessage(ctx, event)

	case domain.EventKindMemberLeave:
		slog.Info("Left member message detected",
			"chat_id", event.ChatID,
			"message_id", event.MessageID,
			"member_id", event.Left.ID)
		return s.deleteMessage(ctx, event)

	default:
		slog.Debug("Ignoring update", "update_id", update.ID)
		metrics.WebhookUpdate("ignored")
		return true
	}
}

func (s *Service) deleteMessage(ctx context.Context, event domain.MembershipEvent) bool {
	ok := s.bot.DeleteMessage(ctx, event.ChatID, event.MessageID)
	if ok {
		metrics.WebhookUpdate("deleted")
	} else {
		metrics.WebhookUpdate("failed")
	}
	return ok
}

func (s *Service) logJoinedMembers(members []models.User) {
	ids := lo.Map(members, func(m models.User, _ int) int64 { return m.ID })
	slog.Debug("Joined members", "member_ids", ids)
}
