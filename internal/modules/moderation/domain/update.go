package domain

import "github.com/go-telegram/bot/models"

// MembershipEvent is the classification result for an inbound update.
// An update whose Kind is not EventKindNone triggers exactly one delete
// against its (ChatID, MessageID) pair.
type MembershipEvent struct {
	Kind      EventKind
	ChatID    int64
	MessageID int
	Joined    []models.User
	Left      *models.User
}

// Classify inspects an update and returns the membership change it carries,
// if any. First match wins: joined members on a message, then joined members
// on a channel post, then a left member on a message.
func Classify(update *models.Update) MembershipEvent {
	switch {
	case update.Message != nil && len(update.Message.NewChatMembers) > 0:
		return MembershipEvent{
			Kind:      EventKindMemberJoin,
			ChatID:    update.Message.Chat.ID,
			MessageID: update.Message.ID,
			Joined:    update.Message.NewChatMembers,
		}
	case update.ChannelPost != nil && len(update.ChannelPost.NewChatMembers) > 0:
		return MembershipEvent{
			Kind:      EventKindChannelMemberJoin,
			ChatID:    update.ChannelPost.Chat.ID,
			MessageID: update.ChannelPost.ID,
			Joined:    update.ChannelPost.NewChatMembers,
		}
	case update.Message != nil && update.Message.LeftChatMember != nil:
		return MembershipEvent{
			Kind:      EventKindMemberLeave,
			ChatID:    update.Message.Chat.ID,
			MessageID: update.Message.ID,
			Left:      update.Message.LeftChatMember,
		}
	default:
		return MembershipEvent{Kind: EventKindNone}
	}
}
