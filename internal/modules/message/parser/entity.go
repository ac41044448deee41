// Package parser extracts the publishable parts of a Telegram update.
// Every function here is pure: no network, no I/O, no shared state.
package parser

import (
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
)

// ExtractMessageEntity returns the effective message of an update: the
// channel post when present, otherwise the plain message.
func ExtractMessageEntity(update *domain.Update) *domain.Message {
	if update == nil {
		return nil
	}
	if update.ChannelPost != nil {
		return update.ChannelPost
	}
	return update.Message
}

// ExtractMessageText returns the text of the effective message. A text
// field that is present wins even when it is empty; only a missing text
// falls back to the caption.
func ExtractMessageText(update *domain.Update) (string, bool) {
	return MessageText(ExtractMessageEntity(update))
}

// MessageText applies the text-over-caption rule to a single message.
func MessageText(msg *domain.Message) (string, bool) {
	if msg == nil {
		return "", false
	}
	if msg.Text != nil {
		return *msg.Text, true
	}
	if msg.Caption != nil {
		return *msg.Caption, true
	}
	return "", false
}
