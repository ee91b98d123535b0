// Package deps contains interface definitions for the bot domain dependencies
package deps

import (
	"context"

	"github.com/go-telegram/bot/models"

	"github.com/StGerman/polka-bot/internal/domain/bot/entities"
)

// TelegramSender defines interface for sending messages via Telegram.
// This interface is used to break the cyclic dependency between UseCase
// and the Telegram delivery handlers.
type TelegramSender interface {
	// SendMessage sends a text message to a private chat
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendChannelMessage sends a text message to a channel or any chat
	// addressed by string identifier (e.g. "@channel" or a numeric id)
	SendChannelMessage(ctx context.Context, channelID string, text string) error
}

// ReachabilityProber checks whether a syntactically valid URL answers a
// lightweight existence probe
type ReachabilityProber interface {
	Probe(ctx context.Context, rawURL string) entities.ProbeResult
}

// UpdateQueue accepts inbound updates for asynchronous FIFO processing.
// The webhook endpoint is the producer, the bot's consumer loop is the
// sole consumer.
type UpdateQueue interface {
	Enqueue(upd *models.Update) error
}
