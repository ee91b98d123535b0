// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	pkgerrors "github.com/StGerman/polka-bot/pkg/errors"
)

// updateQueueSize bounds the intake queue. A full queue is reported to the
// webhook caller instead of blocking an HTTP worker; Telegram redelivers
// undelivered updates on its own schedule.
const updateQueueSize = 128

// ErrQueueFull is returned by Enqueue when the update queue is saturated
var ErrQueueFull = pkgerrors.NewUnavailableError("update queue is full")

// Bot wraps the Telegram bot for infrastructure layer. It owns the update
// queue: the webhook endpoint produces into it, a single consumer goroutine
// drains it in FIFO order and dispatches through the registered handlers.
type Bot struct {
	bot     *tgbot.Bot
	updates chan *models.Update
	logger  zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper
func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	opts := []tgbot.Option{
		// Webhook mode, no need for the getMe round-trip at construction
		tgbot.WithSkipGetMe(),
		tgbot.WithDefaultHandler(dropHandler),
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Bot{
		bot:     bot,
		updates: make(chan *models.Update, updateQueueSize),
		logger:  logger,
	}, nil
}

// Raw returns the underlying telegram bot for handler registration
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}

// Enqueue puts an update on the queue for asynchronous processing.
// Implements deps.UpdateQueue.
func (b *Bot) Enqueue(upd *models.Update) error {
	select {
	case b.updates <- upd:
		return nil
	default:
		b.logger.Warn().Int64("update_id", upd.ID).Msg("Update queue is full, dropping update")
		return ErrQueueFull
	}
}

// Run drains the update queue until ctx is cancelled (blocking call)
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info().Msg("Starting Telegram update consumer...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("Telegram update consumer stopped")
			return
		case upd := <-b.updates:
			b.bot.ProcessUpdate(ctx, upd)
		}
	}
}

// RegisterWebhook registers the public webhook URL with Telegram
func (b *Bot) RegisterWebhook(ctx context.Context, url string) error {
	_, err := b.bot.SetWebhook(ctx, &tgbot.SetWebhookParams{URL: url})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	b.logger.Info().Str("url", url).Msg("Telegram webhook registered")
	return nil
}

// DeregisterWebhook removes the webhook registration from Telegram
func (b *Bot) DeregisterWebhook(ctx context.Context) error {
	_, err := b.bot.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	b.logger.Info().Msg("Telegram webhook removed")
	return nil
}

// dropHandler receives updates no registered handler matched
// (edited messages, channel posts and other unhandled shapes)
func dropHandler(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
}
