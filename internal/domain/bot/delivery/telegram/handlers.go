// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/StGerman/polka-bot/internal/domain/bot/dto"
	boterrors "github.com/StGerman/polka-bot/internal/domain/bot/errors"
	"github.com/StGerman/polka-bot/internal/domain/bot/usecase/buissines"
)

// RequestTimeout bounds a single outbound Telegram API call
const RequestTimeout = 30 * time.Second

// Handlers contains Telegram command and message handlers.
// Implements deps.TelegramSender interface.
type Handlers struct {
	uc     *buissines.UseCase
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *buissines.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// SendMessage implements deps.TelegramSender for private chats
func (h *Handlers) SendMessage(ctx context.Context, chatID int64, text string) error {
	return h.send(ctx, chatID, text)
}

// SendChannelMessage implements deps.TelegramSender for channels and
// string-addressed chats
func (h *Handlers) SendChannelMessage(ctx context.Context, channelID string, text string) error {
	return h.send(ctx, channelID, text)
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID, username := senderIdentity(update.Message)

	h.logCommand(userID, "/start", "processing")

	resp, err := h.uc.HandleStart(ctx, &dto.StartCommandRequest{
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		h.logError(userID, "/start", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/start", "success")
}

// HandleHelp handles /help command
func (h *Handlers) HandleHelp(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID, _ := senderIdentity(update.Message)

	h.logCommand(userID, "/help", "processing")

	resp, err := h.uc.HandleHelp(ctx)
	if err != nil {
		h.logError(userID, "/help", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/help", "success")
}

// HandleSubmission handles non-command text messages: the URL validation
// pipeline runs in the use case, the reply it produces is sent here
func (h *Handlers) HandleSubmission(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	userID, _ := senderIdentity(update.Message)

	resp, err := h.uc.HandleSubmission(ctx, &dto.SubmissionRequest{
		ChatID: chatID,
		UserID: userID,
		Text:   update.Message.Text,
	})
	if err != nil {
		h.logError(userID, "submission", err)
		return
	}

	h.logger.Info().
		Int64("user_id", userID).
		Str("outcome", string(resp.Outcome)).
		Msg("Submission processed")

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleCallback answers callback queries so the client stops showing a
// progress indicator. No inline keyboards are emitted yet, so there is
// nothing further to route.
func (h *Handlers) HandleCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	q := update.CallbackQuery
	if q == nil {
		return
	}

	h.logger.Info().
		Int64("user_id", q.From.ID).
		Str("data", q.Data).
		Msg("Callback query received")

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if _, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: q.ID,
	}); err != nil {
		h.logger.Warn().Err(err).Str("callback_id", q.ID).Msg("Failed to answer callback query")
	}
}

func (h *Handlers) send(ctx context.Context, chatID any, text string) error {
	if text == "" {
		return boterrors.ErrEmptyMessage
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error().Interface("chat_id", chatID).Err(err).Msg("Failed to send Telegram message")
		return fmt.Errorf("%w: %v", boterrors.ErrTelegramAPI, err)
	}

	return nil
}

func (h *Handlers) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send Telegram response")
	}
}

func (h *Handlers) logCommand(userID int64, command, status string) {
	h.logger.Info().
		Int64("user_id", userID).
		Str("command", command).
		Str("status", status).
		Msg("Command handled")
}

func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().
		Int64("user_id", userID).
		Str("command", command).
		Err(err).
		Msg("Command failed")
}

// senderIdentity extracts the sender of a message; From is nil for
// channel posts
func senderIdentity(msg *models.Message) (int64, string) {
	if msg.From == nil {
		return 0, ""
	}
	return msg.From.ID, msg.From.Username
}
