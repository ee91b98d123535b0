// Package telegram contains Telegram delivery layer
package telegram

import (
	"context"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/StGerman/polka-bot/internal/domain/bot/consts"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all handlers on the bot. Called exactly once
// during application construction, never lazily in a request path.
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CommandStart.Path(), tgbot.MatchTypeExact, r.handlers.HandleStart)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CommandHelp.Path(), tgbot.MatchTypeExact, r.handlers.HandleHelp)

	bot.RegisterHandlerMatchFunc(matchFreeText, r.handlers.HandleSubmission)
	bot.RegisterHandlerMatchFunc(matchCallbackQuery, r.handlers.HandleCallback)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}

// RegisterCommandMenu publishes the command menu shown by Telegram
// clients. Failures are logged, never fatal: the bot works without a menu.
func (r *Router) RegisterCommandMenu(ctx context.Context, bot *tgbot.Bot) {
	if _, err := bot.SetMyCommands(ctx, &tgbot.SetMyCommandsParams{
		Commands: commandMenu(),
	}); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to register command menu")
		return
	}

	r.logger.Info().Msg("Command menu registered")
}

// commandMenu builds the menu entries. Telegram expects bare command
// names here, without the leading slash.
func commandMenu() []models.BotCommand {
	menu := make([]models.BotCommand, 0, len(consts.AllCommands))
	for _, cmd := range consts.AllCommands {
		menu = append(menu, models.BotCommand{
			Command:     cmd.Name,
			Description: cmd.Description,
		})
	}
	return menu
}

// matchFreeText matches plain text messages. Command-shaped texts are
// excluded, so unknown commands fall through unanswered.
func matchFreeText(update *models.Update) bool {
	return update.Message != nil &&
		update.Message.Text != "" &&
		!strings.HasPrefix(update.Message.Text, "/")
}

func matchCallbackQuery(update *models.Update) bool {
	return update.CallbackQuery != nil
}
