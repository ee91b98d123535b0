// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/StGerman/polka-bot/config"
)

// webhookCallTimeout bounds the set/delete webhook calls during lifecycle
// transitions so a slow Telegram API cannot hang startup or shutdown
const webhookCallTimeout = 10 * time.Second

// Module provides Telegram bot for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
	fx.Invoke(registerLifecycle),
)

// provideBot creates Telegram bot from config
func provideBot(cfg *config.TelegramConfig, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg.BotToken, logger)
}

// registerLifecycle starts the update consumer and manages the webhook
// registration. Registration failures are logged, never fatal: the process
// still serves HTTP and an external redeploy fixes the webhook.
func registerLifecycle(lc fx.Lifecycle, bot *Bot, cfg *config.TelegramConfig, logger zerolog.Logger) {
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Long-lived context for the consumer goroutine
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			go bot.Run(ctx)

			regCtx, regCancel := context.WithTimeout(ctx, webhookCallTimeout)
			defer regCancel()

			if err := bot.RegisterWebhook(regCtx, cfg.WebhookURL); err != nil {
				logger.Error().Err(err).Str("url", cfg.WebhookURL).Msg("Failed to set webhook at startup")
			}

			logger.Info().Msg("Polka Bot is up and running!")
			return nil
		},
		OnStop: func(_ context.Context) error {
			delCtx, delCancel := context.WithTimeout(context.Background(), webhookCallTimeout)
			defer delCancel()

			if err := bot.DeregisterWebhook(delCtx); err != nil {
				logger.Error().Err(err).Msg("Failed to delete webhook at shutdown")
			}

			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}
