// Package bot contains the bot domain module
package bot

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	httpDelivery "github.com/StGerman/polka-bot/internal/domain/bot/delivery/http"
	telegramDelivery "github.com/StGerman/polka-bot/internal/domain/bot/delivery/telegram"
	"github.com/StGerman/polka-bot/internal/domain/bot/deps"
	"github.com/StGerman/polka-bot/internal/domain/bot/usecase/buissines"
	"github.com/StGerman/polka-bot/internal/infrastructure/probe"
	"github.com/StGerman/polka-bot/internal/infrastructure/telegram"
)

// Module provides bot domain components for fx dependency injection
var Module = fx.Module("bot",
	// Infrastructure bindings to domain interfaces
	fx.Provide(provideProber),
	fx.Provide(provideUpdateQueue),

	// UseCase
	fx.Provide(buissines.NewUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Delivery - HTTP (webhook intake + health)
	fx.Provide(httpDelivery.NewHandler),
	fx.Provide(httpDelivery.NewRouter),

	// Wire cyclic dependency and register routes
	fx.Invoke(wireAndRegister),
)

// provideProber binds the HEAD prober to the domain interface
func provideProber(p *probe.Prober) deps.ReachabilityProber {
	return p
}

// provideUpdateQueue binds the bot's intake queue to the domain interface
func provideUpdateQueue(bot *telegram.Bot) deps.UpdateQueue {
	return bot
}

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *buissines.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger)
}

// wireAndRegister resolves the cyclic dependency and registers every
// dispatch table exactly once during application construction
func wireAndRegister(
	lc fx.Lifecycle,
	uc *buissines.UseCase,
	handlers *telegramDelivery.Handlers,
	tgRouter *telegramDelivery.Router,
	bot *telegram.Bot,
	httpRouter *httpDelivery.Router,
	rt *router.Router,
) {
	// Handlers implements deps.TelegramSender interface.
	// This resolves the cyclic dependency: UseCase -> TelegramSender <- Handlers -> UseCase
	uc.SetSender(handlers)

	tgRouter.RegisterRoutes(bot.Raw())
	httpRouter.RegisterRoutes(rt)

	// Menu registration is a network call, so it runs on start, not here
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			tgRouter.RegisterCommandMenu(ctx, bot.Raw())
			return nil
		},
	})
}
