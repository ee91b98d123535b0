// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/StGerman/polka-bot/config"
	"github.com/StGerman/polka-bot/internal/domain"
	"github.com/StGerman/polka-bot/internal/infrastructure"
	infrahttp "github.com/StGerman/polka-bot/internal/infrastructure/http"
	"github.com/StGerman/polka-bot/internal/infrastructure/lambda"
)

// CreateApp creates the fx application serving the webhook over its own
// HTTP listener
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram bot, prober)
		infrastructure.Module,

		// HTTP listener
		infrahttp.Module,

		// Domain (bot business logic)
		domain.Module,
	)
}

// CreateLambdaApp creates the fx application serving the same routes from
// an API Gateway function runtime instead of a TCP listener
func CreateLambdaApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		infrastructure.Module,

		// Serverless adapter instead of the HTTP listener
		lambda.Module,

		domain.Module,
	)
}
