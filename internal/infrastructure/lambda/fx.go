// Package lambda adapts the HTTP surface to an API Gateway function runtime
package lambda

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides the serverless adapter for fx DI. It replaces the HTTP
// server module: the router is served from gateway events instead of a
// TCP listener.
var Module = fx.Module("lambda",
	fx.Provide(router.New),
	fx.Provide(provideAdapter),
	fx.Invoke(registerLifecycle),
)

// provideAdapter creates the adapter over the shared router
func provideAdapter(rt *router.Router, logger zerolog.Logger) *Adapter {
	return NewAdapter(rt, logger.With().Str("component", "lambda").Logger())
}

// registerLifecycle starts the lambda runtime loop
func registerLifecycle(lc fx.Lifecycle, adapter *Adapter, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info().Msg("Starting lambda runtime")

			// Start blocks serving invocations, so it runs on its own goroutine
			go awslambda.Start(adapter.Handle)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return nil
		},
	})
}
