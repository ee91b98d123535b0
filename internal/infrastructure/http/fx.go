// Package http contains HTTP server infrastructure
package http

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/StGerman/polka-bot/config"
	"github.com/StGerman/polka-bot/internal/infrastructure/http/server"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(router.New),
	fx.Provide(NewServerFx),
	fx.Invoke(instantiate),
)

// instantiate forces server construction; nothing else in the graph
// depends on it directly
func instantiate(*server.Server) {}

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	rt *router.Router,
	logger zerolog.Logger,
) *server.Server {
	srv := server.NewServer(serviceCfg.Name, serviceCfg.Port, rt, logger)

	// Register Prometheus metrics endpoint
	srv.RegisterMetrics()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
