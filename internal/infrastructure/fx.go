// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/StGerman/polka-bot/internal/infrastructure/logger"
	"github.com/StGerman/polka-bot/internal/infrastructure/probe"
	"github.com/StGerman/polka-bot/internal/infrastructure/telegram"
)

// Module provides the infrastructure components shared by every
// entrypoint. The HTTP server and lambda modules are added per entrypoint
// in internal/app.
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	probe.Module,
)
