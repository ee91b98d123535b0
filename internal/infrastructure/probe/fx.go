// Package probe contains the URL reachability prober
package probe

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides the prober for fx dependency injection
var Module = fx.Module("probe",
	fx.Provide(provideProber),
)

// provideProber creates the HEAD prober
func provideProber(logger zerolog.Logger) *Prober {
	return NewProber(logger.With().Str("component", "prober").Logger())
}
