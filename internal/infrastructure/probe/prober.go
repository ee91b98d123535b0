// Package probe contains the URL reachability prober
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/StGerman/polka-bot/internal/domain/bot/entities"
)

// probeTimeout bounds a single reachability probe
const probeTimeout = 5 * time.Second

// Prober issues HEAD probes against candidate URLs. Redirects are followed
// (the client default); no response body is downloaded.
type Prober struct {
	client *http.Client
	logger zerolog.Logger
}

// NewProber creates a new Prober
func NewProber(logger zerolog.Logger) *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: probeTimeout,
		},
		logger: logger,
	}
}

// Probe classifies the reachability of rawURL. Transport failures are
// converted into a ProbeFailed result, never returned as an error.
func (p *Prober) Probe(ctx context.Context, rawURL string) entities.ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		p.logger.Debug().Err(err).Str("url", rawURL).Msg("Failed to build probe request")
		return entities.ProbeResult{Outcome: entities.ProbeFailed, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug().Err(err).Str("url", rawURL).Msg("Probe did not complete")
		return entities.ProbeResult{Outcome: entities.ProbeFailed, Err: err}
	}
	defer resp.Body.Close()

	p.logger.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Msg("Probe completed")

	if resp.StatusCode < http.StatusBadRequest {
		return entities.ProbeResult{Outcome: entities.ProbeReachable, StatusCode: resp.StatusCode}
	}

	return entities.ProbeResult{Outcome: entities.ProbeUnreachable, StatusCode: resp.StatusCode}
}
