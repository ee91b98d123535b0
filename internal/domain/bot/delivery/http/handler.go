// Package http contains the HTTP delivery layer: update intake and health
package http

import (
	"encoding/json"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/StGerman/polka-bot/internal/domain/bot/deps"
	boterrors "github.com/StGerman/polka-bot/internal/domain/bot/errors"
	"github.com/StGerman/polka-bot/pkg/httputil"
)

// healthStatus is the literal health-check body expected by deploy probes
const healthStatus = "Polka Bot is running!"

// Handler handles webhook and health HTTP requests
type Handler struct {
	queue  deps.UpdateQueue
	logger zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(queue deps.UpdateQueue, logger zerolog.Logger) *Handler {
	return &Handler{
		queue:  queue,
		logger: logger,
	}
}

// HandleWebhook receives Telegram updates as JSON, validates the envelope
// shape and enqueues them for asynchronous processing. Every outcome is
// reported with status 200 so Telegram does not retry delivery forever.
func (h *Handler) HandleWebhook(ctx *fasthttp.RequestCtx) {
	var upd models.Update
	if err := json.Unmarshal(ctx.PostBody(), &upd); err != nil {
		h.logger.Error().Err(err).Msg("Error in /webhook endpoint")
		webhookUpdates.WithLabelValues(resultMalformed).Inc()
		httputil.WriteError(ctx, err.Error())
		return
	}

	if upd.Message == nil && upd.CallbackQuery == nil {
		h.logger.Warn().Int64("update_id", upd.ID).Msg("Update has no message or callback_query")
		webhookUpdates.WithLabelValues(resultInvalid).Inc()
		httputil.WriteError(ctx, boterrors.ErrMalformedUpdate.Error())
		return
	}

	if err := h.queue.Enqueue(&upd); err != nil {
		h.logger.Error().Err(err).Int64("update_id", upd.ID).Msg("Failed to enqueue update")
		webhookUpdates.WithLabelValues(resultRejected).Inc()
		httputil.WriteError(ctx, err.Error())
		return
	}

	h.logger.Debug().Int64("update_id", upd.ID).Msg("Update enqueued")
	webhookUpdates.WithLabelValues(resultOK).Inc()
	httputil.WriteOK(ctx)
}

// HandleHealth handles the health check request. No side effects.
func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	httputil.WriteStatus(ctx, healthStatus)
}
