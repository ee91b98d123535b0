package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers bot-related HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new HTTP router for the bot domain
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers bot routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.POST("/webhook", r.handler.HandleWebhook)
	rt.GET("/", r.handler.HandleHealth)
	rt.GET("/alive", r.handler.HandleHealth)

	r.logger.Info().Msg("HTTP routes registered")
}
