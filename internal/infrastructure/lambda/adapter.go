// Package lambda adapts the HTTP surface to an API Gateway function runtime
package lambda

import (
	"context"
	"encoding/base64"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Adapter translates API Gateway proxy events to fasthttp requests and
// back, so the same router serves both deployments. No behavior is added.
type Adapter struct {
	handler fasthttp.RequestHandler
	logger  zerolog.Logger
}

// NewAdapter creates an adapter over the shared router
func NewAdapter(rt *router.Router, logger zerolog.Logger) *Adapter {
	return &Adapter{
		handler: rt.Handler,
		logger:  logger,
	}
}

// Handle processes one API Gateway proxy event
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req fasthttp.Request

	req.Header.SetMethod(event.HTTPMethod)
	req.SetRequestURI(requestURI(event))

	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			a.logger.Error().Err(err).Msg("Failed to decode request body")
			return events.APIGatewayProxyResponse{StatusCode: fasthttp.StatusBadRequest}, nil
		}
		body = decoded
	}
	req.SetBody(body)

	var reqCtx fasthttp.RequestCtx
	reqCtx.Init(&req, nil, nil)

	a.handler(&reqCtx)

	headers := make(map[string]string)
	reqCtx.Response.Header.VisitAll(func(key, value []byte) {
		headers[string(key)] = string(value)
	})

	return events.APIGatewayProxyResponse{
		StatusCode: reqCtx.Response.StatusCode(),
		Headers:    headers,
		Body:       string(reqCtx.Response.Body()),
	}, nil
}

// requestURI rebuilds path?query from the event fields
func requestURI(event events.APIGatewayProxyRequest) string {
	if len(event.QueryStringParameters) == 0 {
		return event.Path
	}

	query := url.Values{}
	for k, v := range event.QueryStringParameters {
		query.Set(k, v)
	}

	return event.Path + "?" + query.Encode()
}
