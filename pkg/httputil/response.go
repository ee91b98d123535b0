package httputil

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// Response is the JSON envelope returned by every endpoint.
// The webhook contract requires status code 200 even on failures, so the
// outcome is carried in the body instead of the status line.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// WriteOK writes the {"status":"ok"} envelope
func WriteOK(ctx *fasthttp.RequestCtx) {
	WriteStatus(ctx, "ok")
}

// WriteStatus writes a {"status":<status>} envelope
func WriteStatus(ctx *fasthttp.RequestCtx, status string) {
	writeJSON(ctx, Response{Status: status})
}

// WriteError writes an {"status":"error","message":<message>} envelope.
// The status code stays 200 so the platform does not retry delivery.
func WriteError(ctx *fasthttp.RequestCtx, message string) {
	writeJSON(ctx, Response{Status: "error", Message: message})
}

// writeJSON writes JSON response to context
func writeJSON(ctx *fasthttp.RequestCtx, resp Response) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)

	body, err := json.Marshal(resp)
	if err != nil {
		// Response is two plain strings, this cannot realistically fail
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetBody(body)
}
