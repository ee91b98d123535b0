package http

import (
	"encoding/json"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/StGerman/polka-bot/pkg/httputil"
)

type stubQueue struct {
	updates []*models.Update
	err     error
}

func (q *stubQueue) Enqueue(upd *models.Update) error {
	if q.err != nil {
		return q.err
	}
	q.updates = append(q.updates, upd)
	return nil
}

func invoke(handler fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.SetBodyString(body)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)

	handler(ctx)
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) httputil.Response {
	var resp httputil.Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return resp
}

func TestHandleWebhook_ValidMessageIsEnqueued(t *testing.T) {
	queue := &stubQueue{}
	h := NewHandler(queue, zerolog.Nop())

	body := `{"update_id":1,"message":{"text":"http://good.example","chat":{"id":1}}}`
	ctx := invoke(h.HandleWebhook, fasthttp.MethodPost, "/webhook", body)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	resp := decodeEnvelope(t, ctx)
	assert.Equal(t, "ok", resp.Status)

	require.Len(t, queue.updates, 1)
	assert.Equal(t, int64(1), queue.updates[0].ID)
	require.NotNil(t, queue.updates[0].Message)
	assert.Equal(t, "http://good.example", queue.updates[0].Message.Text)
}

func TestHandleWebhook_CallbackQueryIsEnqueued(t *testing.T) {
	queue := &stubQueue{}
	h := NewHandler(queue, zerolog.Nop())

	body := `{"update_id":7,"callback_query":{"id":"cb-1","from":{"id":5},"data":"x"}}`
	ctx := invoke(h.HandleWebhook, fasthttp.MethodPost, "/webhook", body)

	resp := decodeEnvelope(t, ctx)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, queue.updates, 1)
	require.NotNil(t, queue.updates[0].CallbackQuery)
}

// An update with neither message nor callback_query is reported as an
// error but still answered with status 200, so Telegram does not retry
func TestHandleWebhook_EmptyUpdateIsRejected(t *testing.T) {
	queue := &stubQueue{}
	h := NewHandler(queue, zerolog.Nop())

	ctx := invoke(h.HandleWebhook, fasthttp.MethodPost, "/webhook", `{}`)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	resp := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, queue.updates, "nothing may be enqueued")
}

func TestHandleWebhook_MalformedJSON(t *testing.T) {
	queue := &stubQueue{}
	h := NewHandler(queue, zerolog.Nop())

	ctx := invoke(h.HandleWebhook, fasthttp.MethodPost, "/webhook", `{"update_id":`)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	resp := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, queue.updates)
}

func TestHandleWebhook_QueueFull(t *testing.T) {
	queue := &stubQueue{err: assert.AnError}
	h := NewHandler(queue, zerolog.Nop())

	body := `{"update_id":2,"message":{"text":"hi","chat":{"id":1}}}`
	ctx := invoke(h.HandleWebhook, fasthttp.MethodPost, "/webhook", body)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	resp := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", resp.Status)
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler(&stubQueue{}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		ctx := invoke(h.HandleHealth, fasthttp.MethodGet, "/", "")

		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"status":"Polka Bot is running!"}`, string(ctx.Response.Body()))
	}
}
