package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	boterrors "github.com/StGerman/polka-bot/internal/domain/bot/errors"
)

// newTestBot points the client at a stub Bot API server
func newTestBot(t *testing.T, response string) *tgbot.Bot {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	bot, err := tgbot.New("123456:test-token", tgbot.WithSkipGetMe(), tgbot.WithServerURL(srv.URL))
	require.NoError(t, err)
	return bot
}

func TestSenderIdentity(t *testing.T) {
	userID, username := senderIdentity(&models.Message{
		From: &models.User{ID: 42, Username: "polka"},
	})
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "polka", username)

	// Channel posts carry no From
	userID, username = senderIdentity(&models.Message{})
	assert.Equal(t, int64(0), userID)
	assert.Empty(t, username)
}

// Updates without the expected payload must be ignored, not dereferenced
func TestHandlers_GuardAgainstEmptyUpdates(t *testing.T) {
	h := NewHandlers(nil, nil, zerolog.Nop())
	ctx := context.Background()

	assert.NotPanics(t, func() { h.HandleStart(ctx, nil, &models.Update{}) })
	assert.NotPanics(t, func() { h.HandleHelp(ctx, nil, &models.Update{}) })
	assert.NotPanics(t, func() { h.HandleSubmission(ctx, nil, &models.Update{}) })
	assert.NotPanics(t, func() {
		h.HandleSubmission(ctx, nil, &models.Update{Message: &models.Message{}})
	})
	assert.NotPanics(t, func() { h.HandleCallback(ctx, nil, &models.Update{}) })
}

func TestSendMessage_RejectsEmptyText(t *testing.T) {
	h := NewHandlers(nil, nil, zerolog.Nop())

	err := h.SendMessage(context.Background(), 1, "")
	require.ErrorIs(t, err, boterrors.ErrEmptyMessage)
}

func TestSendMessage(t *testing.T) {
	bot := newTestBot(t, `{"ok":true,"result":{"message_id":1,"chat":{"id":1}}}`)
	h := NewHandlers(nil, bot, zerolog.Nop())

	require.NoError(t, h.SendMessage(context.Background(), 1, "hello"))
	require.NoError(t, h.SendChannelMessage(context.Background(), "@test_channel", "hello"))
}

func TestSendMessage_WrapsAPIError(t *testing.T) {
	bot := newTestBot(t, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	h := NewHandlers(nil, bot, zerolog.Nop())

	err := h.SendMessage(context.Background(), 1, "hello")
	require.ErrorIs(t, err, boterrors.ErrTelegramAPI)
}
