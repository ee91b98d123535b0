package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBot_RequiresToken(t *testing.T) {
	bot, err := NewBot("", zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, bot)
}

func TestNewBot(t *testing.T) {
	bot, err := NewBot("123456:test-token", zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, bot)
	assert.NotNil(t, bot.Raw())
}

func TestEnqueue_ReportsFullQueue(t *testing.T) {
	bot, err := NewBot("123456:test-token", zerolog.Nop())
	require.NoError(t, err)

	// No consumer running, so the queue fills up
	for i := 0; i < updateQueueSize; i++ {
		require.NoError(t, bot.Enqueue(&models.Update{ID: int64(i)}))
	}

	err = bot.Enqueue(&models.Update{ID: int64(updateQueueSize)})
	require.ErrorIs(t, err, ErrQueueFull)
}
