package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFreeText(t *testing.T) {
	tests := []struct {
		name   string
		update *models.Update
		want   bool
	}{
		{
			name:   "plain text",
			update: &models.Update{Message: &models.Message{Text: "hello"}},
			want:   true,
		},
		{
			name:   "url text",
			update: &models.Update{Message: &models.Message{Text: "http://good.example"}},
			want:   true,
		},
		{
			name:   "known command",
			update: &models.Update{Message: &models.Message{Text: "/start"}},
			want:   false,
		},
		{
			name:   "unknown command",
			update: &models.Update{Message: &models.Message{Text: "/foo"}},
			want:   false,
		},
		{
			name:   "empty text",
			update: &models.Update{Message: &models.Message{}},
			want:   false,
		},
		{
			name:   "no message",
			update: &models.Update{},
			want:   false,
		},
		{
			name:   "callback query only",
			update: &models.Update{CallbackQuery: &models.CallbackQuery{ID: "cb-1"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchFreeText(tt.update))
		})
	}
}

func TestMatchCallbackQuery(t *testing.T) {
	assert.True(t, matchCallbackQuery(&models.Update{
		CallbackQuery: &models.CallbackQuery{ID: "cb-1"},
	}))
	assert.False(t, matchCallbackQuery(&models.Update{
		Message: &models.Message{Text: "hello"},
	}))
	assert.False(t, matchCallbackQuery(&models.Update{}))
}

func TestCommandMenu(t *testing.T) {
	menu := commandMenu()

	require.Len(t, menu, 2)
	assert.Equal(t, "start", menu[0].Command)
	assert.Equal(t, "help", menu[1].Command)
	for _, entry := range menu {
		assert.NotEmpty(t, entry.Description)
	}
}
