package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Set required environment variables for test
	os.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	os.Setenv("TELEGRAM_WEBHOOK_URL", "https://bot.example.com/webhook")
	defer func() {
		os.Unsetenv("TELEGRAM_BOT_TOKEN")
		os.Unsetenv("TELEGRAM_WEBHOOK_URL")
	}()

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}

func TestCreateLambdaApp(t *testing.T) {
	os.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	os.Setenv("TELEGRAM_WEBHOOK_URL", "https://bot.example.com/webhook")
	defer func() {
		os.Unsetenv("TELEGRAM_BOT_TOKEN")
		os.Unsetenv("TELEGRAM_WEBHOOK_URL")
	}()

	require.NoError(t, fx.ValidateApp(CreateLambdaApp()))
}
