package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// DefaultChannelID is used when TELEGRAM_CHANNEL_ID is not set
const DefaultChannelID = "@your_public_channel"

// Config holds all configuration for the bot service
type Config struct {
	Telegram TelegramConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	AdminChatID string
	ChannelID   string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// MissingVarError reports a required environment variable that is
// missing or empty
type MissingVarError struct {
	Variable string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("environment variable %s is required", e.Variable)
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			WebhookURL:  getEnv("TELEGRAM_WEBHOOK_URL", ""),
			AdminChatID: getEnv("ADMIN_CHAT_ID", ""),
			ChannelID:   getEnv("TELEGRAM_CHANNEL_ID", DefaultChannelID),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "polka-bot"),
			Port: getEnv("SERVICE_PORT", "8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return &MissingVarError{Variable: "TELEGRAM_BOT_TOKEN"}
	}

	if c.Telegram.WebhookURL == "" {
		return &MissingVarError{Variable: "TELEGRAM_WEBHOOK_URL"}
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
