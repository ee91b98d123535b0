// Package errors contains domain-specific errors for the bot domain
package errors

import (
	pkgerrors "github.com/StGerman/polka-bot/pkg/errors"
)

// Domain errors for bot operations
var (
	ErrEmptyMessage        = pkgerrors.NewValidationError("message text cannot be empty")
	ErrMalformedUpdate     = pkgerrors.NewValidationError("update contains neither message nor callback_query")
	ErrSenderNotConfigured = pkgerrors.NewInternalError("telegram sender is not configured")
	ErrTelegramAPI         = pkgerrors.NewInternalError("telegram API error")
)
