// Package dto contains data transfer objects for the bot domain
package dto

import "github.com/StGerman/polka-bot/internal/domain/bot/entities"

// StartCommandRequest represents a request to handle /start command
type StartCommandRequest struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// CommandResponse represents a response for bot commands
type CommandResponse struct {
	Message string `json:"message"`
}

// SubmissionRequest represents a free-text message submitted for URL validation
type SubmissionRequest struct {
	ChatID int64  `json:"chatId"`
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}

// SubmissionResponse carries the reply for the submitter and the
// classified outcome of the validation pipeline
type SubmissionResponse struct {
	Message string                     `json:"message"`
	Outcome entities.SubmissionOutcome `json:"outcome"`
}
