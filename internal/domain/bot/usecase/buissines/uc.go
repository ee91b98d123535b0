// Package buissines contains business logic for the bot domain
package buissines

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/StGerman/polka-bot/config"
	"github.com/StGerman/polka-bot/internal/domain/bot/deps"
	"github.com/StGerman/polka-bot/internal/domain/bot/dto"
	"github.com/StGerman/polka-bot/internal/domain/bot/entities"
	boterrors "github.com/StGerman/polka-bot/internal/domain/bot/errors"
)

// User-facing replies. The broadcast template is part of the channel
// contract and must not change without coordinating with channel consumers.
const (
	WelcomeMessage = "Welcome to Polka Bot! Use /help to see available commands."

	HelpMessage = "Commands:\n" +
		"/start - Start the bot and see a welcome message\n" +
		"/help - View this help message\n" +
		"\n" +
		"Send me a URL and I'll try to validate it!"

	invalidLinkReply    = "Send me a valid link or type /help for commands."
	postedReply         = "This link seems valid and was posted!"
	unreachableReplyFmt = "That link returned status code %d, so it might be invalid."
	probeFailedReply    = "I couldn't open that link. Please try again later."

	broadcastTemplate = "User submitted a valid URL: %s"
)

// UseCase contains business logic for bot operations
type UseCase struct {
	prober      deps.ReachabilityProber
	sender      deps.TelegramSender
	channelID   string
	adminChatID string
	logger      zerolog.Logger
}

// NewUseCase creates a new UseCase instance.
// Note: sender is not passed here to break the cyclic dependency with the
// Telegram delivery handlers. Use SetSender after creating them.
func NewUseCase(prober deps.ReachabilityProber, cfg *config.TelegramConfig, logger zerolog.Logger) *UseCase {
	return &UseCase{
		prober:      prober,
		channelID:   cfg.ChannelID,
		adminChatID: cfg.AdminChatID,
		logger:      logger,
	}
}

// SetSender sets the TelegramSender after construction.
// This is called by fx.Invoke to resolve the cyclic dependency.
func (uc *UseCase) SetSender(sender deps.TelegramSender) {
	uc.sender = sender
}

// HandleStart handles /start command
func (uc *UseCase) HandleStart(ctx context.Context, req *dto.StartCommandRequest) (*dto.CommandResponse, error) {
	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("username", req.Username).
		Msg("User started bot")

	return &dto.CommandResponse{Message: WelcomeMessage}, nil
}

// HandleHelp handles /help command
func (uc *UseCase) HandleHelp(ctx context.Context) (*dto.CommandResponse, error) {
	return &dto.CommandResponse{Message: HelpMessage}, nil
}

// HandleSubmission runs the validation pipeline for a free-text message:
// syntax check, reachability probe, channel broadcast, submitter reply.
func (uc *UseCase) HandleSubmission(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error) {
	text := strings.TrimSpace(req.Text)

	if !IsValidURL(text) {
		uc.logger.Debug().
			Int64("user_id", req.UserID).
			Msg("Submission is not a URL")
		return &dto.SubmissionResponse{
			Message: invalidLinkReply,
			Outcome: entities.SubmissionNotAURL,
		}, nil
	}

	if uc.sender == nil {
		uc.logger.Error().Msg("TelegramSender is not set")
		return nil, boterrors.ErrSenderNotConfigured
	}

	result := uc.prober.Probe(ctx, text)

	switch result.Outcome {
	case entities.ProbeReachable:
		// The ack below is sent even if the broadcast fails: the submitted
		// link WAS valid, re-posting is the operator's concern. The failure
		// is logged and forwarded to the admin chat instead.
		if err := uc.sender.SendChannelMessage(ctx, uc.channelID, fmt.Sprintf(broadcastTemplate, text)); err != nil {
			uc.logger.Error().Err(err).
				Str("channel_id", uc.channelID).
				Msg("Failed to broadcast URL to channel")
			uc.notifyAdmin(ctx, fmt.Sprintf("Broadcast to %s failed: %v", uc.channelID, err))
		}

		uc.logger.Info().
			Int64("user_id", req.UserID).
			Str("channel_id", uc.channelID).
			Msg("Valid URL posted to channel")

		return &dto.SubmissionResponse{
			Message: postedReply,
			Outcome: entities.SubmissionPosted,
		}, nil

	case entities.ProbeUnreachable:
		uc.logger.Info().
			Int64("user_id", req.UserID).
			Int("status", result.StatusCode).
			Msg("Submitted URL is unreachable")

		return &dto.SubmissionResponse{
			Message: fmt.Sprintf(unreachableReplyFmt, result.StatusCode),
			Outcome: entities.SubmissionRejected,
		}, nil

	default:
		uc.logger.Error().Err(result.Err).
			Int64("user_id", req.UserID).
			Msg("Error validating URL")
		uc.notifyAdmin(ctx, fmt.Sprintf("Validation error: %v", result.Err))

		return &dto.SubmissionResponse{
			Message: probeFailedReply,
			Outcome: entities.SubmissionProbeFailed,
		}, nil
	}
}

// IsValidURL reports whether text, trimmed, is a well-formed http(s) URL
// with a non-empty host. Pure, no I/O.
func IsValidURL(text string) bool {
	parsed, err := url.Parse(strings.TrimSpace(text))
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// notifyAdmin forwards an operational notice to the admin chat, if one is
// configured. Failures are logged only.
func (uc *UseCase) notifyAdmin(ctx context.Context, text string) {
	if uc.adminChatID == "" {
		return
	}

	if err := uc.sender.SendChannelMessage(ctx, uc.adminChatID, text); err != nil {
		uc.logger.Error().Err(err).Msg("Failed to notify admin")
	}
}
