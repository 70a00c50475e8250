package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/jobpal/config"
)

// ResponseHandler provides standardized response methods for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

type ErrorType int

const (
	// UserError is input the user can fix and retry.
	UserError ErrorType = iota
	// SystemError is a storage or network failure.
	SystemError
	NotFoundError
	// QuotaError is a daily limit or similar rule.
	QuotaError
)

var ErrQuotaExceeded = errors.New("quota exceeded")

const retryMessage = "Something went wrong while saving your progress. Please try again in a moment."

func getErrorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case SystemError:
		return "🔧"
	case NotFoundError:
		return "🔍"
	case QuotaError:
		return "⏰"
	default:
		return "❌"
	}
}

func getErrorColor(errorType ErrorType) int {
	switch errorType {
	case UserError, QuotaError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// ClassifyError maps a domain error to the reply category and the text shown
// to the user. Storage details never reach the user.
func ClassifyError(err error) (ErrorType, string) {
	switch {
	case errs.IsInvalid(err):
		return UserError, userMessage(err)
	case errors.Is(err, ErrQuotaExceeded):
		return QuotaError, userMessage(err)
	case errs.IsStorage(err):
		return SystemError, retryMessage
	default:
		return SystemError, "Something unexpected happened. Please try again."
	}
}

// userMessage strips wrapping down to the text after the sentinel.
func userMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{errs.ErrInvalidArgument, ErrQuotaExceeded} {
		marker := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			msg = msg[i+len(marker):]
			break
		}
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func classifiedEmbed(errorType ErrorType, message string) discord.Embed {
	return discord.Embed{
		Description: getErrorPrefix(errorType) + " " + message,
		Color:       getErrorColor(errorType),
	}
}

func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{Description: message, Color: config.ErrorColor}},
		Flags:  discord.MessageFlagEphemeral,
	})
}

func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{Description: message, Color: config.SuccessColor}},
	})
}

func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{Description: message, Color: config.InfoColor}},
	})
}

func (h *ResponseHandler) CreateEphemeralError(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: "❌ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

func (h *ResponseHandler) CreateEphemeralInfo(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: "ℹ️ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

// UpdateInteractionResponse replaces a deferred response with an error embed.
func (h *ResponseHandler) UpdateInteractionResponse(event *handler.CommandEvent, errorType ErrorType, message string) error {
	_, err := event.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds: &[]discord.Embed{classifiedEmbed(errorType, message)},
	})
	return err
}

// HandleDomainError replies to any interaction with the classified error and
// logs what the user did not see.
func (h *ResponseHandler) HandleDomainError(event interface{}, err error) error {
	errorType, message := ClassifyError(err)
	if errorType == SystemError {
		slog.Error("Interaction failed",
			slog.String("type", "cmd"),
			slog.Any("error", err))
	}

	embed := classifiedEmbed(errorType, message)
	reply := discord.MessageCreate{Embeds: []discord.Embed{embed}, Flags: discord.MessageFlagEphemeral}
	switch e := event.(type) {
	case *handler.CommandEvent:
		return e.CreateMessage(reply)
	case *handler.ComponentEvent:
		return e.CreateMessage(reply)
	case *handler.ModalEvent:
		return e.CreateMessage(reply)
	default:
		return fmt.Errorf("unsupported event type %T for error handling", event)
	}
}
