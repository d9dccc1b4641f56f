// File: internal/services/chat/types.go
package chat

import (
	"time"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/services/language"
)

// Logger defines the logging interface used across chat services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Turn is a single prior exchange supplied by the client alongside the
// message, as an alternative to server-side history replay.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Request is one inbound chat turn after transport-level decoding.
type Request struct {
	UserID    string
	SessionID string
	Message   string
	// Lang is the raw client tag; empty or "auto" means run detection.
	Lang    string
	History []Turn
}

// Reply is the assistant's answer plus the envelope fields the transport
// returns to the client.
type Reply struct {
	Message          string
	SessionID        string
	DetectedLanguage language.Language
	DoctorSuggestion *domain.DoctorSuggestion
	// FromFallback is true when the text came from the canned advice bank
	// rather than the model.
	FromFallback bool
	ModelName    string
	ResponseTime time.Duration
}
