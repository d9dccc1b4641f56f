// File: internal/domain/message.go
package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxMessageLength is the upper bound on stored message content, in runes.
const MaxMessageLength = 2000

// ChatMessage is a single turn in a chat session. Messages are append-only:
// once written they are never updated.
type ChatMessage struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	UserID    string `json:"user_id" gorm:"index:idx_session;not null"`
	SessionID string `json:"session_id" gorm:"index:idx_session;not null"`
	Role      string `json:"role" gorm:"not null"` // "user" or "assistant"
	Content   string `json:"content" gorm:"not null"`

	// Language is the language the turn was served in. Defaults to english
	// when the detector cannot decide.
	Language         string `json:"language"`
	DetectedLanguage string `json:"detected_language,omitempty"`

	// Doctor suggestion attached to assistant replies for doctor-list
	// requests. Flattened so the record stays a single row.
	DoctorName     string `json:"doctor_name,omitempty"`
	DoctorCategory string `json:"doctor_category,omitempty"`
	DoctorReason   string `json:"doctor_reason,omitempty"`

	IsError        bool  `json:"is_error"`
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	ModelName      string `json:"model_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate enforces the invariants every persisted message must hold.
func (m *ChatMessage) Validate() error {
	if strings.TrimSpace(m.Content) == "" {
		return errors.New("message content cannot be empty")
	}
	if utf8.RuneCountInString(m.Content) > MaxMessageLength {
		return errors.New("message content too long")
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return errors.New("invalid message role")
	}
	if m.UserID == "" || m.SessionID == "" {
		return errors.New("user ID and session ID are required")
	}
	if m.Language == "" {
		m.Language = "english"
	}
	return nil
}
