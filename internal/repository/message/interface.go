// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/gramcare/sahayak/internal/domain"
)

// MessageRepository is the durable, append-only chat log keyed by
// (user ID, session ID).
type MessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	// FindRecent returns at most limit messages for the session, ordered
	// oldest first.
	FindRecent(ctx context.Context, userID, sessionID string, limit int) ([]domain.ChatMessage, error)
	// FindBySession returns the full session transcript, oldest first.
	FindBySession(ctx context.Context, userID, sessionID string) ([]domain.ChatMessage, error)
	CountBySession(ctx context.Context, userID, sessionID string) (int64, error)
}
