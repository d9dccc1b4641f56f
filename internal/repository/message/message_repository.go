// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/gramcare/sahayak/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create appends a message to the session log after validating the record
// invariants. Technical database detail is logged but not returned; callers
// see a generic error. Chat content is never logged.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if message == nil {
		return nil, errors.New("message cannot be nil")
	}
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		log.Printf("[MessageRepository] Database error during message creation for session %s: %v", message.SessionID, err)
		return nil, errors.New("database error creating message")
	}

	return message, nil
}

func (r *gormMessageRepository) FindRecent(ctx context.Context, userID, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if userID == "" || sessionID == "" {
		return nil, errors.New("user ID and session ID are required")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding recent messages for session %s: %v", sessionID, err)
		return nil, errors.New("database error finding recent messages")
	}

	// Reverse to chronological order, oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (r *gormMessageRepository) FindBySession(ctx context.Context, userID, sessionID string) ([]domain.ChatMessage, error) {
	if userID == "" || sessionID == "" {
		return nil, errors.New("user ID and session ID are required")
	}

	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching session %s: %v", sessionID, err)
		return nil, errors.New("database error fetching session messages")
	}

	return messages, nil
}

func (r *gormMessageRepository) CountBySession(ctx context.Context, userID, sessionID string) (int64, error) {
	if userID == "" || sessionID == "" {
		return 0, errors.New("user ID and session ID are required")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting session %s: %v", sessionID, err)
		return 0, errors.New("database error counting session messages")
	}

	return count, nil
}
