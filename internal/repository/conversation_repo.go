package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

// ConversationStore covers direct conversations and their messages.
type ConversationStore interface {
	GetOrCreateDirect(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	CreateMessage(ctx context.Context, msg *model.Message) error
}

// ConversationRepository handles database operations for Conversation
// and Message
type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// GetOrCreateDirect finds the direct conversation between two users,
// creating it if none exists
func (r *ConversationRepository) GetOrCreateDirect(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_ids @> ? AND participant_ids @> ?", jsonMember(a), jsonMember(b)).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = model.Conversation{ParticipantIDs: []uuid.UUID{a, b}}
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetByID finds a conversation by id
func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// CreateMessage inserts a message
func (r *ConversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// jsonMember renders a single-element jsonb array for containment
// queries against participant_ids.
func jsonMember(id uuid.UUID) string {
	return `["` + id.String() + `"]`
}
