package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

// MailQueueStore is the enqueue/dequeue surface of the outbound mail
// queue.
type MailQueueStore interface {
	Enqueue(ctx context.Context, entry *model.MailQueueEntry) error
	ListPending(ctx context.Context, limit int) ([]model.MailQueueEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MailQueueRepository handles database operations for MailQueueEntry
type MailQueueRepository struct {
	db *gorm.DB
}

func NewMailQueueRepository(db *gorm.DB) *MailQueueRepository {
	return &MailQueueRepository{db: db}
}

// Enqueue inserts a pending outbound email
func (r *MailQueueRepository) Enqueue(ctx context.Context, entry *model.MailQueueEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListPending returns queued entries, oldest first. Used by the
// startup sweep to pick up entries left behind by failed sends.
func (r *MailQueueRepository) ListPending(ctx context.Context, limit int) ([]model.MailQueueEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []model.MailQueueEntry
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Delete removes a processed entry
func (r *MailQueueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MailQueueEntry{}, "id = ?", id).Error
}
