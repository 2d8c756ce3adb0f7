package model

import (
	"time"

	"github.com/google/uuid"
)

// TemplateEventConfirmation confirms an event RSVP by email. It is the
// only template the mail processor knows.
const TemplateEventConfirmation = "eventConfirmation"

// MailQueueEntry is a pending outbound email. The processor deletes
// the entry after a successful send (or immediately for an unknown
// template); a failed send leaves it in place for external redelivery,
// so the queue is not an audit log.
type MailQueueEntry struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ToEmail   string            `json:"to_email" gorm:"size:255;not null"`
	Template  string            `json:"template" gorm:"size:60;not null"`
	Data      map[string]string `json:"data" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time         `json:"created_at"`
}
