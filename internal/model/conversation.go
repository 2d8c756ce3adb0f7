package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a direct (two-party) message thread
type Conversation struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParticipantIDs []uuid.UUID `json:"participant_ids" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OtherParticipant returns the participant that is not senderID, or
// uuid.Nil when the sender is not part of the conversation.
func (c *Conversation) OtherParticipant(senderID uuid.UUID) uuid.UUID {
	other := uuid.Nil
	member := false
	for _, id := range c.ParticipantIDs {
		if id == senderID {
			member = true
		} else {
			other = id
		}
	}
	if !member {
		return uuid.Nil
	}
	return other
}

// Message is a single message inside a conversation
type Message struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `json:"sender_id" gorm:"type:uuid;not null"`
	Text           string    `json:"text" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
}
