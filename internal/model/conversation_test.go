package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOtherParticipant(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	conv := &Conversation{ParticipantIDs: []uuid.UUID{a, b}}

	assert.Equal(t, b, conv.OtherParticipant(a))
	assert.Equal(t, a, conv.OtherParticipant(b))
}

func TestOtherParticipant_SenderNotInConversation(t *testing.T) {
	conv := &Conversation{ParticipantIDs: []uuid.UUID{uuid.New(), uuid.New()}}

	assert.Equal(t, uuid.Nil, conv.OtherParticipant(uuid.New()))
}
