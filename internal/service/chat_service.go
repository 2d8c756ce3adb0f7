package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// ChatService handles direct conversations and messages
type ChatService struct {
	convs repository.ConversationStore
}

func NewChatService(convs repository.ConversationStore) *ChatService {
	return &ChatService{convs: convs}
}

// GetOrCreateDirect finds the one-on-one conversation between the two
// users, creating it if none exists yet.
func (s *ChatService) GetOrCreateDirect(ctx context.Context, userID, partnerID uuid.UUID) (*model.Conversation, error) {
	if partnerID == uuid.Nil || partnerID == userID {
		return nil, apperr.New(apperr.CodeInvalidArgument, "A valid partner id is required.")
	}
	conv, err := s.convs.GetOrCreateDirect(ctx, userID, partnerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to open conversation.", err)
	}
	return conv, nil
}

// SendMessage appends a message to a conversation the sender belongs
// to.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID uuid.UUID, text string) (*model.Message, error) {
	conv, err := s.convs.GetByID(ctx, conversationID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeNotFound, "The specified conversation does not exist.", err)
	}

	member := false
	for _, id := range conv.ParticipantIDs {
		if id == senderID {
			member = true
			break
		}
	}
	if !member {
		return nil, apperr.New(apperr.CodePermissionDenied, "You are not a participant of this conversation.")
	}

	msg := &model.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
	}
	if err := s.convs.CreateMessage(ctx, msg); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to send message.", err)
	}
	return msg, nil
}
