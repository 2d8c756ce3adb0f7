package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
)

// PushSender delivers one push notification. A failed send is a
// recoverable outcome the dispatcher logs and moves past.
type PushSender interface {
	Send(ctx context.Context, token, title, body, link string) error
}

// NotificationInput is one dispatch request: who gets notified, why,
// and what the in-app and push renderings say.
type NotificationInput struct {
	UserID      uuid.UUID
	Type        model.NotificationType
	SenderID    uuid.UUID
	RelatedID   uuid.UUID
	Message     string
	Title       string
	ClickAction string
}

// NotificationService is the single path every notification takes:
// preference check, in-app record, best-effort push.
type NotificationService struct {
	users         repository.UserStore
	notifications repository.NotificationStore
	push          PushSender
}

func NewNotificationService(
	users repository.UserStore,
	notifications repository.NotificationStore,
	push PushSender,
) *NotificationService {
	return &NotificationService{
		users:         users,
		notifications: notifications,
		push:          push,
	}
}

// Dispatch delivers one notification to one recipient. It never
// returns an error and never panics: a missing recipient, a disabled
// preference, a storage failure or a push failure each end this one
// delivery, logged, without affecting sibling deliveries in a fan-out.
func (s *NotificationService) Dispatch(ctx context.Context, in NotificationInput) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered dispatching %s notification to %s: %v", in.Type, in.UserID, r)
		}
	}()

	if err := s.dispatch(ctx, in); err != nil {
		log.Printf("Error sending %s notification to %s: %v", in.Type, in.UserID, err)
	}
}

func (s *NotificationService) dispatch(ctx context.Context, in NotificationInput) error {
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		// Recipient lookup failure (including a vanished user) is
		// non-fatal for the triggering event.
		log.Printf("User %s not found for %s notification: %v", in.UserID, in.Type, err)
		return nil
	}

	category, ok := in.Type.PreferenceCategory()
	if ok && !user.NotificationSettings.Enabled(category) {
		log.Printf("User %s has disabled %s notifications.", in.UserID, in.Type)
		return nil
	}

	notification := &model.Notification{
		UserID:    in.UserID,
		Type:      in.Type,
		SenderID:  in.SenderID,
		RelatedID: in.RelatedID,
		Message:   in.Message,
		IsRead:    false,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return err
	}

	// Push is best-effort: the in-app record above is never rolled
	// back because delivery failed.
	if user.FCMToken != "" && s.push != nil {
		if err := s.push.Send(ctx, user.FCMToken, in.Title, in.Message, in.ClickAction); err != nil {
			log.Printf("Push delivery to %s failed: %v", in.UserID, err)
		}
	}

	return nil
}
