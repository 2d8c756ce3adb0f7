package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates every notification the dispatcher knows
// how to deliver.
type NotificationType string

const (
	NotificationFriendRequest         NotificationType = "friend_request"
	NotificationFriendRequestAccepted NotificationType = "friend_request_accepted"
	NotificationMessage               NotificationType = "message"
	NotificationPostUpdate            NotificationType = "post_update"
	NotificationComment               NotificationType = "comment"
	NotificationPostLike              NotificationType = "post_like"
	NotificationEventInvite           NotificationType = "event_invite"
)

// PreferenceCategory is the key users toggle in their notification
// settings. Several notification types share a category.
type PreferenceCategory string

const (
	PrefFriends  PreferenceCategory = "friends"
	PrefMessages PreferenceCategory = "messages"
	PrefPosts    PreferenceCategory = "posts"
	PrefComments PreferenceCategory = "comments"
	PrefEvents   PreferenceCategory = "events"
)

// preferenceCategories is the explicit type-to-category table.
// Renaming a notification type without updating this table fails the
// exhaustiveness test rather than silently bypassing preferences.
var preferenceCategories = map[NotificationType]PreferenceCategory{
	NotificationFriendRequest:         PrefFriends,
	NotificationFriendRequestAccepted: PrefFriends,
	NotificationMessage:               PrefMessages,
	NotificationPostUpdate:            PrefPosts,
	NotificationComment:               PrefComments,
	NotificationPostLike:              PrefPosts,
	NotificationEventInvite:           PrefEvents,
}

// PreferenceCategory returns the settings key controlling delivery of
// this notification type.
func (t NotificationType) PreferenceCategory() (PreferenceCategory, bool) {
	c, ok := preferenceCategories[t]
	return c, ok
}

// NotificationTypes returns every known type, for exhaustiveness
// checks.
func NotificationTypes() []NotificationType {
	types := make([]NotificationType, 0, len(preferenceCategories))
	for t := range preferenceCategories {
		types = append(types, t)
	}
	return types
}

// Notification is an append-only in-app notification record. The core
// only ever creates these; the read flag is flipped by the client.
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type      NotificationType `json:"type" gorm:"size:40;not null"`
	SenderID  uuid.UUID        `json:"sender_id" gorm:"type:uuid"`
	RelatedID uuid.UUID        `json:"related_id" gorm:"type:uuid"`
	Message   string           `json:"message" gorm:"size:500"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}
