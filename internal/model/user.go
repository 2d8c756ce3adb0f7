package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationSettings maps a preference category ("posts", "friends",
// "messages", ...) to an enabled flag. A missing key means enabled;
// only an explicit false disables the category.
type NotificationSettings map[PreferenceCategory]bool

// Enabled reports whether notifications of the given category may be
// delivered to the user.
func (s NotificationSettings) Enabled(category PreferenceCategory) bool {
	if s == nil {
		return true
	}
	enabled, ok := s[category]
	return !ok || enabled
}

// User represents a registered neighbor
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string    `json:"-" gorm:"size:255"`
	Avatar   string    `json:"avatar" gorm:"size:500;default:''"`
	// LGA is the user's local-government-area, the neighborhood key
	// used for post fan-out
	LGA string `json:"lga" gorm:"size:100;index"`

	FCMToken             string               `json:"-" gorm:"size:500;default:''"`
	NotificationSettings NotificationSettings `json:"notification_settings" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Friendship is one direction of a mutual friend edge. Accepting a
// friend request always inserts both directions in one transaction,
// so the relation stays symmetric.
type Friendship struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	FriendID  uuid.UUID `json:"friend_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the safe version of User for API responses
type UserResponse struct {
	ID                   uuid.UUID            `json:"id"`
	Name                 string               `json:"name"`
	Email                string               `json:"email"`
	Avatar               string               `json:"avatar"`
	LGA                  string               `json:"lga"`
	NotificationSettings NotificationSettings `json:"notification_settings"`
}

// ToResponse converts User to safe UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		Avatar:               u.Avatar,
		LGA:                  u.LGA,
		NotificationSettings: u.NotificationSettings,
	}
}
