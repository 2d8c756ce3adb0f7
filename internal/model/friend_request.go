package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus is the lifecycle state of a friend request.
// pending is the only non-terminal state.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

// FriendRequest represents a pending or resolved friend request
// between two users
type FriendRequest struct {
	ID         uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FromUserID uuid.UUID           `json:"from_user_id" gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID           `json:"to_user_id" gorm:"type:uuid;not null;index"`
	Status     FriendRequestStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt  time.Time           `json:"created_at"`
}

// IsPending reports whether the request can still be resolved.
func (r *FriendRequest) IsPending() bool {
	return r.Status == FriendRequestPending
}
