package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed post scoped to the author's local-government-area.
// LikedBy is an unordered set of user ids; like triggers re-derive
// "who's new" from before/after snapshots of this slice.
type Post struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Text      string      `json:"text" gorm:"type:text;not null"`
	LGA       string      `json:"lga" gorm:"size:100;index"`
	LikedBy   []uuid.UUID `json:"liked_by" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Comment is a comment on a post
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
