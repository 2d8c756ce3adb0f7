package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a neighborhood event with invite and RSVP lists. Both
// Invited and Attendees are unordered sets of user ids that only ever
// grow; triggers diff before/after snapshots to find new entries.
type Event struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Title    string    `json:"title" gorm:"size:200;not null"`
	Date     string    `json:"date" gorm:"size:40"`
	Time     string    `json:"time" gorm:"size:40"`
	Location string    `json:"location" gorm:"size:300"`
	URL      string    `json:"url" gorm:"size:500"`

	Invited   []uuid.UUID `json:"invited" gorm:"type:jsonb;serializer:json"`
	Attendees []uuid.UUID `json:"attendees" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
