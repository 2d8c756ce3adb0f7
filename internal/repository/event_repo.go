package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

// EventStore covers event writes. Invite and RSVP grow their sets
// idempotently and return the updated row so handlers can publish a
// before/after change event.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	AddInvite(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
}

// EventRepository handles database operations for Event
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID finds an event by id
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// AddInvite adds a user to the event's invited set
func (r *EventRepository) AddInvite(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	return r.addToSet(ctx, eventID, userID, "invited", func(e *model.Event) *[]uuid.UUID { return &e.Invited })
}

// AddAttendee adds a user to the event's attendee set
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	return r.addToSet(ctx, eventID, userID, "attendees", func(e *model.Event) *[]uuid.UUID { return &e.Attendees })
}

func (r *EventRepository) addToSet(ctx context.Context, eventID, userID uuid.UUID, column string, set func(*model.Event) *[]uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
			return err
		}
		members := set(&event)
		for _, id := range *members {
			if id == userID {
				return nil
			}
		}
		*members = append(*members, userID)
		return tx.Model(&model.Event{}).
			Where("id = ?", eventID).
			Update(column, *members).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
