package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// EventService handles neighborhood events, invitations and RSVPs
type EventService struct {
	events repository.EventStore
	users  repository.UserStore
}

func NewEventService(events repository.EventStore, users repository.UserStore) *EventService {
	return &EventService{events: events, users: users}
}

func (s *EventService) CreateEvent(ctx context.Context, authorID uuid.UUID, req model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		AuthorID: authorID,
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		URL:      req.URL,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to create event.", err)
	}
	return event, nil
}

// Invite adds a user to the invite list. Only the event author can
// invite. Returns the pre and post snapshots for publishing.
func (s *EventService) Invite(ctx context.Context, eventID, callerID, inviteeID uuid.UUID) (before, after *model.Event, err error) {
	before, err = s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeNotFound, "The specified event does not exist.", err)
	}
	if before.AuthorID != callerID {
		return nil, nil, apperr.New(apperr.CodePermissionDenied, "Only the event author can invite users.")
	}
	if _, err := s.users.GetByID(ctx, inviteeID); err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeNotFound, "The invited user does not exist.", err)
	}
	after, err = s.events.AddInvite(ctx, eventID, inviteeID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInternal, "Failed to invite user.", err)
	}
	return before, after, nil
}

// RSVP adds the caller to the attendee list. Attending twice is a
// no-op.
func (s *EventService) RSVP(ctx context.Context, eventID, userID uuid.UUID) (before, after *model.Event, err error) {
	before, err = s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeNotFound, "The specified event does not exist.", err)
	}
	after, err = s.events.AddAttendee(ctx, eventID, userID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInternal, "Failed to RSVP.", err)
	}
	return before, after, nil
}
