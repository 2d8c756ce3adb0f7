package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// Notifier is the dispatch entry point the friend service calls after
// a commit. Satisfied by NotificationService.
type Notifier interface {
	Dispatch(ctx context.Context, in NotificationInput)
}

// FriendService owns the friend-request lifecycle: creating pending
// requests and resolving them. All caller-facing failures carry an
// apperr code.
type FriendService struct {
	requests repository.FriendRequestStore
	users    repository.UserStore
	notifier Notifier
}

func NewFriendService(
	requests repository.FriendRequestStore,
	users repository.UserStore,
	notifier Notifier,
) *FriendService {
	return &FriendService{
		requests: requests,
		users:    users,
		notifier: notifier,
	}
}

// SendRequest creates a pending friend request. A reciprocal or
// duplicate pending request between the same pair is rejected at
// write time, so at most one pending request exists per unordered
// pair.
func (s *FriendService) SendRequest(ctx context.Context, fromUserID, toUserID uuid.UUID) (*model.FriendRequest, error) {
	if fromUserID == uuid.Nil {
		return nil, apperr.New(apperr.CodeUnauthenticated, "You must be logged in.")
	}
	if toUserID == uuid.Nil || toUserID == fromUserID {
		return nil, apperr.New(apperr.CodeInvalidArgument, "Cannot send a friend request to yourself.")
	}

	if _, err := s.users.GetByID(ctx, toUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "The target user does not exist.")
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}

	friends, err := s.users.AreFriends(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}
	if friends {
		return nil, apperr.New(apperr.CodeAlreadyExists, "You are already friends.")
	}

	pending, err := s.requests.HasPending(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}
	if pending {
		return nil, apperr.New(apperr.CodeAlreadyExists, "A pending friend request already exists.")
	}

	req := &model.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     model.FriendRequestPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}
	return req, nil
}

// AcceptFriendRequest applies pending→accepted on behalf of callerID.
// The status change and both friendship edges commit atomically; the
// acceptance notification is dispatched only after the commit, so a
// dispatch failure can never undo the friendship. Re-accepting an
// already resolved request succeeds as a no-op.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, callerID uuid.UUID, friendRequestID string) error {
	if callerID == uuid.Nil {
		return apperr.New(apperr.CodeUnauthenticated, "You must be logged in.")
	}
	if friendRequestID == "" {
		return apperr.New(apperr.CodeInvalidArgument, `The function must be called with a "friendRequestId".`)
	}
	requestID, err := uuid.Parse(friendRequestID)
	if err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid friend request id.")
	}

	req, applied, err := s.requests.Accept(ctx, requestID, callerID)
	if err != nil {
		return s.resolveError(err)
	}

	if !applied {
		log.Printf("Request %s is already %s.", friendRequestID, req.Status)
		return nil
	}

	// Post-commit: tell the original sender. Dispatch swallows its
	// own failures.
	if accepter, err := s.users.GetByID(ctx, req.ToUserID); err == nil {
		s.notifier.Dispatch(ctx, NotificationInput{
			UserID:      req.FromUserID,
			Type:        model.NotificationFriendRequestAccepted,
			SenderID:    req.ToUserID,
			RelatedID:   req.ID,
			Message:     accepter.Name + " accepted your friend request.",
			Title:       "Friend Request Accepted",
			ClickAction: "/users/" + req.ToUserID.String(),
		})
	} else {
		log.Printf("Accepter %s not found for acceptance notification: %v", req.ToUserID, err)
	}

	log.Printf("Successfully accepted friend request %s", friendRequestID)
	return nil
}

// DeclineFriendRequest applies pending→declined. Same preconditions
// as accept; no friendship edges and no notification.
func (s *FriendService) DeclineFriendRequest(ctx context.Context, callerID uuid.UUID, friendRequestID string) error {
	if callerID == uuid.Nil {
		return apperr.New(apperr.CodeUnauthenticated, "You must be logged in.")
	}
	if friendRequestID == "" {
		return apperr.New(apperr.CodeInvalidArgument, `The function must be called with a "friendRequestId".`)
	}
	requestID, err := uuid.Parse(friendRequestID)
	if err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid friend request id.")
	}

	req, applied, err := s.requests.Decline(ctx, requestID, callerID)
	if err != nil {
		return s.resolveError(err)
	}
	if !applied {
		log.Printf("Request %s is already %s.", friendRequestID, req.Status)
	}
	return nil
}

// ListIncoming returns pending requests addressed to a user, with
// sender names resolved for display.
func (s *FriendService) ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.FriendRequestResponse, error) {
	reqs, err := s.requests.ListIncoming(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}

	resp := make([]model.FriendRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		item := model.FriendRequestResponse{FriendRequest: req}
		if sender, err := s.users.GetByID(ctx, req.FromUserID); err == nil {
			item.FromUserName = sender.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// ListFriends returns a user's friends.
func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]model.UserResponse, error) {
	ids, err := s.users.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
	}

	friends := make([]model.UserResponse, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			continue
		}
		friends = append(friends, user.ToResponse())
	}
	return friends, nil
}

func (s *FriendService) resolveError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.CodeNotFound, "The specified friend request does not exist.")
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Wrap(apperr.CodeInternal, "An unexpected error occurred.", err)
}
