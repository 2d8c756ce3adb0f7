package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// FriendRequestStore exposes friend-request reads and the two
// transactional transitions out of pending. Accept and Decline return
// the request plus whether this call actually applied the transition;
// a request that already left pending is reported as not applied, not
// as an error.
type FriendRequestStore interface {
	Create(ctx context.Context, req *model.FriendRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.FriendRequest, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.FriendRequest, error)
	HasPending(ctx context.Context, userID, otherID uuid.UUID) (bool, error)
	Accept(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error)
	Decline(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error)
}

// FriendRequestRepository handles database operations for
// FriendRequest and the friendship edges derived from it
type FriendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) *FriendRequestRepository {
	return &FriendRequestRepository{db: db}
}

// Create inserts a new pending friend request
func (r *FriendRequestRepository) Create(ctx context.Context, req *model.FriendRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID finds a friend request by id
func (r *FriendRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListIncoming returns pending requests addressed to a user
func (r *FriendRequestRepository) ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, model.FriendRequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// HasPending reports whether a pending request exists between the
// unordered pair, in either direction
func (r *FriendRequestRepository) HasPending(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FriendRequest{}).
		Where("((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)) AND status = ?",
			userID, otherID, otherID, userID, model.FriendRequestPending).
		Count(&count).Error
	return count > 0, err
}

// Accept applies pending→accepted and inserts both friendship edges in
// a single transaction, so no concurrent reader can observe the
// request accepted with only one side of the friendship in place.
// The request row is locked for the duration; a concurrent
// double-accept serializes and the loser sees a non-pending request.
func (r *FriendRequestRepository) Accept(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error) {
	return r.resolve(ctx, requestID, callerID, model.FriendRequestAccepted, true)
}

// Decline applies pending→declined. Same transaction shape as Accept,
// without friendship edges.
func (r *FriendRequestRepository) Decline(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error) {
	return r.resolve(ctx, requestID, callerID, model.FriendRequestDeclined, false)
}

func (r *FriendRequestRepository) resolve(ctx context.Context, requestID, callerID uuid.UUID, to model.FriendRequestStatus, makeFriends bool) (*model.FriendRequest, bool, error) {
	var req model.FriendRequest
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&req).Error; err != nil {
			return err
		}

		if req.ToUserID != callerID {
			return apperr.New(apperr.CodePermissionDenied, "You are not authorized to resolve this request.")
		}

		if !req.IsPending() {
			// Terminal state, nothing to do. The caller logs and
			// reports success.
			return nil
		}

		if err := tx.Model(&model.FriendRequest{}).
			Where("id = ?", requestID).
			Update("status", to).Error; err != nil {
			return err
		}
		req.Status = to

		if makeFriends {
			if err := r.insertFriendship(tx, req.FromUserID, req.ToUserID); err != nil {
				return err
			}
			if err := r.insertFriendship(tx, req.ToUserID, req.FromUserID); err != nil {
				return err
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &req, applied, nil
}

// insertFriendship adds one direction of the edge with set-union
// semantics: re-inserting an existing pair is a no-op.
func (r *FriendRequestRepository) insertFriendship(tx *gorm.DB, userID, friendID uuid.UUID) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Friendship{UserID: userID, FriendID: friendID}).Error
}
