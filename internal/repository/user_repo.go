package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

// UserStore is the read/write surface the core needs from the user
// directory. Absent records surface as gorm.ErrRecordNotFound.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByLGA(ctx context.Context, lga string, exclude uuid.UUID) ([]model.User, error)
	ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, settings model.NotificationSettings) error
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error
}

// UserRepository handles database operations for User
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID finds a user by UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByLGA returns all users in a local-government-area, excluding
// one user (the post author during fan-out)
func (r *UserRepository) ListByLGA(ctx context.Context, lga string, exclude uuid.UUID) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("lga = ? AND id != ?", lga, exclude).
		Find(&users).Error
	return users, err
}

// ListFriendIDs returns the ids of all of a user's friends
func (r *UserRepository) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error
	return ids, err
}

// AreFriends reports whether a friendship edge exists
func (r *UserRepository) AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error
	return count > 0, err
}

// UpdateSettings replaces a user's notification settings
func (r *UserRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings model.NotificationSettings) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("notification_settings", settings).Error
}

// UpdateFCMToken stores a user's web-push registration token
func (r *UserRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("fcm_token", token).Error
}
