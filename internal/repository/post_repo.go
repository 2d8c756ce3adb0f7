package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

// PostStore covers the post and comment writes the handlers perform
// and the post read the comment trigger needs.
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	AddLike(ctx context.Context, postID, userID uuid.UUID) (*model.Post, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
}

// PostRepository handles database operations for Post and Comment
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID finds a post by id
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// AddLike adds userID to the post's liked-by set and returns the
// updated post. Liking twice is a no-op.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", postID).First(&post).Error; err != nil {
			return err
		}
		for _, id := range post.LikedBy {
			if id == userID {
				return nil
			}
		}
		post.LikedBy = append(post.LikedBy, userID)
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Update("liked_by", post.LikedBy).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateComment inserts a comment
func (r *PostRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
