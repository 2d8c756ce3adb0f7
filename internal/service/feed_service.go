package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// FeedService handles posts, likes and comments
type FeedService struct {
	posts repository.PostStore
	users repository.UserStore
}

func NewFeedService(posts repository.PostStore, users repository.UserStore) *FeedService {
	return &FeedService{posts: posts, users: users}
}

// CreatePost writes a post stamped with the author's
// local-government-area so it can be fanned out to neighbors.
func (s *FeedService) CreatePost(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeNotFound, "The author does not exist.", err)
	}

	post := &model.Post{
		UserID: userID,
		Text:   text,
		LGA:    author.LGA,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to create post.", err)
	}
	return post, nil
}

// LikePost records a like and returns the pre and post snapshots so
// the caller can publish the update. Liking twice is a no-op.
func (s *FeedService) LikePost(ctx context.Context, postID, userID uuid.UUID) (before, after *model.Post, err error) {
	before, err = s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeNotFound, "The specified post does not exist.", err)
	}
	after, err = s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInternal, "Failed to like post.", err)
	}
	return before, after, nil
}

func (s *FeedService) CreateComment(ctx context.Context, postID, userID uuid.UUID, text string) (*model.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, apperr.Wrap(apperr.CodeNotFound, "The specified post does not exist.", err)
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.posts.CreateComment(ctx, comment); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to create comment.", err)
	}
	return comment, nil
}
