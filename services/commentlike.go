package services

import (
	"context"
	"fmt"
	"sync"

	"learnhub/models"
	"learnhub/repository"
)

// CommentLikeService mirrors the post like toggle for comments. No
// notification is emitted for comment likes.
type CommentLikeService struct {
	likes    repository.CommentLikeRepo
	comments repository.CommentRepo
	users    repository.UserRepo

	mu sync.Mutex
}

func NewCommentLikeService(likes repository.CommentLikeRepo, comments repository.CommentRepo, users repository.UserRepo) *CommentLikeService {
	return &CommentLikeService{likes: likes, comments: comments, users: users}
}

func (s *CommentLikeService) Toggle(ctx context.Context, commentID, userID string) (*models.CommentLike, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.likes.FindByCommentAndUser(ctx, commentID, userID)
	if err == nil {
		if err := s.likes.DeleteByCommentAndUser(ctx, commentID, userID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err != repository.ErrNoDocument {
		return nil, false, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, false, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, false, err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, false, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return nil, false, err
	}

	like := &models.CommentLike{
		CommentID: comment.ID,
		UserID:    user.ID,
		UserName:  user.Name,
	}
	if err := s.likes.Insert(ctx, like); err != nil {
		return nil, false, err
	}
	return like, false, nil
}

func (s *CommentLikeService) GetByComment(ctx context.Context, commentID string) ([]models.CommentLike, error) {
	return s.likes.FindByComment(ctx, commentID)
}

func (s *CommentLikeService) Count(ctx context.Context, commentID string) (int64, error) {
	return s.likes.CountByComment(ctx, commentID)
}

func (s *CommentLikeService) HasLiked(ctx context.Context, commentID, userID string) bool {
	_, err := s.likes.FindByCommentAndUser(ctx, commentID, userID)
	return err == nil
}
