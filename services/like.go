package services

import (
	"context"
	"fmt"
	"sync"

	"learnhub/models"
	"learnhub/repository"
)

type LikeService struct {
	likes    repository.LikeRepo
	users    repository.UserRepo
	media    repository.MediaRepo
	notifier Notifier

	// mu serializes the check-then-act toggle within this process.
	// It does not protect against a second process instance; the
	// pair-filter delete in the repository cleans up any duplicate
	// on the next toggle.
	mu sync.Mutex
}

func NewLikeService(likes repository.LikeRepo, users repository.UserRepo, media repository.MediaRepo, notifier Notifier) *LikeService {
	return &LikeService{likes: likes, users: users, media: media, notifier: notifier}
}

// Toggle likes the post if the (post, user) pair has no like yet, or
// removes the existing like. It returns the created like, or nil with
// removed=true. A LIKE notification goes to the post owner on creation
// only, and never for self-likes.
func (s *LikeService) Toggle(ctx context.Context, postID, userID string) (*models.Like, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.likes.FindByPostAndUser(ctx, postID, userID)
	if err == nil {
		if err := s.likes.DeleteByPostAndUser(ctx, postID, userID); err != nil {
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

	post, err := s.media.FindByID(ctx, postID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, false, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, false, err
	}

	like := &models.Like{
		PostID:   post.ID,
		UserID:   user.ID,
		UserName: user.Name,
	}
	if err := s.likes.Insert(ctx, like); err != nil {
		return nil, false, err
	}

	if post.UserID != user.ID {
		if err := s.notifier.Notify(ctx, post.UserID.Hex(), userID, models.NotificationLike, user.Name+" liked your post", postID); err != nil {
			return nil, false, err
		}
	}
	return like, false, nil
}

func (s *LikeService) GetByPost(ctx context.Context, postID string) ([]models.Like, error) {
	return s.likes.FindByPost(ctx, postID)
}

func (s *LikeService) Count(ctx context.Context, postID string) (int64, error) {
	return s.likes.CountByPost(ctx, postID)
}

// HasLiked reports whether the pair has a like. Malformed ids and
// lookup failures read as false rather than an error.
func (s *LikeService) HasLiked(ctx context.Context, postID, userID string) bool {
	_, err := s.likes.FindByPostAndUser(ctx, postID, userID)
	return err == nil
}
