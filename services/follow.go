package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

type FollowService struct {
	follows  repository.FollowRepo
	users    repository.UserRepo
	notifier Notifier

	mu sync.Mutex
}

func NewFollowService(follows repository.FollowRepo, users repository.UserRepo, notifier Notifier) *FollowService {
	return &FollowService{follows: follows, users: users, notifier: notifier}
}

// Follow creates the (follower, following) record. Self-follows are a
// validation error, duplicates a conflict. The followee gets a FOLLOW
// notification.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("%w: users cannot follow themselves", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.follows.FindPair(ctx, followerID, followingID); err == nil {
		return nil, fmt.Errorf("%w: already following this user", ErrConflict)
	} else if err != repository.ErrNoDocument {
		return nil, err
	}

	follower, err := s.users.FindByID(ctx, followerID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: follower not found", ErrNotFound)
		}
		return nil, err
	}

	following, err := s.users.FindByID(ctx, followingID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user to follow not found", ErrNotFound)
		}
		return nil, err
	}

	follow := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
		CreatedAt:   time.Now().Unix(),
	}
	if err := s.follows.Insert(ctx, follow); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, followingID, followerID, models.NotificationFollow, follower.Name+" started following you", ""); err != nil {
		return nil, err
	}
	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID string) error {
	err := s.follows.DeletePair(ctx, followerID, followingID)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: not following this user", ErrConflict)
	}
	return err
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	_, err := s.follows.FindPair(ctx, followerID, followingID)
	if err == repository.ErrNoDocument {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *FollowService) FollowersCount(ctx context.Context, userID string) (int64, error) {
	return s.follows.CountFollowers(ctx, userID)
}

func (s *FollowService) FollowingCount(ctx context.Context, userID string) (int64, error) {
	return s.follows.CountFollowing(ctx, userID)
}
