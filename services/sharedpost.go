package services

import (
	"context"
	"fmt"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

type SharedPostService struct {
	shared repository.SharedPostRepo
	media  repository.MediaRepo
	users  repository.UserRepo
}

func NewSharedPostService(shared repository.SharedPostRepo, media repository.MediaRepo, users repository.UserRepo) *SharedPostService {
	return &SharedPostService{shared: shared, media: media, users: users}
}

// Share snapshots the original post content plus sharer and receiver
// display fields into a shared post record on the receiver's wall.
func (s *SharedPostService) Share(ctx context.Context, originalPostID, sharedByUserID, sharedToUserID string) (*models.SharedPost, error) {
	post, err := s.media.FindByID(ctx, originalPostID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, err
	}

	sharer, err := s.users.FindByID(ctx, sharedByUserID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: sharer user not found", ErrNotFound)
		}
		return nil, err
	}

	receiver, err := s.users.FindByID(ctx, sharedToUserID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: receiver user not found", ErrNotFound)
		}
		return nil, err
	}

	record := &models.SharedPost{
		OriginalPostID:    post.ID,
		SharedByUserID:    sharer.ID,
		SharedByUserName:  sharer.Name,
		SharedByUserImage: sharer.ImageURL,
		SharedToUserID:    receiver.ID,
		SharedToUserName:  receiver.Name,
		Description:       post.Description,
		ImageURLs:         post.ImageURLs,
		VideoURL:          post.VideoURL,
		MediaType:         post.MediaType,
		SharedAt:          time.Now().Unix(),
	}
	if err := s.shared.Insert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *SharedPostService) GetForUser(ctx context.Context, userID string) ([]models.SharedPost, error) {
	return s.shared.FindBySharedTo(ctx, userID)
}
