package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

type SavedPostService struct {
	saved repository.SavedPostRepo
	media repository.MediaRepo

	mu sync.Mutex
}

func NewSavedPostService(saved repository.SavedPostRepo, media repository.MediaRepo) *SavedPostService {
	return &SavedPostService{saved: saved, media: media}
}

// Toggle saves the post for the user, or unsaves it when already
// saved. Returns the record, or nil with removed=true.
func (s *SavedPostService) Toggle(ctx context.Context, userID, postID string) (*models.SavedPost, bool, error) {
	post, err := s.media.FindByID(ctx, postID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, false, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.saved.FindByUserAndPost(ctx, userID, postID); err == nil {
		if err := s.saved.DeleteByUserAndPost(ctx, userID, postID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	} else if err != repository.ErrNoDocument {
		return nil, false, err
	}

	record := &models.SavedPost{
		UserID:  mustObjectID(userID),
		PostID:  post.ID,
		SavedAt: time.Now().Unix(),
	}
	if record.UserID.IsZero() {
		return nil, false, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err := s.saved.Insert(ctx, record); err != nil {
		return nil, false, err
	}
	return record, false, nil
}

// GetPosts resolves the user's saved records into post documents.
func (s *SavedPostService) GetPosts(ctx context.Context, userID string) ([]models.Media, error) {
	records, err := s.saved.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.PostID.Hex())
	}
	return s.media.FindByIDs(ctx, ids)
}

func (s *SavedPostService) IsSaved(ctx context.Context, userID, postID string) bool {
	_, err := s.saved.FindByUserAndPost(ctx, userID, postID)
	return err == nil
}

func (s *SavedPostService) Count(ctx context.Context, userID string) (int64, error) {
	records, err := s.saved.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}
