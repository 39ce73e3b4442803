package services

import (
	"context"
	"fmt"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

type ReplyService struct {
	replies  repository.ReplyRepo
	comments repository.CommentRepo
	users    repository.UserRepo
}

func NewReplyService(replies repository.ReplyRepo, comments repository.CommentRepo, users repository.UserRepo) *ReplyService {
	return &ReplyService{replies: replies, comments: comments, users: users}
}

// Create validates the author and the parent comment, then attaches
// the reply with the author's display fields snapshotted.
func (s *ReplyService) Create(ctx context.Context, commentID, userID, content string) (*models.CommentReply, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return nil, err
	}

	reply := &models.CommentReply{
		CommentID: comment.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserImage: user.ImageURL,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.replies.Insert(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ReplyService) Update(ctx context.Context, replyID, content string) (*models.CommentReply, error) {
	reply, err := s.replies.FindByID(ctx, replyID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: reply not found", ErrNotFound)
		}
		return nil, err
	}
	reply.Content = content
	reply.IsEdited = true
	if err := s.replies.Update(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ReplyService) Delete(ctx context.Context, replyID string) error {
	err := s.replies.Delete(ctx, replyID)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: reply not found", ErrNotFound)
	}
	return err
}

func (s *ReplyService) GetByComment(ctx context.Context, commentID string) ([]models.CommentReply, error) {
	return s.replies.FindByComment(ctx, commentID)
}

func (s *ReplyService) Count(ctx context.Context, commentID string) (int64, error) {
	return s.replies.CountByComment(ctx, commentID)
}
