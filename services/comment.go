package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

type CommentService struct {
	comments     repository.CommentRepo
	replies      repository.ReplyRepo
	commentLikes repository.CommentLikeRepo
	users        repository.UserRepo
	media        repository.MediaRepo
	notifier     Notifier
}

func NewCommentService(comments repository.CommentRepo, replies repository.ReplyRepo, commentLikes repository.CommentLikeRepo, users repository.UserRepo, media repository.MediaRepo, notifier Notifier) *CommentService {
	return &CommentService{
		comments:     comments,
		replies:      replies,
		commentLikes: commentLikes,
		users:        users,
		media:        media,
		notifier:     notifier,
	}
}

// Create validates the author and the post, snapshots the author's
// name and image onto the comment, and notifies the post owner unless
// they commented on their own post.
func (s *CommentService) Create(ctx context.Context, postID, userID, content string) (*models.Comment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	post, err := s.media.FindByID(ctx, postID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserImage: user.ImageURL,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != user.ID {
		if err := s.notifier.Notify(ctx, post.UserID.Hex(), userID, models.NotificationComment, user.Name+" commented on your post", postID); err != nil {
			return nil, err
		}
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, content string) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return nil, err
	}
	comment.Content = content
	comment.IsEdited = true
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment along with its replies and likes.
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		if err == repository.ErrNoDocument {
			return fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return err
	}
	if err := s.replies.DeleteByComment(ctx, commentID); err != nil {
		log.Printf("delete replies of comment %s: %v", commentID, err)
	}
	if err := s.commentLikes.DeleteByComment(ctx, commentID); err != nil {
		log.Printf("delete likes of comment %s: %v", commentID, err)
	}
	return nil
}

func (s *CommentService) GetByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) Count(ctx context.Context, postID string) (int64, error) {
	return s.comments.CountByPost(ctx, postID)
}
