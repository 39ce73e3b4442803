package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

// Notifier is the surface other services use to fan out events. postID
// is empty for FOLLOW notifications.
type Notifier interface {
	Notify(ctx context.Context, recipientID, senderID, notifType, content, postID string) error
}

// PushSender delivers a best-effort push message to a user's browser.
type PushSender interface {
	Send(userID, title, body string)
}

type NotificationService struct {
	notifications repository.NotificationRepo
	users         repository.UserRepo
	push          PushSender
}

// NewNotificationService builds the service; push may be nil when web
// push is not configured.
func NewNotificationService(notifications repository.NotificationRepo, users repository.UserRepo, push PushSender) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, push: push}
}

// Notify persists a notification with sender display fields snapshotted
// at creation time, then fires an optional web push. The push is
// best-effort: delivery failures are logged by the sender, never
// surfaced.
func (s *NotificationService) Notify(ctx context.Context, recipientID, senderID, notifType, content, postID string) error {
	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return fmt.Errorf("%w: sender not found", ErrNotFound)
		}
		return err
	}

	notification := &models.Notification{
		RecipientID:    mustObjectID(recipientID),
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		SenderImageURL: sender.ImageURL,
		Type:           notifType,
		Content:        content,
		IsRead:         false,
		CreatedAt:      time.Now().Unix(),
		PostID:         postID,
	}
	if notification.RecipientID.IsZero() {
		return fmt.Errorf("%w: recipient not found", ErrNotFound)
	}

	if err := s.notifications.Insert(ctx, notification); err != nil {
		return err
	}

	if s.push != nil {
		s.push.Send(recipientID, notifTitle(notifType), content)
	}
	return nil
}

func (s *NotificationService) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.FindByRecipient(ctx, userID)
}

func (s *NotificationService) GetUnread(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.FindUnreadByRecipient(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.CountUnreadByRecipient(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if err == repository.ErrNoDocument {
			// marking an unknown notification read is a no-op
			return nil
		}
		return err
	}
	notification.IsRead = true
	return s.notifications.Update(ctx, notification)
}

// MarkAllRead fetches the unread list and flips each document. There
// is no batch write: a notification created concurrently may stay
// unread.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	unread, err := s.notifications.FindUnreadByRecipient(ctx, userID)
	if err != nil {
		return err
	}
	for i := range unread {
		unread[i].IsRead = true
		if err := s.notifications.Update(ctx, &unread[i]); err != nil {
			log.Printf("MarkAllRead: update %s failed: %v", unread[i].ID.Hex(), err)
		}
	}
	return nil
}

func notifTitle(notifType string) string {
	switch notifType {
	case models.NotificationLike:
		return "New like"
	case models.NotificationComment:
		return "New comment"
	case models.NotificationFollow:
		return "New follower"
	default:
		return "Notification"
	}
}
