package services

import (
	"context"
	"testing"

	"learnhub/models"
)

func TestNotifySnapshotsSender(t *testing.T) {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()

	sender := seedUser(users, "Bob")
	sender.ImageURL = "https://cdn.example.com/bob.jpg"
	recipient := seedUser(users, "Alice")

	svc := NewNotificationService(notifications, users, nil)
	ctx := context.Background()

	err := svc.Notify(ctx, recipient.ID.Hex(), sender.ID.Hex(), models.NotificationComment, "Bob commented on your post", "64f000000000000000000001")
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	got, _ := notifications.FindByRecipient(ctx, recipient.ID.Hex())
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	n := got[0]
	if n.SenderName != "Bob" || n.SenderImageURL != "https://cdn.example.com/bob.jpg" {
		t.Errorf("sender snapshot wrong: %q %q", n.SenderName, n.SenderImageURL)
	}
	if n.IsRead {
		t.Error("new notification should be unread")
	}
}

func TestMarkAllReadZeroesUnreadCount(t *testing.T) {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()

	sender := seedUser(users, "Bob")
	recipient := seedUser(users, "Alice")

	svc := NewNotificationService(notifications, users, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.Notify(ctx, recipient.ID.Hex(), sender.ID.Hex(), models.NotificationLike, "Bob liked your post", ""); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
	}

	count, _ := svc.UnreadCount(ctx, recipient.ID.Hex())
	if count != 3 {
		t.Fatalf("expected 3 unread, got %d", count)
	}

	if err := svc.MarkAllRead(ctx, recipient.ID.Hex()); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}

	count, _ = svc.UnreadCount(ctx, recipient.ID.Hex())
	if count != 0 {
		t.Fatalf("expected 0 unread after mark-all-read, got %d", count)
	}

	all, _ := svc.GetForUser(ctx, recipient.ID.Hex())
	if len(all) != 3 {
		t.Fatalf("mark-all-read should not delete notifications, got %d", len(all))
	}
}

func TestMarkReadUnknownIDIsNoop(t *testing.T) {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()

	svc := NewNotificationService(notifications, users, nil)

	if err := svc.MarkRead(context.Background(), "64f000000000000000000009"); err != nil {
		t.Fatalf("marking unknown notification should be a no-op, got %v", err)
	}
}

func TestMarkReadFlipsSingleNotification(t *testing.T) {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()

	sender := seedUser(users, "Bob")
	recipient := seedUser(users, "Alice")

	svc := NewNotificationService(notifications, users, nil)
	ctx := context.Background()

	svc.Notify(ctx, recipient.ID.Hex(), sender.ID.Hex(), models.NotificationLike, "Bob liked your post", "")
	svc.Notify(ctx, recipient.ID.Hex(), sender.ID.Hex(), models.NotificationFollow, "Bob started following you", "")

	unread, _ := svc.GetUnread(ctx, recipient.ID.Hex())
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread, got %d", len(unread))
	}

	if err := svc.MarkRead(ctx, unread[0].ID.Hex()); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	count, _ := svc.UnreadCount(ctx, recipient.ID.Hex())
	if count != 1 {
		t.Fatalf("expected 1 unread after marking one read, got %d", count)
	}
}
