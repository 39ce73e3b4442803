package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"learnhub/models"
	"learnhub/repository"
)

// WebPushService delivers browser push messages for new notifications
// and manages per-user subscriptions.
type WebPushService struct {
	subs            repository.PushSubRepo
	vapidPublicKey  string
	vapidPrivateKey string
}

func NewWebPushService(subs repository.PushSubRepo, vapidPublicKey, vapidPrivateKey string) *WebPushService {
	return &WebPushService{
		subs:            subs,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
	}
}

func (s *WebPushService) PublicKey() string {
	return s.vapidPublicKey
}

func (s *WebPushService) Subscribe(ctx context.Context, userID string, sub webpush.Subscription) error {
	record := &models.PushSubscription{
		UserID: mustObjectID(userID),
		Sub:    sub,
	}
	if record.UserID.IsZero() {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return s.subs.Upsert(ctx, record)
}

// Send pushes to the user's subscription in the background. Users
// without a subscription and delivery failures are only logged; the
// notification itself is already persisted.
func (s *WebPushService) Send(userID, title, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		sub, err := s.subs.FindByUser(ctx, userID)
		if err != nil {
			if err != repository.ErrNoDocument {
				log.Printf("push: lookup subscription for %s: %v", userID, err)
			}
			return
		}

		payload, err := json.Marshal(map[string]string{
			"title": title,
			"body":  body,
		})
		if err != nil {
			log.Printf("push: marshal payload: %v", err)
			return
		}

		resp, err := webpush.SendNotification(payload, &sub.Sub, &webpush.Options{
			VAPIDPublicKey:  s.vapidPublicKey,
			VAPIDPrivateKey: s.vapidPrivateKey,
			TTL:             60,
		})
		if err != nil {
			log.Printf("push: send to %s: %v", userID, err)
			return
		}
		resp.Body.Close()
	}()
}
