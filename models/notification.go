package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	NotificationLike    = "LIKE"
	NotificationComment = "COMMENT"
	NotificationFollow  = "FOLLOW"
)

// Notification carries sender name and image snapshots resolved at
// creation time so the feed renders without extra user lookups.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientID    primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	SenderID       primitive.ObjectID `bson:"senderId" json:"senderId"`
	SenderName     string             `bson:"senderName" json:"senderName"`
	SenderImageURL string             `bson:"senderImageUrl" json:"senderImageUrl"`
	Type           string             `bson:"type" json:"type"` // LIKE, COMMENT, FOLLOW
	Content        string             `bson:"content" json:"content"`
	IsRead         bool               `bson:"isRead" json:"isRead"`
	CreatedAt      int64              `bson:"createdAt" json:"createdAt"`
	PostID         string             `bson:"postId,omitempty" json:"postId,omitempty"` // set for LIKE and COMMENT
}
