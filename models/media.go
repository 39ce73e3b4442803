package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)

type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	ImageURLs   []string           `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	MediaType   string             `bson:"mediaType" json:"mediaType"` // IMAGE or VIDEO
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}
