package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SavedPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  primitive.ObjectID `bson:"userId" json:"userId"`
	PostID  primitive.ObjectID `bson:"postId" json:"postId"`
	SavedAt int64              `bson:"savedAt" json:"savedAt"`
}

// SharedPost snapshots the original post content plus sharer and
// receiver display fields at share time.
type SharedPost struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	OriginalPostID    primitive.ObjectID `bson:"originalPostId" json:"originalPostId"`
	SharedByUserID    primitive.ObjectID `bson:"sharedByUserId" json:"sharedByUserId"`
	SharedByUserName  string             `bson:"sharedByUserName" json:"sharedByUserName"`
	SharedByUserImage string             `bson:"sharedByUserImage" json:"sharedByUserImage"`

	SharedToUserID   primitive.ObjectID `bson:"sharedToUserId" json:"sharedToUserId"`
	SharedToUserName string             `bson:"sharedToUserName" json:"sharedToUserName"`

	Description string   `bson:"description" json:"description"`
	ImageURLs   []string `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	VideoURL    string   `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	MediaType   string   `bson:"mediaType" json:"mediaType"`
	SharedAt    int64    `bson:"sharedAt" json:"sharedAt"`
}
