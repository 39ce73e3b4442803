package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Like records one user liking one post. UserName is a snapshot taken
// at like time and is not refreshed on profile changes.
type Like struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID   primitive.ObjectID `bson:"postId" json:"postId"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	UserName string             `bson:"userName" json:"userName"`
}

type CommentLike struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommentID primitive.ObjectID `bson:"commentId" json:"commentId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
}
