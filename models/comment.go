package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	UserImage string             `bson:"userImage" json:"userImage"`
	Content   string             `bson:"content" json:"content"`
	IsEdited  bool               `bson:"isEdited" json:"isEdited"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

type CommentReply struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommentID primitive.ObjectID `bson:"commentId" json:"commentId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	UserImage string             `bson:"userImage" json:"userImage"`
	Content   string             `bson:"content" json:"content"`
	IsEdited  bool               `bson:"isEdited" json:"isEdited"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
