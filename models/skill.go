package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Skill struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Name   string             `bson:"name" json:"name"`
}
