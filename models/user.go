package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`
	AuthProvider string             `bson:"authProvider" json:"authProvider"` // "local" or "google"
	Role         string             `bson:"role" json:"role"`                 // "user", "admin"
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
}
