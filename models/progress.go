package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MonthYear struct {
	Month int `bson:"month" json:"month"`
	Year  int `bson:"year" json:"year"`
}

type ProgressUpdate struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	Name                string             `bson:"name" json:"name"`
	IssuingOrganization string             `bson:"issuingOrganization" json:"issuingOrganization"`
	IssueDate           MonthYear          `bson:"issueDate" json:"issueDate"`
	ExpireDate          *MonthYear         `bson:"expireDate,omitempty" json:"expireDate,omitempty"`
	CredentialID        string             `bson:"credentialId,omitempty" json:"credentialId,omitempty"`
	CredentialURL       string             `bson:"credentialUrl,omitempty" json:"credentialUrl,omitempty"`
	MediaURL            string             `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Skills              []string           `bson:"skills" json:"skills"`
}
