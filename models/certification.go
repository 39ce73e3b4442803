package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Certification struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	Name                string             `bson:"name" json:"name"`
	Organization        string             `bson:"organization" json:"organization"`
	IssueDate           string             `bson:"issueDate,omitempty" json:"issueDate,omitempty"` // "2006-01-02"
	ExpiryDate          string             `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	CredentialID        string             `bson:"credentialId,omitempty" json:"credentialId,omitempty"`
	CredentialURL       string             `bson:"credentialUrl,omitempty" json:"credentialUrl,omitempty"`
	Skills              []string           `bson:"skills" json:"skills"`
	CertificateImageURL string             `bson:"certificateImageUrl,omitempty" json:"certificateImageUrl,omitempty"`
}
