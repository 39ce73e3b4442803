package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// mustObjectID parses a hex id, returning the zero ObjectID when the
// input is malformed. Callers treat the zero id as "no such entity".
func mustObjectID(id string) primitive.ObjectID {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}
