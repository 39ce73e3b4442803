package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnhub/models"
)

type mongoPushSubRepo struct {
	coll *mongo.Collection
}

// Upsert keeps one subscription per user: update if exists, insert if not.
func (r *mongoPushSubRepo) Upsert(ctx context.Context, s *models.PushSubscription) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"userId": s.UserID},
		bson.M{"$set": bson.M{"userId": s.UserID, "sub": s.Sub}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *mongoPushSubRepo) FindByUser(ctx context.Context, userID string) (*models.PushSubscription, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findOne[models.PushSubscription](ctx, r.coll, bson.M{"userId": objID})
}
