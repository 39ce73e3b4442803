package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnhub/models"
)

type mongoMediaRepo struct {
	coll *mongo.Collection
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *mongoMediaRepo) Insert(ctx context.Context, m *models.Media) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, m)
}

func (r *mongoMediaRepo) FindByID(ctx context.Context, id string) (*models.Media, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Media](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoMediaRepo) FindAll(ctx context.Context) ([]models.Media, error) {
	return findMany[models.Media](ctx, r.coll, bson.M{}, newestFirst)
}

func (r *mongoMediaRepo) FindByUser(ctx context.Context, userID string) ([]models.Media, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Media](ctx, r.coll, bson.M{"userId": objID}, newestFirst)
}

func (r *mongoMediaRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Media, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return nil, nil
	}
	return findMany[models.Media](ctx, r.coll, bson.M{"_id": bson.M{"$in": objIDs}}, newestFirst)
}

func (r *mongoMediaRepo) Update(ctx context.Context, m *models.Media) error {
	return replaceByID(ctx, r.coll, m.ID, m)
}

func (r *mongoMediaRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
