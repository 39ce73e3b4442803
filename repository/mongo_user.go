package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/models"
)

type mongoUserRepo struct {
	coll *mongo.Collection
}

func (r *mongoUserRepo) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, u)
}

func (r *mongoUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.User](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"email": email})
}

func (r *mongoUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return findMany[models.User](ctx, r.coll, bson.M{})
}

func (r *mongoUserRepo) Search(ctx context.Context, query string) ([]models.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
	}}
	return findMany[models.User](ctx, r.coll, filter)
}

func (r *mongoUserRepo) Update(ctx context.Context, u *models.User) error {
	return replaceByID(ctx, r.coll, u.ID, u)
}
