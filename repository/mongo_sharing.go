package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnhub/models"
)

type mongoSavedPostRepo struct {
	coll *mongo.Collection
}

func (r *mongoSavedPostRepo) Insert(ctx context.Context, s *models.SavedPost) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, s)
}

func (r *mongoSavedPostRepo) FindByUserAndPost(ctx context.Context, userID, postID string) (*models.SavedPost, error) {
	filter, err := pairFilter("userId", userID, "postId", postID)
	if err != nil {
		return nil, err
	}
	return findOne[models.SavedPost](ctx, r.coll, filter)
}

func (r *mongoSavedPostRepo) DeleteByUserAndPost(ctx context.Context, userID, postID string) error {
	filter, err := pairFilter("userId", userID, "postId", postID)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoSavedPostRepo) FindByUser(ctx context.Context, userID string) ([]models.SavedPost, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	sort := options.Find().SetSort(bson.D{{Key: "savedAt", Value: -1}})
	return findMany[models.SavedPost](ctx, r.coll, bson.M{"userId": objID}, sort)
}

func (r *mongoSavedPostRepo) DeleteByPost(ctx context.Context, postID string) error {
	return deleteAllBy(ctx, r.coll, "postId", postID)
}

type mongoSharedPostRepo struct {
	coll *mongo.Collection
}

func (r *mongoSharedPostRepo) Insert(ctx context.Context, s *models.SharedPost) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, s)
}

func (r *mongoSharedPostRepo) FindBySharedTo(ctx context.Context, userID string) ([]models.SharedPost, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	sort := options.Find().SetSort(bson.D{{Key: "sharedAt", Value: -1}})
	return findMany[models.SharedPost](ctx, r.coll, bson.M{"sharedToUserId": objID}, sort)
}

func (r *mongoSharedPostRepo) DeleteByOriginalPost(ctx context.Context, postID string) error {
	return deleteAllBy(ctx, r.coll, "originalPostId", postID)
}
