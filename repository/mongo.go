package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

// NewMongoRepos wires every repository against collections of the
// given database.
func NewMongoRepos(db *mongo.Database) *Repos {
	return &Repos{
		Users:          &mongoUserRepo{coll: db.Collection("users")},
		Media:          &mongoMediaRepo{coll: db.Collection("posts")},
		Likes:          &mongoLikeRepo{coll: db.Collection("likes")},
		CommentLikes:   &mongoCommentLikeRepo{coll: db.Collection("comment_likes")},
		Comments:       &mongoCommentRepo{coll: db.Collection("comments")},
		Replies:        &mongoReplyRepo{coll: db.Collection("comment_replies")},
		Follows:        &mongoFollowRepo{coll: db.Collection("follows")},
		Notifications:  &mongoNotificationRepo{coll: db.Collection("notifications")},
		SavedPosts:     &mongoSavedPostRepo{coll: db.Collection("savedposts")},
		SharedPosts:    &mongoSharedPostRepo{coll: db.Collection("sharedposts")},
		LearningPlans:  &mongoLearningPlanRepo{coll: db.Collection("learningplans")},
		Courses:        &mongoCourseRepo{coll: db.Collection("courses")},
		Certifications: &mongoCertificationRepo{coll: db.Collection("certifications")},
		Skills:         &mongoSkillRepo{coll: db.Collection("skills")},
		Progress:       &mongoProgressRepo{coll: db.Collection("progress")},
		PushSubs:       &mongoPushSubRepo{coll: db.Collection("subscriptions")},
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// oid parses a hex object id; a malformed id matches nothing.
func oid(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNoDocument
	}
	return objID, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := coll.InsertOne(ctx, doc)
	return err
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc interface{}) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
