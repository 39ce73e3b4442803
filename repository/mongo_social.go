package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/models"
)

type mongoLikeRepo struct {
	coll *mongo.Collection
}

func (r *mongoLikeRepo) Insert(ctx context.Context, l *models.Like) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, l)
}

func (r *mongoLikeRepo) FindByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error) {
	filter, err := pairFilter("postId", postID, "userId", userID)
	if err != nil {
		return nil, err
	}
	return findOne[models.Like](ctx, r.coll, filter)
}

// DeleteByPostAndUser removes every like for the pair, not a single
// document, so a duplicate slipped in by another process is cleaned up
// by the next toggle.
func (r *mongoLikeRepo) DeleteByPostAndUser(ctx context.Context, postID, userID string) error {
	filter, err := pairFilter("postId", postID, "userId", userID)
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

func (r *mongoLikeRepo) FindByPost(ctx context.Context, postID string) ([]models.Like, error) {
	objID, err := oid(postID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Like](ctx, r.coll, bson.M{"postId": objID})
}

func (r *mongoLikeRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	return countBy(ctx, r.coll, "postId", postID)
}

func (r *mongoLikeRepo) DeleteByPost(ctx context.Context, postID string) error {
	return deleteAllBy(ctx, r.coll, "postId", postID)
}

type mongoCommentLikeRepo struct {
	coll *mongo.Collection
}

func (r *mongoCommentLikeRepo) Insert(ctx context.Context, l *models.CommentLike) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, l)
}

func (r *mongoCommentLikeRepo) FindByCommentAndUser(ctx context.Context, commentID, userID string) (*models.CommentLike, error) {
	filter, err := pairFilter("commentId", commentID, "userId", userID)
	if err != nil {
		return nil, err
	}
	return findOne[models.CommentLike](ctx, r.coll, filter)
}

func (r *mongoCommentLikeRepo) DeleteByCommentAndUser(ctx context.Context, commentID, userID string) error {
	filter, err := pairFilter("commentId", commentID, "userId", userID)
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

func (r *mongoCommentLikeRepo) FindByComment(ctx context.Context, commentID string) ([]models.CommentLike, error) {
	objID, err := oid(commentID)
	if err != nil {
		return nil, err
	}
	return findMany[models.CommentLike](ctx, r.coll, bson.M{"commentId": objID})
}

func (r *mongoCommentLikeRepo) CountByComment(ctx context.Context, commentID string) (int64, error) {
	return countBy(ctx, r.coll, "commentId", commentID)
}

func (r *mongoCommentLikeRepo) DeleteByComment(ctx context.Context, commentID string) error {
	return deleteAllBy(ctx, r.coll, "commentId", commentID)
}

type mongoCommentRepo struct {
	coll *mongo.Collection
}

func (r *mongoCommentRepo) Insert(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, c)
}

func (r *mongoCommentRepo) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Comment](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoCommentRepo) FindByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	objID, err := oid(postID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Comment](ctx, r.coll, bson.M{"postId": objID})
}

func (r *mongoCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	return countBy(ctx, r.coll, "postId", postID)
}

func (r *mongoCommentRepo) Update(ctx context.Context, c *models.Comment) error {
	return replaceByID(ctx, r.coll, c.ID, c)
}

func (r *mongoCommentRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type mongoReplyRepo struct {
	coll *mongo.Collection
}

func (r *mongoReplyRepo) Insert(ctx context.Context, reply *models.CommentReply) error {
	if reply.ID.IsZero() {
		reply.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, reply)
}

func (r *mongoReplyRepo) FindByID(ctx context.Context, id string) (*models.CommentReply, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.CommentReply](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoReplyRepo) FindByComment(ctx context.Context, commentID string) ([]models.CommentReply, error) {
	objID, err := oid(commentID)
	if err != nil {
		return nil, err
	}
	return findMany[models.CommentReply](ctx, r.coll, bson.M{"commentId": objID})
}

func (r *mongoReplyRepo) CountByComment(ctx context.Context, commentID string) (int64, error) {
	return countBy(ctx, r.coll, "commentId", commentID)
}

func (r *mongoReplyRepo) Update(ctx context.Context, reply *models.CommentReply) error {
	return replaceByID(ctx, r.coll, reply.ID, reply)
}

func (r *mongoReplyRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoReplyRepo) DeleteByComment(ctx context.Context, commentID string) error {
	return deleteAllBy(ctx, r.coll, "commentId", commentID)
}

type mongoFollowRepo struct {
	coll *mongo.Collection
}

func (r *mongoFollowRepo) Insert(ctx context.Context, f *models.Follow) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, f)
}

func (r *mongoFollowRepo) FindPair(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	filter, err := pairFilter("followerId", followerID, "followingId", followingID)
	if err != nil {
		return nil, err
	}
	return findOne[models.Follow](ctx, r.coll, filter)
}

func (r *mongoFollowRepo) DeletePair(ctx context.Context, followerID, followingID string) error {
	filter, err := pairFilter("followerId", followerID, "followingId", followingID)
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

func (r *mongoFollowRepo) FindFollowers(ctx context.Context, followingID string) ([]models.Follow, error) {
	objID, err := oid(followingID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Follow](ctx, r.coll, bson.M{"followingId": objID})
}

func (r *mongoFollowRepo) FindFollowing(ctx context.Context, followerID string) ([]models.Follow, error) {
	objID, err := oid(followerID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Follow](ctx, r.coll, bson.M{"followerId": objID})
}

func (r *mongoFollowRepo) CountFollowers(ctx context.Context, followingID string) (int64, error) {
	return countBy(ctx, r.coll, "followingId", followingID)
}

func (r *mongoFollowRepo) CountFollowing(ctx context.Context, followerID string) (int64, error) {
	return countBy(ctx, r.coll, "followerId", followerID)
}

func pairFilter(keyA, idA, keyB, idB string) (bson.M, error) {
	objA, err := oid(idA)
	if err != nil {
		return nil, err
	}
	objB, err := oid(idB)
	if err != nil {
		return nil, err
	}
	return bson.M{keyA: objA, keyB: objB}, nil
}

func countBy(ctx context.Context, coll *mongo.Collection, key, id string) (int64, error) {
	objID, err := oid(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return coll.CountDocuments(ctx, bson.M{key: objID})
}

func deleteAllBy(ctx context.Context, coll *mongo.Collection, key, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err = coll.DeleteMany(ctx, bson.M{key: objID})
	return err
}
