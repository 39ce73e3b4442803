package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/models"
)

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

func (r *mongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, n)
}

func (r *mongoNotificationRepo) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Notification](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoNotificationRepo) FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	objID, err := oid(recipientID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Notification](ctx, r.coll, bson.M{"recipientId": objID}, newestFirst)
}

func (r *mongoNotificationRepo) FindUnreadByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	objID, err := oid(recipientID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Notification](ctx, r.coll, bson.M{"recipientId": objID, "isRead": false}, newestFirst)
}

func (r *mongoNotificationRepo) CountUnreadByRecipient(ctx context.Context, recipientID string) (int64, error) {
	objID, err := oid(recipientID)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"recipientId": objID, "isRead": false})
}

func (r *mongoNotificationRepo) Update(ctx context.Context, n *models.Notification) error {
	return replaceByID(ctx, r.coll, n.ID, n)
}
