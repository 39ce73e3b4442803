package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/models"
)

type mongoLearningPlanRepo struct {
	coll *mongo.Collection
}

func (r *mongoLearningPlanRepo) Insert(ctx context.Context, p *models.LearningPlan) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, p)
}

func (r *mongoLearningPlanRepo) FindByID(ctx context.Context, id string) (*models.LearningPlan, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.LearningPlan](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoLearningPlanRepo) FindByUser(ctx context.Context, userID string) ([]models.LearningPlan, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findMany[models.LearningPlan](ctx, r.coll, bson.M{"userId": objID})
}

func (r *mongoLearningPlanRepo) Update(ctx context.Context, p *models.LearningPlan) error {
	return replaceByID(ctx, r.coll, p.ID, p)
}

func (r *mongoLearningPlanRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

func (r *mongoCourseRepo) Insert(ctx context.Context, c *models.Course) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, c)
}

func (r *mongoCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Course](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoCourseRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	return findMany[models.Course](ctx, r.coll, bson.M{})
}

func (r *mongoCourseRepo) SearchByTitle(ctx context.Context, query string) ([]models.Course, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return findMany[models.Course](ctx, r.coll, bson.M{"title": pattern})
}

func (r *mongoCourseRepo) FindByEnrolledUser(ctx context.Context, userID string) ([]models.Course, error) {
	return findMany[models.Course](ctx, r.coll, bson.M{"enrolledUserIds": userID})
}

func (r *mongoCourseRepo) Update(ctx context.Context, c *models.Course) error {
	return replaceByID(ctx, r.coll, c.ID, c)
}

type mongoCertificationRepo struct {
	coll *mongo.Collection
}

func (r *mongoCertificationRepo) Insert(ctx context.Context, c *models.Certification) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, c)
}

func (r *mongoCertificationRepo) FindByID(ctx context.Context, id string) (*models.Certification, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Certification](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoCertificationRepo) FindByUser(ctx context.Context, userID string) ([]models.Certification, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Certification](ctx, r.coll, bson.M{"userId": objID})
}

func (r *mongoCertificationRepo) FindAll(ctx context.Context) ([]models.Certification, error) {
	return findMany[models.Certification](ctx, r.coll, bson.M{})
}

func (r *mongoCertificationRepo) Update(ctx context.Context, c *models.Certification) error {
	return replaceByID(ctx, r.coll, c.ID, c)
}

func (r *mongoCertificationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type mongoSkillRepo struct {
	coll *mongo.Collection
}

func (r *mongoSkillRepo) Insert(ctx context.Context, s *models.Skill) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, s)
}

func (r *mongoSkillRepo) FindByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Skill](ctx, r.coll, bson.M{"userId": objID})
}

func (r *mongoSkillRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type mongoProgressRepo struct {
	coll *mongo.Collection
}

func (r *mongoProgressRepo) Insert(ctx context.Context, p *models.ProgressUpdate) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, r.coll, p)
}

func (r *mongoProgressRepo) FindByID(ctx context.Context, id string) (*models.ProgressUpdate, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.ProgressUpdate](ctx, r.coll, bson.M{"_id": objID})
}

func (r *mongoProgressRepo) FindAll(ctx context.Context) ([]models.ProgressUpdate, error) {
	return findMany[models.ProgressUpdate](ctx, r.coll, bson.M{})
}

func (r *mongoProgressRepo) FindByUser(ctx context.Context, userID string) ([]models.ProgressUpdate, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return findMany[models.ProgressUpdate](ctx, r.coll, bson.M{"userId": objID})
}

func (r *mongoProgressRepo) Update(ctx context.Context, p *models.ProgressUpdate) error {
	return replaceByID(ctx, r.coll, p.ID, p)
}

func (r *mongoProgressRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
