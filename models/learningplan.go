package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type LearningPlan struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Title            string             `bson:"title" json:"title"`
	Background       string             `bson:"background" json:"background"`
	Scope            string             `bson:"scope" json:"scope"`
	Skills           []string           `bson:"skills" json:"skills"`
	RelatedCourseIDs []string           `bson:"relatedCourseIds" json:"relatedCourseIds"`
	Topics           []string           `bson:"topics" json:"topics"`
	Tasks            []PlanTask         `bson:"tasks" json:"tasks"`
	StartDate        string             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate          string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

type PlanTask struct {
	TaskName        string `bson:"taskName" json:"taskName"`
	TaskDescription string `bson:"taskDescription" json:"taskDescription"`
	Completed       bool   `bson:"completed" json:"completed"`
	AIGenerated     bool   `bson:"aiGenerated" json:"aiGenerated"`
}
