package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course embeds per-user enrollment and progress tracking directly in
// the course document: enrolled/completed id lists plus two maps keyed
// by user id hex. All four are maintained together by the course
// service.
type Course struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Category        string             `bson:"category" json:"category"`
	SkillLevel      string             `bson:"skillLevel" json:"skillLevel"`
	Language        string             `bson:"language" json:"language"`
	Duration        string             `bson:"duration" json:"duration"`
	CoverImageURL   string             `bson:"coverImageUrl" json:"coverImageUrl"`
	InstructorName  string             `bson:"instructorName" json:"instructorName"`
	CreatedByUserID string             `bson:"createdByUserId" json:"createdByUserId"`

	Lessons []Lesson `bson:"lessons" json:"lessons"`

	EnrolledUserIDs  []string `bson:"enrolledUserIds" json:"enrolledUserIds"`
	CompletedUserIDs []string `bson:"completedUserIds" json:"completedUserIds"`

	LessonViewedMap        map[string]bool     `bson:"lessonViewedMap" json:"lessonViewedMap"`
	ResourcesDownloadedMap map[string][]string `bson:"resourcesDownloadedMap" json:"resourcesDownloadedMap"`
}

type Lesson struct {
	LessonTitle string     `bson:"lessonTitle" json:"lessonTitle"`
	Notes       string     `bson:"notes" json:"notes"`
	Resources   []Resource `bson:"resources" json:"resources"`
}

type Resource struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type" json:"type"` // "pdf" or "image"
}
