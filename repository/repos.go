package repository

import (
	"context"
	"errors"

	"learnhub/models"
)

// ErrNoDocument is returned when a lookup matches nothing. Malformed
// object ids are reported the same way: a bad id can never match.
var ErrNoDocument = errors.New("document not found")

// UserRepo defines access to user documents
type UserRepo interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
}

// MediaRepo defines access to post documents
type MediaRepo interface {
	Insert(ctx context.Context, m *models.Media) error
	FindByID(ctx context.Context, id string) (*models.Media, error)
	FindAll(ctx context.Context) ([]models.Media, error)
	FindByUser(ctx context.Context, userID string) ([]models.Media, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Media, error)
	Update(ctx context.Context, m *models.Media) error
	Delete(ctx context.Context, id string) error
}

// LikeRepo defines access to post like records
type LikeRepo interface {
	Insert(ctx context.Context, l *models.Like) error
	FindByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error)
	DeleteByPostAndUser(ctx context.Context, postID, userID string) error
	FindByPost(ctx context.Context, postID string) ([]models.Like, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	DeleteByPost(ctx context.Context, postID string) error
}

// CommentLikeRepo defines access to comment like records
type CommentLikeRepo interface {
	Insert(ctx context.Context, l *models.CommentLike) error
	FindByCommentAndUser(ctx context.Context, commentID, userID string) (*models.CommentLike, error)
	DeleteByCommentAndUser(ctx context.Context, commentID, userID string) error
	FindByComment(ctx context.Context, commentID string) ([]models.CommentLike, error)
	CountByComment(ctx context.Context, commentID string) (int64, error)
	DeleteByComment(ctx context.Context, commentID string) error
}

// CommentRepo defines access to comment documents
type CommentRepo interface {
	Insert(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id string) error
}

// ReplyRepo defines access to comment reply documents
type ReplyRepo interface {
	Insert(ctx context.Context, r *models.CommentReply) error
	FindByID(ctx context.Context, id string) (*models.CommentReply, error)
	FindByComment(ctx context.Context, commentID string) ([]models.CommentReply, error)
	CountByComment(ctx context.Context, commentID string) (int64, error)
	Update(ctx context.Context, r *models.CommentReply) error
	Delete(ctx context.Context, id string) error
	DeleteByComment(ctx context.Context, commentID string) error
}

// FollowRepo defines access to follow records
type FollowRepo interface {
	Insert(ctx context.Context, f *models.Follow) error
	FindPair(ctx context.Context, followerID, followingID string) (*models.Follow, error)
	DeletePair(ctx context.Context, followerID, followingID string) error
	FindFollowers(ctx context.Context, followingID string) ([]models.Follow, error)
	FindFollowing(ctx context.Context, followerID string) ([]models.Follow, error)
	CountFollowers(ctx context.Context, followingID string) (int64, error)
	CountFollowing(ctx context.Context, followerID string) (int64, error)
}

// NotificationRepo defines access to notification documents
type NotificationRepo interface {
	Insert(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	FindUnreadByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	CountUnreadByRecipient(ctx context.Context, recipientID string) (int64, error)
	Update(ctx context.Context, n *models.Notification) error
}

// SavedPostRepo defines access to saved post join records
type SavedPostRepo interface {
	Insert(ctx context.Context, s *models.SavedPost) error
	FindByUserAndPost(ctx context.Context, userID, postID string) (*models.SavedPost, error)
	DeleteByUserAndPost(ctx context.Context, userID, postID string) error
	FindByUser(ctx context.Context, userID string) ([]models.SavedPost, error)
	DeleteByPost(ctx context.Context, postID string) error
}

// SharedPostRepo defines access to shared post records
type SharedPostRepo interface {
	Insert(ctx context.Context, s *models.SharedPost) error
	FindBySharedTo(ctx context.Context, userID string) ([]models.SharedPost, error)
	DeleteByOriginalPost(ctx context.Context, postID string) error
}

// LearningPlanRepo defines access to learning plan documents
type LearningPlanRepo interface {
	Insert(ctx context.Context, p *models.LearningPlan) error
	FindByID(ctx context.Context, id string) (*models.LearningPlan, error)
	FindByUser(ctx context.Context, userID string) ([]models.LearningPlan, error)
	Update(ctx context.Context, p *models.LearningPlan) error
	Delete(ctx context.Context, id string) error
}

// CourseRepo defines access to course documents
type CourseRepo interface {
	Insert(ctx context.Context, c *models.Course) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	SearchByTitle(ctx context.Context, query string) ([]models.Course, error)
	FindByEnrolledUser(ctx context.Context, userID string) ([]models.Course, error)
	Update(ctx context.Context, c *models.Course) error
}

// CertificationRepo defines access to certification documents
type CertificationRepo interface {
	Insert(ctx context.Context, c *models.Certification) error
	FindByID(ctx context.Context, id string) (*models.Certification, error)
	FindByUser(ctx context.Context, userID string) ([]models.Certification, error)
	FindAll(ctx context.Context) ([]models.Certification, error)
	Update(ctx context.Context, c *models.Certification) error
	Delete(ctx context.Context, id string) error
}

// SkillRepo defines access to skill documents
type SkillRepo interface {
	Insert(ctx context.Context, s *models.Skill) error
	FindByUser(ctx context.Context, userID string) ([]models.Skill, error)
	Delete(ctx context.Context, id string) error
}

// ProgressRepo defines access to progress update documents
type ProgressRepo interface {
	Insert(ctx context.Context, p *models.ProgressUpdate) error
	FindByID(ctx context.Context, id string) (*models.ProgressUpdate, error)
	FindAll(ctx context.Context) ([]models.ProgressUpdate, error)
	FindByUser(ctx context.Context, userID string) ([]models.ProgressUpdate, error)
	Update(ctx context.Context, p *models.ProgressUpdate) error
	Delete(ctx context.Context, id string) error
}

// PushSubRepo defines access to push subscriptions
type PushSubRepo interface {
	Upsert(ctx context.Context, s *models.PushSubscription) error
	FindByUser(ctx context.Context, userID string) (*models.PushSubscription, error)
}

// Repos groups repository interfaces for convenience
type Repos struct {
	Users          UserRepo
	Media          MediaRepo
	Likes          LikeRepo
	CommentLikes   CommentLikeRepo
	Comments       CommentRepo
	Replies        ReplyRepo
	Follows        FollowRepo
	Notifications  NotificationRepo
	SavedPosts     SavedPostRepo
	SharedPosts    SharedPostRepo
	LearningPlans  LearningPlanRepo
	Courses        CourseRepo
	Certifications CertificationRepo
	Skills         SkillRepo
	Progress       ProgressRepo
	PushSubs       PushSubRepo
}
