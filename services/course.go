package services

import (
	"context"
	"fmt"
	"slices"

	"learnhub/models"
	"learnhub/repository"
)

// CourseService maintains the per-user enrollment state embedded in
// each course document: the enrolled and completed id lists plus the
// lesson-viewed and resources-downloaded maps. Completion is derived
// when the lesson has been viewed and every resource across all
// lessons has been downloaded, or set explicitly for an enrolled user.
type CourseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) *CourseService {
	return &CourseService{courses: courses}
}

func (s *CourseService) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.Title == "" {
		return nil, fmt.Errorf("%w: course title is required", ErrValidation)
	}
	ensureTracking(course)
	if err := s.courses.Insert(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetAll(ctx context.Context) ([]models.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *CourseService) Search(ctx context.Context, query string) ([]models.Course, error) {
	return s.courses.SearchByTitle(ctx, query)
}

func (s *CourseService) GetEnrolled(ctx context.Context, userID string) ([]models.Course, error) {
	return s.courses.FindByEnrolledUser(ctx, userID)
}

// Enroll adds the user and initializes their tracking entries. A
// second enroll for the same user is a no-op.
func (s *CourseService) Enroll(ctx context.Context, courseID, userID string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ensureTracking(course)

	if slices.Contains(course.EnrolledUserIDs, userID) {
		return course, nil
	}

	course.EnrolledUserIDs = append(course.EnrolledUserIDs, userID)
	course.LessonViewedMap[userID] = false
	course.ResourcesDownloadedMap[userID] = []string{}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Unenroll removes the user from all four tracking structures.
func (s *CourseService) Unenroll(ctx context.Context, courseID, userID string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ensureTracking(course)

	course.EnrolledUserIDs = removeString(course.EnrolledUserIDs, userID)
	course.CompletedUserIDs = removeString(course.CompletedUserIDs, userID)
	delete(course.LessonViewedMap, userID)
	delete(course.ResourcesDownloadedMap, userID)

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) MarkLessonViewed(ctx context.Context, courseID, userID string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ensureTracking(course)

	course.LessonViewedMap[userID] = true

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// MarkResourceDownloaded records the download (idempotent per resource
// name) and derives completion when the lesson has been viewed and
// every resource of every lesson is in the user's downloaded set.
func (s *CourseService) MarkResourceDownloaded(ctx context.Context, courseID, userID, resourceName string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ensureTracking(course)

	downloaded := course.ResourcesDownloadedMap[userID]
	if !slices.Contains(downloaded, resourceName) {
		downloaded = append(downloaded, resourceName)
		course.ResourcesDownloadedMap[userID] = downloaded
	}

	if course.LessonViewedMap[userID] && allResourcesDownloaded(course, downloaded) &&
		!slices.Contains(course.CompletedUserIDs, userID) {
		course.CompletedUserIDs = append(course.CompletedUserIDs, userID)
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// MarkCompleted flags an enrolled user as completed. Unenrolled users
// and repeat calls leave the course unchanged.
func (s *CourseService) MarkCompleted(ctx context.Context, courseID, userID string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ensureTracking(course)

	if slices.Contains(course.EnrolledUserIDs, userID) && !slices.Contains(course.CompletedUserIDs, userID) {
		course.CompletedUserIDs = append(course.CompletedUserIDs, userID)
		if err := s.courses.Update(ctx, course); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// GetForUser returns the course only when the user is enrolled.
func (s *CourseService) GetForUser(ctx context.Context, courseID, userID string) (*models.Course, error) {
	course, err := s.find(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(course.EnrolledUserIDs, userID) {
		return nil, fmt.Errorf("%w: user not enrolled in course", ErrNotFound)
	}
	return course, nil
}

func (s *CourseService) find(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err == repository.ErrNoDocument {
		return nil, fmt.Errorf("%w: course not found", ErrNotFound)
	}
	return course, err
}

func ensureTracking(course *models.Course) {
	if course.EnrolledUserIDs == nil {
		course.EnrolledUserIDs = []string{}
	}
	if course.CompletedUserIDs == nil {
		course.CompletedUserIDs = []string{}
	}
	if course.LessonViewedMap == nil {
		course.LessonViewedMap = map[string]bool{}
	}
	if course.ResourcesDownloadedMap == nil {
		course.ResourcesDownloadedMap = map[string][]string{}
	}
}

func allResourcesDownloaded(course *models.Course, downloaded []string) bool {
	for _, lesson := range course.Lessons {
		for _, resource := range lesson.Resources {
			if !slices.Contains(downloaded, resource.Name) {
				return false
			}
		}
	}
	return true
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}
