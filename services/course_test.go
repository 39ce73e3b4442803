package services

import (
	"context"
	"errors"
	"slices"
	"testing"

	"learnhub/models"
)

func seedCourse(repo *fakeCourseRepo, title string, lessons []models.Lesson) *models.Course {
	course := &models.Course{Title: title, Lessons: lessons}
	repo.Insert(context.Background(), course)
	return course
}

func TestEnrollIsIdempotent(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", nil)

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	first, err := svc.Enroll(ctx, course.ID.Hex(), userID)
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if len(first.EnrolledUserIDs) != 1 {
		t.Fatalf("expected 1 enrolled user, got %d", len(first.EnrolledUserIDs))
	}
	if viewed, ok := first.LessonViewedMap[userID]; !ok || viewed {
		t.Error("enroll should initialize lessonViewedMap entry to false")
	}
	if _, ok := first.ResourcesDownloadedMap[userID]; !ok {
		t.Error("enroll should initialize resourcesDownloadedMap entry")
	}

	second, err := svc.Enroll(ctx, course.ID.Hex(), userID)
	if err != nil {
		t.Fatalf("second enroll failed: %v", err)
	}
	if len(second.EnrolledUserIDs) != 1 {
		t.Fatalf("second enroll duplicated the user: %v", second.EnrolledUserIDs)
	}
}

func TestUnenrollRemovesAllTracking(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", nil)

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	svc.Enroll(ctx, course.ID.Hex(), userID)
	svc.MarkCompleted(ctx, course.ID.Hex(), userID)

	got, err := svc.Unenroll(ctx, course.ID.Hex(), userID)
	if err != nil {
		t.Fatalf("unenroll failed: %v", err)
	}
	if slices.Contains(got.EnrolledUserIDs, userID) || slices.Contains(got.CompletedUserIDs, userID) {
		t.Error("unenroll should remove the user from both id lists")
	}
	if _, ok := got.LessonViewedMap[userID]; ok {
		t.Error("unenroll should remove the lessonViewedMap entry")
	}
	if _, ok := got.ResourcesDownloadedMap[userID]; ok {
		t.Error("unenroll should remove the resourcesDownloadedMap entry")
	}
}

func TestResourceDownloadDerivesCompletion(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", []models.Lesson{
		{LessonTitle: "Intro", Resources: []models.Resource{
			{Name: "slides.pdf", Type: "pdf"},
			{Name: "cheatsheet.pdf", Type: "pdf"},
		}},
	})

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	svc.Enroll(ctx, course.ID.Hex(), userID)
	svc.MarkLessonViewed(ctx, course.ID.Hex(), userID)

	got, err := svc.MarkResourceDownloaded(ctx, course.ID.Hex(), userID, "slides.pdf")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if slices.Contains(got.CompletedUserIDs, userID) {
		t.Fatal("completion derived too early: one resource still missing")
	}

	got, err = svc.MarkResourceDownloaded(ctx, course.ID.Hex(), userID, "cheatsheet.pdf")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if !slices.Contains(got.CompletedUserIDs, userID) {
		t.Fatal("expected derived completion after all resources downloaded")
	}

	// Repeat download must not duplicate the entry.
	got, _ = svc.MarkResourceDownloaded(ctx, course.ID.Hex(), userID, "slides.pdf")
	if len(got.ResourcesDownloadedMap[userID]) != 2 {
		t.Errorf("repeat download duplicated entry: %v", got.ResourcesDownloadedMap[userID])
	}
}

func TestCompletionRequiresLessonViewed(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", []models.Lesson{
		{LessonTitle: "Intro", Resources: []models.Resource{{Name: "slides.pdf", Type: "pdf"}}},
	})

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	svc.Enroll(ctx, course.ID.Hex(), userID)

	got, err := svc.MarkResourceDownloaded(ctx, course.ID.Hex(), userID, "slides.pdf")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if slices.Contains(got.CompletedUserIDs, userID) {
		t.Fatal("completion must not derive while the lesson is unviewed")
	}
}

func TestMarkCompletedRequiresEnrollment(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", nil)

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	got, err := svc.MarkCompleted(ctx, course.ID.Hex(), userID)
	if err != nil {
		t.Fatalf("mark completed failed: %v", err)
	}
	if slices.Contains(got.CompletedUserIDs, userID) {
		t.Fatal("unenrolled user must not be marked completed")
	}

	svc.Enroll(ctx, course.ID.Hex(), userID)
	got, _ = svc.MarkCompleted(ctx, course.ID.Hex(), userID)
	if !slices.Contains(got.CompletedUserIDs, userID) {
		t.Fatal("enrolled user should be marked completed")
	}

	// Repeat completion stays idempotent.
	got, _ = svc.MarkCompleted(ctx, course.ID.Hex(), userID)
	if len(got.CompletedUserIDs) != 1 {
		t.Errorf("repeat completion duplicated the user: %v", got.CompletedUserIDs)
	}
}

func TestGetForUserRequiresEnrollment(t *testing.T) {
	courses := newFakeCourseRepo()
	course := seedCourse(courses, "Go Basics", nil)

	svc := NewCourseService(courses)
	ctx := context.Background()
	userID := "64f000000000000000000001"

	_, err := svc.GetForUser(ctx, course.ID.Hex(), userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unenrolled user, got %v", err)
	}

	svc.Enroll(ctx, course.ID.Hex(), userID)
	if _, err := svc.GetForUser(ctx, course.ID.Hex(), userID); err != nil {
		t.Fatalf("expected course for enrolled user, got %v", err)
	}
}

func TestCourseSearch(t *testing.T) {
	courses := newFakeCourseRepo()
	seedCourse(courses, "Go Basics", nil)
	seedCourse(courses, "Advanced Go", nil)
	seedCourse(courses, "Rust Basics", nil)

	svc := NewCourseService(courses)

	got, err := svc.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "go", len(got))
	}
}
