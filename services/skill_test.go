package services

import (
	"context"
	"testing"

	"learnhub/models"
)

func TestEnsureForUserDeduplicates(t *testing.T) {
	skills := newFakeSkillRepo()
	users := newFakeUserRepo()
	user := seedUser(users, "Alice")

	svc := NewSkillService(skills)
	ctx := context.Background()

	if _, err := svc.Add(ctx, &models.Skill{UserID: user.ID, Name: "Go"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	resolved, err := svc.EnsureForUser(ctx, user.ID.Hex(), []string{"go", "Docker", "", "docker"})
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved entries, got %d", len(resolved))
	}
	if resolved[0].Name != "Go" {
		t.Errorf("existing skill should resolve case-insensitively, got %q", resolved[0].Name)
	}

	stored, _ := svc.GetByUser(ctx, user.ID.Hex())
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored skills (Go, Docker), got %d", len(stored))
	}
}

func TestProgressCreateResolvesSkills(t *testing.T) {
	users := newFakeUserRepo()
	skills := newFakeSkillRepo()
	progress := newFakeProgressRepo()
	user := seedUser(users, "Alice")

	skillSvc := NewSkillService(skills)
	svc := NewProgressService(progress, users, skillSvc)
	ctx := context.Background()

	update := &models.ProgressUpdate{
		Name:   "Completed Go course",
		Skills: []string{"Go", "Testing"},
	}
	created, err := svc.Create(ctx, user.ID.Hex(), update)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.UserID != user.ID {
		t.Error("progress update not bound to the user")
	}

	stored, _ := skillSvc.GetByUser(ctx, user.ID.Hex())
	if len(stored) != 2 {
		t.Fatalf("expected 2 skill docs created, got %d", len(stored))
	}

	// A second update reuses existing skills instead of duplicating.
	if _, err := svc.Create(ctx, user.ID.Hex(), &models.ProgressUpdate{
		Name:   "Shipped a service",
		Skills: []string{"go"},
	}); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	stored, _ = skillSvc.GetByUser(ctx, user.ID.Hex())
	if len(stored) != 2 {
		t.Fatalf("expected skills unchanged, got %d", len(stored))
	}
}
