package services

import (
	"context"
	"fmt"

	"learnhub/models"
	"learnhub/repository"
)

// ProgressService manages progress updates. Skill names attached to an
// update become skill documents for the user when they do not exist
// yet.
type ProgressService struct {
	progress repository.ProgressRepo
	users    repository.UserRepo
	skills   *SkillService
}

func NewProgressService(progress repository.ProgressRepo, users repository.UserRepo, skills *SkillService) *ProgressService {
	return &ProgressService{progress: progress, users: users, skills: skills}
}

func (s *ProgressService) Create(ctx context.Context, userID string, update *models.ProgressUpdate) (*models.ProgressUpdate, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	if update.Name == "" {
		return nil, fmt.Errorf("%w: progress update name is required", ErrValidation)
	}

	update.UserID = user.ID

	resolved, err := s.skills.EnsureForUser(ctx, userID, update.Skills)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resolved))
	for _, skill := range resolved {
		names = append(names, skill.Name)
	}
	update.Skills = names

	if err := s.progress.Insert(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *ProgressService) GetAll(ctx context.Context) ([]models.ProgressUpdate, error) {
	return s.progress.FindAll(ctx)
}

func (s *ProgressService) GetByID(ctx context.Context, id string) (*models.ProgressUpdate, error) {
	update, err := s.progress.FindByID(ctx, id)
	if err == repository.ErrNoDocument {
		return nil, fmt.Errorf("%w: progress update not found", ErrNotFound)
	}
	return update, err
}

func (s *ProgressService) GetByUser(ctx context.Context, userID string) ([]models.ProgressUpdate, error) {
	return s.progress.FindByUser(ctx, userID)
}

func (s *ProgressService) Update(ctx context.Context, id string, updated *models.ProgressUpdate) (*models.ProgressUpdate, error) {
	existing, err := s.progress.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: progress update not found", ErrNotFound)
		}
		return nil, err
	}

	existing.Name = updated.Name
	existing.IssuingOrganization = updated.IssuingOrganization
	existing.IssueDate = updated.IssueDate
	existing.ExpireDate = updated.ExpireDate
	existing.CredentialID = updated.CredentialID
	existing.CredentialURL = updated.CredentialURL
	existing.MediaURL = updated.MediaURL
	existing.Skills = updated.Skills

	if err := s.progress.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProgressService) Delete(ctx context.Context, id string) error {
	err := s.progress.Delete(ctx, id)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: progress update not found", ErrNotFound)
	}
	return err
}
