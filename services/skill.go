package services

import (
	"context"
	"fmt"
	"strings"

	"learnhub/models"
	"learnhub/repository"
)

type SkillService struct {
	skills repository.SkillRepo
}

func NewSkillService(skills repository.SkillRepo) *SkillService {
	return &SkillService{skills: skills}
}

func (s *SkillService) Add(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	if skill.Name == "" {
		return nil, fmt.Errorf("%w: skill name is required", ErrValidation)
	}
	if err := s.skills.Insert(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) GetByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	return s.skills.FindByUser(ctx, userID)
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	err := s.skills.Delete(ctx, id)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: skill not found", ErrNotFound)
	}
	return err
}

// EnsureForUser creates skill documents for names the user does not
// have yet and returns the resolved set, preserving input order.
// Matching is case-insensitive.
func (s *SkillService) EnsureForUser(ctx context.Context, userID string, names []string) ([]models.Skill, error) {
	existing, err := s.skills.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]models.Skill, len(existing))
	for _, skill := range existing {
		byName[strings.ToLower(skill.Name)] = skill
	}

	resolved := make([]models.Skill, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if skill, ok := byName[strings.ToLower(name)]; ok {
			resolved = append(resolved, skill)
			continue
		}
		skill := models.Skill{UserID: mustObjectID(userID), Name: name}
		if err := s.skills.Insert(ctx, &skill); err != nil {
			return nil, err
		}
		byName[strings.ToLower(name)] = skill
		resolved = append(resolved, skill)
	}
	return resolved, nil
}
