package services

import (
	"context"
	"fmt"

	"learnhub/models"
	"learnhub/repository"
)

type LearningPlanService struct {
	plans repository.LearningPlanRepo
}

func NewLearningPlanService(plans repository.LearningPlanRepo) *LearningPlanService {
	return &LearningPlanService{plans: plans}
}

func (s *LearningPlanService) Create(ctx context.Context, plan *models.LearningPlan) (*models.LearningPlan, error) {
	if plan.Title == "" {
		return nil, fmt.Errorf("%w: plan title is required", ErrValidation)
	}
	if plan.UserID.IsZero() {
		return nil, fmt.Errorf("%w: plan owner is required", ErrValidation)
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *LearningPlanService) GetByUser(ctx context.Context, userID string) ([]models.LearningPlan, error) {
	return s.plans.FindByUser(ctx, userID)
}

func (s *LearningPlanService) GetByID(ctx context.Context, id string) (*models.LearningPlan, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err == repository.ErrNoDocument {
		return nil, fmt.Errorf("%w: learning plan not found", ErrNotFound)
	}
	return plan, err
}

func (s *LearningPlanService) Update(ctx context.Context, id string, updated *models.LearningPlan) (*models.LearningPlan, error) {
	existing, err := s.plans.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: learning plan not found", ErrNotFound)
		}
		return nil, err
	}

	updated.ID = existing.ID
	if updated.UserID.IsZero() {
		updated.UserID = existing.UserID
	}
	if err := s.plans.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *LearningPlanService) Delete(ctx context.Context, id string) error {
	err := s.plans.Delete(ctx, id)
	if err == repository.ErrNoDocument {
		return fmt.Errorf("%w: learning plan not found", ErrNotFound)
	}
	return err
}
