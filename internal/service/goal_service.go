// internal/service/goal_service.go
package service

import (
	"context"
	"fmt"

	"finny-backend/internal/domain"
	"finny-backend/internal/repository"
	"finny-backend/internal/util"

	"github.com/shopspring/decimal"
)

// GoalService defines the interface for savings and investment goal logic.
// The same code path serves both kinds; they differ only in the table behind
// the repository call.
type GoalService interface {
	CreateGoal(ctx context.Context, kind domain.GoalKind, userID int64, description string, target decimal.Decimal) (*domain.Goal, error)
	ListGoals(ctx context.Context, kind domain.GoalKind, userID int64) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, kind domain.GoalKind, id int64, update domain.GoalUpdate) error
	DeleteGoal(ctx context.Context, kind domain.GoalKind, id int64) error
}

// goalService implements the GoalService interface.
type goalService struct {
	dbExecutor repository.DBExecutor
	goalRepo   repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(dbExecutor repository.DBExecutor, goalRepo repository.GoalRepository) GoalService {
	return &goalService{
		dbExecutor: dbExecutor,
		goalRepo:   goalRepo,
	}
}

// CreateGoal creates a goal with a zero current amount.
func (s *goalService) CreateGoal(ctx context.Context, kind domain.GoalKind, userID int64, description string, target decimal.Decimal) (*domain.Goal, error) {
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	goal := domain.NewGoal(userID, description, target)
	if err := s.goalRepo.CreateGoal(ctx, s.dbExecutor, kind, goal); err != nil {
		return nil, fmt.Errorf("create %s goal: %w", kind, err)
	}
	return goal, nil
}

// ListGoals returns all goals of a kind for a user.
func (s *goalService) ListGoals(ctx context.Context, kind domain.GoalKind, userID int64) ([]domain.Goal, error) {
	goals, err := s.goalRepo.GetGoalsByUserID(ctx, s.dbExecutor, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s goals: %w", kind, err)
	}
	return goals, nil
}

// UpdateGoal applies the three-way amount update. An update carrying no fields
// is rejected; a missing id affects zero rows and still succeeds.
func (s *goalService) UpdateGoal(ctx context.Context, kind domain.GoalKind, id int64, update domain.GoalUpdate) error {
	if update.Empty() {
		return util.ErrNoUpdateFields
	}

	if err := s.goalRepo.UpdateGoalAmounts(ctx, s.dbExecutor, kind, id, update); err != nil {
		return fmt.Errorf("update %s goal: %w", kind, err)
	}
	return nil
}

// DeleteGoal removes a goal. Deleting a missing id still succeeds.
func (s *goalService) DeleteGoal(ctx context.Context, kind domain.GoalKind, id int64) error {
	if err := s.goalRepo.DeleteGoal(ctx, s.dbExecutor, kind, id); err != nil {
		return fmt.Errorf("delete %s goal: %w", kind, err)
	}
	return nil
}
