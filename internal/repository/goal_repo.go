// internal/repository/goal_repo.go
package repository

import (
	"context"

	"finny-backend/internal/domain"
)

// GoalRepository defines the interface for savings and investment goal
// operations. Every method takes the goal kind selecting which of the two
// tables it targets.
type GoalRepository interface {
	// CreateGoal inserts a goal with a zero current amount.
	CreateGoal(ctx context.Context, q DBExecutor, kind domain.GoalKind, goal *domain.Goal) error
	// GetGoalsByUserID retrieves all goals of a kind for a user.
	GetGoalsByUserID(ctx context.Context, q DBExecutor, kind domain.GoalKind, userID int64) ([]domain.Goal, error)
	// UpdateGoalAmounts applies a three-way update: both amounts, only the
	// current amount, or only the target amount, depending on which fields of
	// update are set. A missing id affects zero rows and is not an error.
	UpdateGoalAmounts(ctx context.Context, q DBExecutor, kind domain.GoalKind, id int64, update domain.GoalUpdate) error
	// DeleteGoal removes a goal. A missing id affects zero rows and is not an
	// error.
	DeleteGoal(ctx context.Context, q DBExecutor, kind domain.GoalKind, id int64) error
}
