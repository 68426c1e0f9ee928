// internal/repository/postgres/goal_pg.go
package postgres

import (
	"context"
	"fmt"

	"finny-backend/internal/domain"
	"finny-backend/internal/repository"

	"github.com/jmoiron/sqlx"
)

// GoalRepository implements repository.GoalRepository for PostgreSQL. Savings
// and investment goals live in two tables with identical columns; the kind
// picks the table name.
type GoalRepository struct {
	// Methods receive their DBExecutor directly; nothing is held here.
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(db *sqlx.DB) repository.GoalRepository {
	return &GoalRepository{}
}

// tableFor maps a goal kind to its table. The kind is a closed enum, never
// caller input, so interpolating it into SQL is safe.
func tableFor(kind domain.GoalKind) (string, error) {
	switch kind {
	case domain.GoalKindSavings:
		return "metas_ahorro", nil
	case domain.GoalKindInvestment:
		return "metas_inversion", nil
	default:
		return "", fmt.Errorf("unknown goal kind %q", kind)
	}
}

// CreateGoal inserts a goal; monto_actual starts at its column default of 0.
func (r *GoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, goal *domain.Goal) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (user_id, descripcion, monto_objetivo)
              VALUES ($1, $2, $3) RETURNING id_meta`, table)
	err = q.QueryRowContext(ctx, query, goal.UserID, goal.Description, goal.TargetAmount).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("failed to create %s goal: %w", kind, err)
	}
	return nil
}

// GetGoalsByUserID retrieves all goals of a kind for a user.
func (r *GoalRepository) GetGoalsByUserID(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, userID int64) ([]domain.Goal, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	goals := []domain.Goal{}
	query := fmt.Sprintf(`SELECT id_meta, user_id, descripcion, monto_objetivo, monto_actual
              FROM %s WHERE user_id = $1`, table)
	if err := q.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch %s goals for user %d: %w", kind, userID, err)
	}
	return goals, nil
}

// UpdateGoalAmounts applies the three-way update the API exposes: both
// amounts, only the current amount, or only the target amount.
func (r *GoalRepository) UpdateGoalAmounts(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, id int64, update domain.GoalUpdate) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	switch {
	case update.CurrentAmount != nil && update.TargetAmount != nil:
		query := fmt.Sprintf(`UPDATE %s SET monto_actual = $1, monto_objetivo = $2 WHERE id_meta = $3`, table)
		_, err = q.ExecContext(ctx, query, *update.CurrentAmount, *update.TargetAmount, id)
	case update.CurrentAmount != nil:
		query := fmt.Sprintf(`UPDATE %s SET monto_actual = $1 WHERE id_meta = $2`, table)
		_, err = q.ExecContext(ctx, query, *update.CurrentAmount, id)
	case update.TargetAmount != nil:
		query := fmt.Sprintf(`UPDATE %s SET monto_objetivo = $1 WHERE id_meta = $2`, table)
		_, err = q.ExecContext(ctx, query, *update.TargetAmount, id)
	default:
		return fmt.Errorf("update %s goal %d: no fields provided", kind, id)
	}

	if err != nil {
		return fmt.Errorf("failed to update %s goal %d: %w", kind, id, err)
	}
	return nil
}

// DeleteGoal removes a goal by id.
func (r *GoalRepository) DeleteGoal(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id_meta = $1`, table)
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete %s goal %d: %w", kind, id, err)
	}
	return nil
}
