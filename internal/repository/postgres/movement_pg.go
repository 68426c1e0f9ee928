// internal/repository/postgres/movement_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"finny-backend/internal/domain"
	"finny-backend/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// MovementRepository implements repository.MovementRepository for PostgreSQL.
type MovementRepository struct {
	// Methods receive their DBExecutor directly; nothing is held here.
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(db *sqlx.DB) repository.MovementRepository {
	return &MovementRepository{}
}

// CreateMovement inserts a new movement. The fecha column is assigned by the
// database default and read back, so the timestamp is immutable from then on.
func (r *MovementRepository) CreateMovement(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	query := `INSERT INTO movimientos (user_id, categoria, nota, monto, tipo)
              VALUES ($1, $2, $3, $4, $5) RETURNING id_movimiento, fecha`
	err := q.QueryRowContext(ctx, query,
		movement.UserID,
		movement.Category,
		movement.Note,
		movement.Amount,
		movement.Kind,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}
	return nil
}

// GetMovementsByUserID retrieves all movements for a user, newest first.
func (r *MovementRepository) GetMovementsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Movement, error) {
	movements := []domain.Movement{}
	query := `SELECT id_movimiento, user_id, fecha, monto, categoria, nota, tipo
              FROM movimientos
              WHERE user_id = $1
              ORDER BY fecha DESC`
	if err := q.SelectContext(ctx, &movements, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch movements for user %d: %w", userID, err)
	}
	return movements, nil
}

// UpdateMovement rewrites the mutable columns of a movement. Zero affected
// rows means the id does not exist, which is deliberately not an error.
func (r *MovementRepository) UpdateMovement(ctx context.Context, q repository.DBExecutor, id int64, category string, note *string, amount decimal.Decimal, kind domain.MovementKind) error {
	query := `UPDATE movimientos SET categoria = $1, nota = $2, monto = $3, tipo = $4
              WHERE id_movimiento = $5`
	if _, err := q.ExecContext(ctx, query, category, note, amount, kind, id); err != nil {
		return fmt.Errorf("failed to update movement %d: %w", id, err)
	}
	return nil
}

// DeleteMovement removes a movement by id.
func (r *MovementRepository) DeleteMovement(ctx context.Context, q repository.DBExecutor, id int64) error {
	query := `DELETE FROM movimientos WHERE id_movimiento = $1`
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete movement %d: %w", id, err)
	}
	return nil
}

// SumByCategory groups a user's movement amounts by category, independent of
// kind.
func (r *MovementRepository) SumByCategory(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.CategoryTotal, error) {
	totals := []domain.CategoryTotal{}
	query := `SELECT categoria, SUM(monto) AS total
              FROM movimientos
              WHERE user_id = $1
              GROUP BY categoria`
	if err := q.SelectContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to sum movements by category for user %d: %w", userID, err)
	}
	return totals, nil
}

// SumByKind groups a user's movement amounts by kind over the whole ledger.
func (r *MovementRepository) SumByKind(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.KindTotal, error) {
	totals := []domain.KindTotal{}
	query := `SELECT tipo, SUM(monto) AS total
              FROM movimientos
              WHERE user_id = $1
              GROUP BY tipo`
	if err := q.SelectContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to sum movements by kind for user %d: %w", userID, err)
	}
	return totals, nil
}

// SumByKindSince groups a user's movement amounts by kind, restricted to
// movements dated on or after since.
func (r *MovementRepository) SumByKindSince(ctx context.Context, q repository.DBExecutor, userID int64, since time.Time) ([]domain.KindTotal, error) {
	totals := []domain.KindTotal{}
	query := `SELECT tipo, SUM(monto) AS total
              FROM movimientos
              WHERE user_id = $1 AND fecha >= $2
              GROUP BY tipo`
	if err := q.SelectContext(ctx, &totals, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to sum windowed movements by kind for user %d: %w", userID, err)
	}
	return totals, nil
}

// TopExpenseCategoriesSince returns up to limit expense categories in the
// window, descending by summed amount. Row order between equal sums is
// whatever the database returns.
func (r *MovementRepository) TopExpenseCategoriesSince(ctx context.Context, q repository.DBExecutor, userID int64, since time.Time, limit int) ([]domain.CategoryTotal, error) {
	totals := []domain.CategoryTotal{}
	query := `SELECT categoria, SUM(monto) AS total
              FROM movimientos
              WHERE user_id = $1 AND tipo = $2 AND fecha >= $3
              GROUP BY categoria
              ORDER BY total DESC
              LIMIT $4`
	if err := q.SelectContext(ctx, &totals, query, userID, domain.MovementKindExpense, since, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch top expense categories for user %d: %w", userID, err)
	}
	return totals, nil
}
