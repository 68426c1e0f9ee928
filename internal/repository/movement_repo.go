// internal/repository/movement_repo.go
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finny-backend/internal/domain"
)

// MovementRepository defines the interface for ledger movement operations.
type MovementRepository interface {
	// CreateMovement inserts a movement; the database assigns the timestamp.
	CreateMovement(ctx context.Context, q DBExecutor, movement *domain.Movement) error
	// GetMovementsByUserID retrieves all movements for a user, newest first.
	GetMovementsByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Movement, error)
	// UpdateMovement rewrites the mutable columns of a movement. A missing id
	// affects zero rows and is not an error.
	UpdateMovement(ctx context.Context, q DBExecutor, id int64, category string, note *string, amount decimal.Decimal, kind domain.MovementKind) error
	// DeleteMovement removes a movement. A missing id affects zero rows and is
	// not an error.
	DeleteMovement(ctx context.Context, q DBExecutor, id int64) error
	// SumByCategory groups a user's movements by category, regardless of kind.
	SumByCategory(ctx context.Context, q DBExecutor, userID int64) ([]domain.CategoryTotal, error)
	// SumByKind groups a user's movements by kind over their whole history.
	SumByKind(ctx context.Context, q DBExecutor, userID int64) ([]domain.KindTotal, error)
	// SumByKindSince groups a user's movements by kind, restricted to
	// movements on or after the given date.
	SumByKindSince(ctx context.Context, q DBExecutor, userID int64, since time.Time) ([]domain.KindTotal, error)
	// TopExpenseCategoriesSince returns up to limit expense categories in the
	// window, descending by summed amount. Tie order is not guaranteed.
	TopExpenseCategoriesSince(ctx context.Context, q DBExecutor, userID int64, since time.Time, limit int) ([]domain.CategoryTotal, error)
}
