// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"

	"finny-backend/internal/domain"
	"finny-backend/internal/repository"
	"finny-backend/internal/util"

	"github.com/shopspring/decimal"
)

// LedgerService defines the interface for movement-related business logic.
type LedgerService interface {
	AddMovement(ctx context.Context, userID int64, category string, note *string, amount decimal.Decimal, kind string) (*domain.Movement, error)
	ListMovements(ctx context.Context, userID int64) ([]domain.Movement, error)
	UpdateMovement(ctx context.Context, id int64, category string, note *string, amount decimal.Decimal, kind string) error
	DeleteMovement(ctx context.Context, id int64) error
	CategorySummary(ctx context.Context, userID int64) ([]domain.CategoryTotal, error)
	Balance(ctx context.Context, userID int64) (*domain.Balance, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbExecutor   repository.DBExecutor
	movementRepo repository.MovementRepository
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(dbExecutor repository.DBExecutor, movementRepo repository.MovementRepository) LedgerService {
	return &ledgerService{
		dbExecutor:   dbExecutor,
		movementRepo: movementRepo,
	}
}

// AddMovement records a new ledger entry. An empty kind defaults to expense;
// amounts must be positive.
func (s *ledgerService) AddMovement(ctx context.Context, userID int64, category string, note *string, amount decimal.Decimal, kind string) (*domain.Movement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}
	movement := domain.NewMovement(userID, category, note, amount, kind)
	if !movement.Kind.Valid() {
		return nil, util.ErrInvalidInput
	}

	if err := s.movementRepo.CreateMovement(ctx, s.dbExecutor, movement); err != nil {
		return nil, fmt.Errorf("add movement: %w", err)
	}
	return movement, nil
}

// ListMovements returns all of a user's movements, newest first.
func (s *ledgerService) ListMovements(ctx context.Context, userID int64) ([]domain.Movement, error) {
	movements, err := s.movementRepo.GetMovementsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// UpdateMovement rewrites the mutable fields of a movement. Updating a missing
// id affects zero rows and still succeeds.
func (s *ledgerService) UpdateMovement(ctx context.Context, id int64, category string, note *string, amount decimal.Decimal, kind string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	k := domain.KindOrDefault(kind)
	if !k.Valid() {
		return util.ErrInvalidInput
	}

	if err := s.movementRepo.UpdateMovement(ctx, s.dbExecutor, id, category, note, amount, k); err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// DeleteMovement removes a movement. Deleting a missing id still succeeds.
func (s *ledgerService) DeleteMovement(ctx context.Context, id int64) error {
	if err := s.movementRepo.DeleteMovement(ctx, s.dbExecutor, id); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// CategorySummary groups a user's movements by category, independent of kind.
func (s *ledgerService) CategorySummary(ctx context.Context, userID int64) ([]domain.CategoryTotal, error) {
	totals, err := s.movementRepo.SumByCategory(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("category summary: %w", err)
	}
	return totals, nil
}

// Balance folds the per-kind sums into income, expenses and their difference.
// Kinds with no movements contribute zero, so an empty ledger balances to 0.
func (s *ledgerService) Balance(ctx context.Context, userID int64) (*domain.Balance, error) {
	totals, err := s.movementRepo.SumByKind(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range totals {
		switch t.Kind {
		case domain.MovementKindIncome:
			income = t.Total
		case domain.MovementKindExpense:
			expenses = t.Total
		}
	}

	return &domain.Balance{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}, nil
}
