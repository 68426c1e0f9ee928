// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"finny-backend/internal/domain"
	"finny-backend/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockMovementRepository is a mock implementation of repository.MovementRepository.
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) CreateMovement(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	args := m.Called(ctx, q, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) GetMovementsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Movement, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, q repository.DBExecutor, id int64, category string, note *string, amount decimal.Decimal, kind domain.MovementKind) error {
	args := m.Called(ctx, q, id, category, note, amount, kind)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, q repository.DBExecutor, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockMovementRepository) SumByCategory(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockMovementRepository) SumByKind(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.KindTotal, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KindTotal), args.Error(1)
}

func (m *MockMovementRepository) SumByKindSince(ctx context.Context, q repository.DBExecutor, userID int64, since time.Time) ([]domain.KindTotal, error) {
	args := m.Called(ctx, q, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KindTotal), args.Error(1)
}

func (m *MockMovementRepository) TopExpenseCategoriesSince(ctx context.Context, q repository.DBExecutor, userID int64, since time.Time, limit int) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, q, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

// MockGoalRepository is a mock implementation of repository.GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, goal *domain.Goal) error {
	args := m.Called(ctx, q, kind, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetGoalsByUserID(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, userID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, q, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoalAmounts(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, id int64, update domain.GoalUpdate) error {
	args := m.Called(ctx, q, kind, id, update)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, q repository.DBExecutor, kind domain.GoalKind, id int64) error {
	args := m.Called(ctx, q, kind, id)
	return args.Error(0)
}

// MockLLMClient is a mock implementation of llm.Client.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// fakeTx implements both db.TxController and repository.DBExecutor so
// services that cast their transaction to an executor work in tests.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error   { t.committed = true; return nil }
func (t *fakeTx) Rollback() error { t.rolledBack = true; return nil }

func (t *fakeTx) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}

func (t *fakeTx) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}
