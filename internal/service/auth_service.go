// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"finny-backend/internal/auth"
	"finny-backend/internal/domain"
	"finny-backend/internal/repository"
	"finny-backend/internal/util"
	"finny-backend/pkg/db"
)

// AuthService defines the interface for registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns the stored user. Unknown
	// email and wrong password both yield util.ErrInvalidCredentials; callers
	// must not be able to tell which one failed.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Register hashes the password and creates the user. The uniqueness check and
// the insert run inside one transaction.
func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByEmail(ctx, txExecutor, email)
	if err == nil {
		return nil, util.ErrDuplicateEntry
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.NewUser(username, email, hash)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return user, nil
}

// Login checks the credentials against the stored bcrypt hash.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: failed to get user by email: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, util.ErrInvalidCredentials
	}

	return user, nil
}
