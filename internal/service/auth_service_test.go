// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finny-backend/internal/auth"
	"finny-backend/internal/domain"
	"finny-backend/internal/util"
	"finny-backend/pkg/db"
)

// newAuthFixture wires an authService with a fake transaction so no database
// is needed.
func newAuthFixture(userRepo *MockUserRepository) (AuthService, *fakeTx) {
	tx := &fakeTx{}
	beginTx := func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	commitTx := func(c db.TxController) error { return c.Commit() }
	rollbackTx := func(c db.TxController) { _ = c.Rollback() }
	return NewAuthService(nil, nil, userRepo, beginTx, commitTx, rollbackTx), tx
}

func TestRegister(t *testing.T) {
	t.Run("HashesPasswordAndCommits", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, tx := newAuthFixture(userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(nil, util.ErrNotFound)
		userRepo.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			// stored hash must verify against the original password and never
			// equal the plaintext
			return u.PasswordHash != "hunter22" && auth.CheckPassword(u.PasswordHash, "hunter22")
		})).Return(nil)

		user, err := svc.Register(context.Background(), "ana", "ana@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.True(t, tx.committed)
		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, tx := newAuthFixture(userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := svc.Register(context.Background(), "ana", "ana@example.com", "pw")
		assert.ErrorIs(t, err, util.ErrDuplicateEntry)
		assert.False(t, tx.committed)
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Username: "ana", Email: "ana@example.com", PasswordHash: hash}

	t.Run("CorrectCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthFixture(userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(stored, nil)

		user, err := svc.Login(context.Background(), "ana@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("WrongPasswordIsUniformError", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthFixture(userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), "ana@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("UnknownEmailIsSameUniformError", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthFixture(userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything, "ghost@example.com").Return(nil, util.ErrNotFound)

		_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}
