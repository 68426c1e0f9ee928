// internal/service/goal_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finny-backend/internal/domain"
	"finny-backend/internal/util"
)

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestCreateGoal(t *testing.T) {
	t.Run("StartsAtZero", func(t *testing.T) {
		repo := new(MockGoalRepository)
		svc := NewGoalService(nil, repo)

		repo.On("CreateGoal", mock.Anything, mock.Anything, domain.GoalKindSavings, mock.MatchedBy(func(g *domain.Goal) bool {
			return g.CurrentAmount.IsZero()
		})).Return(nil)

		goal, err := svc.CreateGoal(context.Background(), domain.GoalKindSavings, 1, "Emergency fund", decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.True(t, goal.CurrentAmount.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveTarget", func(t *testing.T) {
		svc := NewGoalService(nil, new(MockGoalRepository))

		_, err := svc.CreateGoal(context.Background(), domain.GoalKindInvestment, 1, "Stocks", decimal.Zero)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("RejectsEmptyUpdate", func(t *testing.T) {
		svc := NewGoalService(nil, new(MockGoalRepository))

		err := svc.UpdateGoal(context.Background(), domain.GoalKindSavings, 1, domain.GoalUpdate{})
		assert.ErrorIs(t, err, util.ErrNoUpdateFields)
	})

	t.Run("OnlyCurrentAmount", func(t *testing.T) {
		repo := new(MockGoalRepository)
		svc := NewGoalService(nil, repo)

		update := domain.GoalUpdate{CurrentAmount: decPtr(decimal.NewFromInt(200))}
		repo.On("UpdateGoalAmounts", mock.Anything, mock.Anything, domain.GoalKindSavings, int64(1), mock.MatchedBy(func(u domain.GoalUpdate) bool {
			return u.CurrentAmount != nil && u.TargetAmount == nil
		})).Return(nil)

		require.NoError(t, svc.UpdateGoal(context.Background(), domain.GoalKindSavings, 1, update))
		repo.AssertExpectations(t)
	})

	t.Run("BothAmounts", func(t *testing.T) {
		repo := new(MockGoalRepository)
		svc := NewGoalService(nil, repo)

		update := domain.GoalUpdate{
			CurrentAmount: decPtr(decimal.NewFromInt(200)),
			TargetAmount:  decPtr(decimal.NewFromInt(9000)),
		}
		repo.On("UpdateGoalAmounts", mock.Anything, mock.Anything, domain.GoalKindInvestment, int64(2), mock.MatchedBy(func(u domain.GoalUpdate) bool {
			return u.CurrentAmount != nil && u.TargetAmount != nil
		})).Return(nil)

		require.NoError(t, svc.UpdateGoal(context.Background(), domain.GoalKindInvestment, 2, update))
	})
}

func TestListGoals_BothKindsShareOnePath(t *testing.T) {
	repo := new(MockGoalRepository)
	svc := NewGoalService(nil, repo)

	savings := []domain.Goal{{ID: 1, UserID: 1, Description: "Trip"}}
	investment := []domain.Goal{{ID: 2, UserID: 1, Description: "ETF"}}
	repo.On("GetGoalsByUserID", mock.Anything, mock.Anything, domain.GoalKindSavings, int64(1)).Return(savings, nil)
	repo.On("GetGoalsByUserID", mock.Anything, mock.Anything, domain.GoalKindInvestment, int64(1)).Return(investment, nil)

	got, err := svc.ListGoals(context.Background(), domain.GoalKindSavings, 1)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got[0].Description)

	got, err = svc.ListGoals(context.Background(), domain.GoalKindInvestment, 1)
	require.NoError(t, err)
	assert.Equal(t, "ETF", got[0].Description)
}
