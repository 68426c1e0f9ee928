// internal/service/advisor_service.go
package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"finny-backend/internal/domain"
	"finny-backend/internal/llm"
	"finny-backend/internal/repository"
	"finny-backend/internal/util"

	"github.com/shopspring/decimal"
)

// MascotName is the persona presented by the advisory endpoint.
const MascotName = "Finny the Squirrel"

const (
	analysisWindowDays = 30
	topCategoryLimit   = 3
)

// AdvisorService builds a user's financial context and asks the mascot for
// advice on top of it.
type AdvisorService interface {
	// BuildContext aggregates the user's last-30-day activity into an
	// ephemeral summary. It is read-only and deterministic for the same
	// stored data and clock reading.
	BuildContext(ctx context.Context, userID int64, displayName string) (*domain.FinancialContext, error)
	// Ask builds the context, composes the persona prompt around the caller's
	// question, and performs a single model call.
	Ask(ctx context.Context, userID int64, displayName, question string) (string, error)
}

// advisorService implements the AdvisorService interface.
type advisorService struct {
	dbExecutor   repository.DBExecutor
	userRepo     repository.UserRepository
	movementRepo repository.MovementRepository
	client       llm.Client
	now          func() time.Time
}

// NewAdvisorService creates a new instance of AdvisorService. The clock is
// injected so the analysis window is testable.
func NewAdvisorService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	movementRepo repository.MovementRepository,
	client llm.Client,
	now func() time.Time,
) AdvisorService {
	return &advisorService{
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		movementRepo: movementRepo,
		client:       client,
		now:          now,
	}
}

// BuildContext fetches the user's profile and windowed movement aggregates.
//
// Profile policy: when the user row exists, the stored username, goal and risk
// profile win over anything the caller supplied. When it does not, the fields
// degrade to the caller-supplied name and the documented defaults instead of
// failing; store errors other than not-found still propagate.
func (s *advisorService) BuildContext(ctx context.Context, userID int64, displayName string) (*domain.FinancialContext, error) {
	name := displayName
	goal := domain.DefaultCurrentGoal
	profile := domain.DefaultRiskProfile

	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	switch {
	case err == nil:
		name = user.Username
		if user.CurrentGoal != nil && *user.CurrentGoal != "" {
			goal = *user.CurrentGoal
		}
		if user.RiskProfile != nil && *user.RiskProfile != "" {
			profile = *user.RiskProfile
		}
	case util.IsError(err, util.ErrNotFound):
		// degrade to defaults
	default:
		return nil, fmt.Errorf("build context: failed to fetch user %d: %w", userID, err)
	}

	windowStart := s.now().AddDate(0, 0, -analysisWindowDays)

	kindTotals, err := s.movementRepo.SumByKindSince(ctx, s.dbExecutor, userID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("build context: %w", err)
	}
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range kindTotals {
		switch t.Kind {
		case domain.MovementKindIncome:
			income = t.Total
		case domain.MovementKindExpense:
			expenses = t.Total
		}
	}

	topCategories, err := s.movementRepo.TopExpenseCategoriesSince(ctx, s.dbExecutor, userID, windowStart, topCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("build context: %w", err)
	}

	return &domain.FinancialContext{
		UserName:      name,
		CurrentGoal:   goal,
		RiskProfile:   profile,
		WindowStart:   windowStart,
		Income:        income,
		Expenses:      expenses,
		Balance:       income.Sub(expenses),
		TopCategories: topCategories,
	}, nil
}

// Ask performs the full advisory round-trip: aggregate, compose, generate.
// Model failures pass through so the handler can categorize them.
func (s *advisorService) Ask(ctx context.Context, userID int64, displayName, question string) (string, error) {
	if s.client == nil {
		return "", &llm.APIError{StatusCode: http.StatusInternalServerError, Message: "AI client is not configured"}
	}

	fc, err := s.BuildContext(ctx, userID, displayName)
	if err != nil {
		return "", err
	}

	prompt := ComposePrompt(MascotName, fc.UserName, fc.Render(), question)

	advice, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return advice, nil
}
