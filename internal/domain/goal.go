// internal/domain/goal.go
package domain

import (
	"github.com/shopspring/decimal"
)

// GoalKind selects which of the two goal tables an operation targets. Savings
// and investment goals share one shape but are stored independently.
type GoalKind string

const (
	GoalKindSavings    GoalKind = "ahorro"
	GoalKindInvestment GoalKind = "inversion"
)

// Goal represents a savings or investment goal. CurrentAmount defaults to 0 on
// creation; nothing enforces current <= target.
type Goal struct {
	ID            int64           `db:"id_meta"`
	UserID        int64           `db:"user_id"`
	Description   string          `db:"descripcion"`
	TargetAmount  decimal.Decimal `db:"monto_objetivo"`
	CurrentAmount decimal.Decimal `db:"monto_actual"`
}

// NewGoal creates a new Goal instance with a zero current amount.
func NewGoal(userID int64, description string, target decimal.Decimal) *Goal {
	return &Goal{
		UserID:        userID,
		Description:   description,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
	}
}

// GoalUpdate carries the optional fields of a goal update. At least one must
// be set; the repository applies a three-way update depending on which are.
type GoalUpdate struct {
	CurrentAmount *decimal.Decimal
	TargetAmount  *decimal.Decimal
}

// Empty reports whether the update carries no fields at all.
func (u GoalUpdate) Empty() bool {
	return u.CurrentAmount == nil && u.TargetAmount == nil
}
