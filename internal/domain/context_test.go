// internal/domain/context_test.go
package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{"Zero", decimal.Zero, "$0.00"},
		{"Small", decimal.NewFromFloat(4.5), "$4.50"},
		{"Hundreds", decimal.NewFromFloat(880), "$880.00"},
		{"Thousands", decimal.NewFromFloat(1234.5), "$1,234.50"},
		{"Millions", decimal.NewFromInt(1234567), "$1,234,567.00"},
		{"Negative", decimal.NewFromFloat(-1234.5), "-$1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.in))
		})
	}
}

func TestFinancialContextRender(t *testing.T) {
	windowStart := time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)

	t.Run("WithExpenses", func(t *testing.T) {
		fc := &FinancialContext{
			UserName:    "ana",
			CurrentGoal: "Buy a bike",
			RiskProfile: RiskProfileModerate,
			WindowStart: windowStart,
			Income:      decimal.NewFromInt(1000),
			Expenses:    decimal.NewFromInt(120),
			Balance:     decimal.NewFromInt(880),
			TopCategories: []CategoryTotal{
				{Category: "Food", Total: decimal.NewFromInt(80)},
				{Category: "Transport", Total: decimal.NewFromInt(40)},
			},
		}

		out := fc.Render()
		assert.Contains(t, out, "Name: ana")
		assert.Contains(t, out, "Current goal: Buy a bike")
		assert.Contains(t, out, "Risk profile (for investment advice): Moderate")
		assert.Contains(t, out, "Financial summary (2025-05-16 to today):")
		assert.Contains(t, out, "- Analysis window: last 30 days.")
		assert.Contains(t, out, "- Top spending categories: Food: $80.00, Transport: $40.00")
		assert.NotContains(t, out, NoRecentExpenses)
	})

	t.Run("NoExpensesRendersLiteralSentence", func(t *testing.T) {
		fc := &FinancialContext{
			UserName:    "leo",
			CurrentGoal: DefaultCurrentGoal,
			RiskProfile: DefaultRiskProfile,
			WindowStart: windowStart,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Balance:     decimal.Zero,
		}

		assert.Contains(t, fc.Render(), "- Top spending categories: "+NoRecentExpenses)
	})

	t.Run("Deterministic", func(t *testing.T) {
		fc := &FinancialContext{UserName: "x", WindowStart: windowStart}
		assert.Equal(t, fc.Render(), fc.Render())
	})
}

func TestNewMovementDefaults(t *testing.T) {
	m := NewMovement(1, "Food", nil, decimal.NewFromInt(10), "")
	assert.Equal(t, MovementKindExpense, m.Kind)

	m = NewMovement(1, "Salary", nil, decimal.NewFromInt(10), "Ingreso")
	assert.Equal(t, MovementKindIncome, m.Kind)

	assert.False(t, MovementKind("Prestamo").Valid())
}
