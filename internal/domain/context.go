// internal/domain/context.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NoRecentExpenses is the literal sentence rendered when the analysis window
// contains no expense movements.
const NoRecentExpenses = "No recent expenses."

// FinancialContext is the ephemeral summary of a user's last-30-day activity
// fed to the advisory model. It is never persisted; it exists only for the
// duration of one advisory request.
type FinancialContext struct {
	UserName      string
	CurrentGoal   string
	RiskProfile   string
	WindowStart   time.Time
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Balance       decimal.Decimal
	TopCategories []CategoryTotal // descending by summed amount, at most 3
}

// Render produces the fixed-format textual block embedded in the advisory
// prompt. Output is deterministic for the same data and window start.
func (c *FinancialContext) Render() string {
	categories := NoRecentExpenses
	if len(c.TopCategories) > 0 {
		parts := make([]string, len(c.TopCategories))
		for i, ct := range c.TopCategories {
			parts[i] = fmt.Sprintf("%s: %s", ct.Category, FormatMoney(ct.Total))
		}
		categories = strings.Join(parts, ", ")
	}

	var b strings.Builder
	b.WriteString("User context:\n")
	fmt.Fprintf(&b, "Name: %s\n", c.UserName)
	fmt.Fprintf(&b, "Current goal: %s\n", c.CurrentGoal)
	fmt.Fprintf(&b, "Risk profile (for investment advice): %s\n", c.RiskProfile)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Financial summary (%s to today):\n", c.WindowStart.Format("2006-01-02"))
	b.WriteString("- Analysis window: last 30 days.\n")
	fmt.Fprintf(&b, "- Total income: %s\n", FormatMoney(c.Income))
	fmt.Fprintf(&b, "- Total expenses: %s\n", FormatMoney(c.Expenses))
	fmt.Fprintf(&b, "- Balance (income - expenses): %s\n", FormatMoney(c.Balance))
	fmt.Fprintf(&b, "- Top spending categories: %s\n", categories)
	return b.String()
}

// FormatMoney renders an amount as a dollar figure with two decimals and
// thousands separators, e.g. $1,234.50.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "$" + strings.Join(groups, ",") + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
