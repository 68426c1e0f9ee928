// internal/domain/movement.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// MovementKind defines the direction of a ledger movement. The wire values are
// kept from the original API contract consumed by the mobile client.
type MovementKind string

const (
	MovementKindIncome  MovementKind = "Ingreso"
	MovementKindExpense MovementKind = "Egreso"
)

// Valid reports whether k is one of the two accepted kinds.
func (k MovementKind) Valid() bool {
	return k == MovementKindIncome || k == MovementKindExpense
}

// KindOrDefault maps an empty kind to the expense default.
func KindOrDefault(kind string) MovementKind {
	if kind == "" {
		return MovementKindExpense
	}
	return MovementKind(kind)
}

// Movement represents a single ledger entry. Amounts are stored non-negative;
// the sign is carried by Kind only. Date is set by the database on insert and
// immutable afterwards.
type Movement struct {
	ID       int64           `db:"id_movimiento" json:"id_movimiento"`
	UserID   int64           `db:"user_id" json:"user_id"`
	Date     time.Time       `db:"fecha" json:"fecha"`
	Amount   decimal.Decimal `db:"monto" json:"monto"`
	Category string          `db:"categoria" json:"categoria"`
	Note     *string         `db:"nota" json:"nota"`
	Kind     MovementKind    `db:"tipo" json:"tipo"`
}

// NewMovement creates a new Movement instance, applying the expense default
// when kind is empty.
func NewMovement(userID int64, category string, note *string, amount decimal.Decimal, kind string) *Movement {
	return &Movement{
		UserID:   userID,
		Category: category,
		Note:     note,
		Amount:   amount,
		Kind:     KindOrDefault(kind),
	}
}

// CategoryTotal is a grouped projection of movement amounts by category.
type CategoryTotal struct {
	Category string          `db:"categoria" json:"categoria"`
	Total    decimal.Decimal `db:"total" json:"total"`
}

// KindTotal is a grouped projection of movement amounts by kind.
type KindTotal struct {
	Kind  MovementKind    `db:"tipo"`
	Total decimal.Decimal `db:"total"`
}

// Balance summarizes a user's movements as income, expenses and their
// difference.
type Balance struct {
	Income   decimal.Decimal `json:"ingresos"`
	Expenses decimal.Decimal `json:"egresos"`
	Balance  decimal.Decimal `json:"balance"`
}
