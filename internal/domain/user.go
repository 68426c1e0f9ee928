// internal/domain/user.go
package domain

import "time"

// RiskProfile values accepted in the users table. Advice tone for investment
// questions depends on this.
const (
	RiskProfileConservative = "Conservative"
	RiskProfileModerate     = "Moderate"
	RiskProfileAggressive   = "Aggressive"
)

// Defaults applied when the profile columns are unset.
const (
	DefaultCurrentGoal = "None set"
	DefaultRiskProfile = RiskProfileModerate
)

// User represents a registered user.
type User struct {
	ID           int64     `db:"id_user" json:"id_user"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	CurrentGoal  *string   `db:"meta_actual" json:"meta_actual,omitempty"`
	RiskProfile  *string   `db:"perfil_riesgo" json:"perfil_riesgo,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance with the given credentials.
// The password must already be hashed.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
