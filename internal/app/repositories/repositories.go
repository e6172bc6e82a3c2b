package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor so the
// bootstrap wiring stays in one place.
type Repositories struct {
	User          *UserRepository
	School        *SchoolRepository
	Schedule      *ScheduleRepository
	Material      *MaterialRepository
	TravelTime    *TravelTimeRepository
	Token         *TokenRepository
	PasswordReset *PasswordResetTokenRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		School:        NewSchoolRepository(db),
		Schedule:      NewScheduleRepository(db),
		Material:      NewMaterialRepository(db),
		TravelTime:    NewTravelTimeRepository(db),
		Token:         NewTokenRepository(db),
		PasswordReset: NewPasswordResetTokenRepository(db),
	}
}
