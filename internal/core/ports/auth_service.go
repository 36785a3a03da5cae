package ports

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
)

// SignupInput carries the registration form. Lawyer-only fields are ignored
// for clients.
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Role       domain.Role
	Phone      string
	Specialty  string
	Experience int
	Fees       string
}

// ProfilePatch is a shallow-merge profile edit: nil fields keep their current
// value, non-nil fields overwrite.
type ProfilePatch struct {
	Name       *string
	Photo      *string
	Phone      *string
	Address    *string
	Specialty  *string
	Experience *int
	Rating     *float64
	Fees       *string
	Bio        *string
}

// AuthService owns the signed-in identity: establishing it (login/signup),
// reading it back (CurrentUser/IsAuthenticated) and tearing it down (Logout).
type AuthService interface {
	// Login authenticates the exact (email, role) pair. Every failure mode
	// returns domain.ErrInvalidCredentials so callers cannot distinguish an
	// unknown email from a wrong password.
	Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error)
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	// Logout is idempotent.
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	IsAuthenticated(ctx context.Context, token string) bool
	UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*domain.User, error)
}
