package ports

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
)

// UserRepository persists platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail matches on email alone, regardless of role.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndRole matches the exact (email, role) pair used at login.
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies fn to the matching record and rewrites the collection.
	Update(ctx context.Context, id string, fn func(*domain.User)) (*domain.User, error)
	// Seed writes the fixture records if and only if the collection is empty.
	// It reports whether anything was written.
	Seed(ctx context.Context, users []domain.User) (bool, error)
}

// SessionRepository persists bearer sessions, one record per token.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	// Find returns ErrSessionNotFound for a missing token. A session record
	// that fails to decode is treated the same way: corrupt state degrades to
	// logged-out rather than surfacing an error.
	Find(ctx context.Context, token string) (*domain.Session, error)
	// Delete is idempotent: removing an absent session succeeds.
	Delete(ctx context.Context, token string) error
}
