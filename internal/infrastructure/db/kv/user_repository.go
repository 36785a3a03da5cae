package kv

import (
	"context"
	"strings"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// UserRepository stores accounts in the users snapshot.
type UserRepository struct {
	coll *collection[domain.User]
}

func NewUserRepository(store ports.KVStore) *UserRepository {
	return &UserRepository{
		coll: newCollection(store, keyUsers, func(u *domain.User) string { return u.ID }),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.coll.append(ctx, *user)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, func(u *domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	return r.findOne(ctx, func(u *domain.User) bool {
		return strings.EqualFold(u.Email, email) && u.Role == role
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, func(u *domain.User) bool { return u.ID == id })
}

func (r *UserRepository) Update(ctx context.Context, id string, fn func(*domain.User)) (*domain.User, error) {
	user, found, err := r.coll.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Seed(ctx context.Context, users []domain.User) (bool, error) {
	return r.coll.seed(ctx, users)
}

func (r *UserRepository) findOne(ctx context.Context, match func(*domain.User) bool) (*domain.User, error) {
	users, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
