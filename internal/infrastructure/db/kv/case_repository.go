package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type CaseRepository struct {
	coll *collection[domain.Case]
}

func NewCaseRepository(store ports.KVStore) *CaseRepository {
	return &CaseRepository{
		coll: newCollection(store, keyCases, func(c *domain.Case) string { return c.ID }),
	}
}

func (r *CaseRepository) List(ctx context.Context, userID string, role domain.Role) ([]domain.Case, error) {
	return r.coll.filter(ctx, func(c *domain.Case) bool {
		if role == domain.RoleClient {
			return c.ClientID == userID
		}
		return c.LawyerID == userID
	})
}

func (r *CaseRepository) FindByID(ctx context.Context, id string) (*domain.Case, error) {
	c, found, err := r.coll.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrCaseNotFound
	}
	return c, nil
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	return r.coll.append(ctx, *c)
}

func (r *CaseRepository) Update(ctx context.Context, id string, fn func(*domain.Case)) (*domain.Case, error) {
	c, found, err := r.coll.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrCaseNotFound
	}
	return c, nil
}

func (r *CaseRepository) Seed(ctx context.Context, cases []domain.Case) (bool, error) {
	return r.coll.seed(ctx, cases)
}
