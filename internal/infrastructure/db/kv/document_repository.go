package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// DocumentRepository persists document metadata. The original deployment
// declared this collection but never wrote it; here uploads survive restarts.
type DocumentRepository struct {
	coll *collection[domain.Document]
}

func NewDocumentRepository(store ports.KVStore) *DocumentRepository {
	return &DocumentRepository{
		coll: newCollection(store, keyDocuments, func(d *domain.Document) string { return d.ID }),
	}
}

func (r *DocumentRepository) ListByCase(ctx context.Context, caseID string) ([]domain.Document, error) {
	return r.coll.filter(ctx, func(d *domain.Document) bool { return d.CaseID == caseID })
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	return r.coll.append(ctx, *doc)
}
