package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type MessageRepository struct {
	coll *collection[domain.ChatMessage]
}

func NewMessageRepository(store ports.KVStore) *MessageRepository {
	return &MessageRepository{
		coll: newCollection(store, keyMessages, func(m *domain.ChatMessage) string { return m.ID }),
	}
}

func (r *MessageRepository) ListByCase(ctx context.Context, caseID string) ([]domain.ChatMessage, error) {
	return r.coll.filter(ctx, func(m *domain.ChatMessage) bool { return m.CaseID == caseID })
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return r.coll.append(ctx, *msg)
}

func (r *MessageRepository) MarkRead(ctx context.Context, caseID, readerID string) (int, error) {
	return r.coll.updateAll(ctx,
		func(m *domain.ChatMessage) bool {
			return m.CaseID == caseID && m.SenderID != readerID && !m.IsRead
		},
		func(m *domain.ChatMessage) { m.IsRead = true },
	)
}

func (r *MessageRepository) Seed(ctx context.Context, msgs []domain.ChatMessage) (bool, error) {
	return r.coll.seed(ctx, msgs)
}
