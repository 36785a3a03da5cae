package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// SessionRepository stores one blob per token so the user record and the
// token marker are always written and cleared together.
type SessionRepository struct {
	store ports.KVStore
}

func NewSessionRepository(store ports.KVStore) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.store.Set(ctx, sessionKeyPrefix+session.Token, raw)
}

func (r *SessionRepository) Find(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := r.store.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// Corrupt session state degrades to logged-out.
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.store.Delete(ctx, sessionKeyPrefix+token)
}
