package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type NotificationRepository struct {
	coll *collection[domain.Notification]
}

func NewNotificationRepository(store ports.KVStore) *NotificationRepository {
	return &NotificationRepository{
		coll: newCollection(store, keyNotifications, func(n *domain.Notification) string { return n.ID }),
	}
}

func (r *NotificationRepository) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.coll.filter(ctx, func(n *domain.Notification) bool { return n.UserID == userID })
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.coll.append(ctx, *n)
}

func (r *NotificationRepository) Update(ctx context.Context, id string, fn func(*domain.Notification)) (*domain.Notification, error) {
	n, found, err := r.coll.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func (r *NotificationRepository) Seed(ctx context.Context, ns []domain.Notification) (bool, error) {
	return r.coll.seed(ctx, ns)
}
