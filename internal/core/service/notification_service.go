package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// NotificationService implements the per-user alert feed.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.List(ctx, userID)
}

func (s *NotificationService) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = newID("notif")
	n.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead flips only isRead. An already-read notification stays read, so the
// call is idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.Update(ctx, id, func(n *domain.Notification) {
		n.IsRead = true
	})
}
