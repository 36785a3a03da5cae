package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/kv"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/memory"
)

func TestNotificationService_MarkReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(kv.NewNotificationRepository(memory.New()), zerolog.Nop())

	created, err := svc.Create(ctx, domain.Notification{
		UserID:  "1",
		Title:   "New Message",
		Message: "You have a new message from Sarah Chen",
		Type:    domain.NotifyMessage,
		Link:    "/chat/case_1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsRead {
		t.Fatalf("new notification should start unread")
	}

	first, err := svc.MarkRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !first.IsRead {
		t.Fatalf("not marked read: %+v", first)
	}

	second, err := svc.MarkRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("second mark read: %v", err)
	}
	if !second.IsRead {
		t.Fatalf("second call undid the flag: %+v", second)
	}
	if second.Title != first.Title || second.Message != first.Message || second.Link != first.Link {
		t.Fatalf("mark read touched other fields: %+v vs %+v", first, second)
	}
}

func TestNotificationService_MarkReadUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(kv.NewNotificationRepository(memory.New()), zerolog.Nop())

	if _, err := svc.MarkRead(ctx, "notif_missing"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_ListIsScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(kv.NewNotificationRepository(memory.New()), zerolog.Nop())

	if _, err := svc.Create(ctx, domain.Notification{UserID: "1", Title: "a", Type: domain.NotifyTask}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.Notification{UserID: "2", Title: "b", Type: domain.NotifyTask}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.List(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "1" {
		t.Fatalf("scoped list leaked records: %+v", mine)
	}
}
