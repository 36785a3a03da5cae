package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// MessageService implements the per-case conversation thread.
type MessageService struct {
	repo          ports.MessageRepository
	cases         ports.CaseRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, cases ports.CaseRepository, notifications ports.NotificationRepository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, cases: cases, notifications: notifications, log: log}
}

func (s *MessageService) List(ctx context.Context, caseID string, actor ports.Identity) ([]domain.ChatMessage, error) {
	if _, err := s.participantCase(ctx, caseID, actor); err != nil {
		return nil, err
	}
	return s.repo.ListByCase(ctx, caseID)
}

// Send appends the message with synthesized id and timestamp and notifies the
// other party on the case.
func (s *MessageService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.ChatMessage, error) {
	c, err := s.participantCase(ctx, input.CaseID, input.Sender)
	if err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		ID:         newID("msg"),
		CaseID:     input.CaseID,
		SenderID:   input.Sender.UserID,
		SenderName: input.Sender.Name,
		SenderRole: input.Sender.Role,
		Message:    input.Text,
		Timestamp:  time.Now().UTC(),
		IsRead:     false,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("failed to send message")
		return nil, err
	}

	recipientID, _ := c.Counterpart(input.Sender.UserID)
	n := domain.Notification{
		ID:        newID("notif"),
		UserID:    recipientID,
		Title:     "New Message",
		Message:   fmt.Sprintf("You have a new message from %s", msg.SenderName),
		Type:      domain.NotifyMessage,
		Link:      "/chat/" + input.CaseID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.Warn().Err(err).Str("user_id", recipientID).Msg("message notification not delivered")
	}

	return msg, nil
}

// MarkRead flips isRead on every unread message the counterpart sent in the
// case. Re-running is a no-op.
func (s *MessageService) MarkRead(ctx context.Context, caseID string, actor ports.Identity) (int, error) {
	if _, err := s.participantCase(ctx, caseID, actor); err != nil {
		return 0, err
	}
	return s.repo.MarkRead(ctx, caseID, actor.UserID)
}

func (s *MessageService) participantCase(ctx context.Context, caseID string, actor ports.Identity) (*domain.Case, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.Participant(actor.UserID) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}
