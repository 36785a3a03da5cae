package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// CaseService implements case tracking for both dashboards.
type CaseService struct {
	repo          ports.CaseRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, notifications ports.NotificationRepository, log zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, notifications: notifications, log: log}
}

func (s *CaseService) List(ctx context.Context, userID string, role domain.Role) ([]domain.Case, error) {
	return s.repo.List(ctx, userID, role)
}

func (s *CaseService) Get(ctx context.Context, id string, actor ports.Identity) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Participant(actor.UserID) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// Open creates a case with empty document and task lists and
// createdAt == updatedAt, then notifies the client.
func (s *CaseService) Open(ctx context.Context, input ports.OpenCaseInput) (*domain.Case, error) {
	now := time.Now().UTC()
	status := input.Status
	if status == "" {
		status = domain.CaseActive
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	c := &domain.Case{
		ID:          newID("case"),
		ClientID:    input.ClientID,
		LawyerID:    input.Lawyer.UserID,
		ClientName:  input.ClientName,
		LawyerName:  input.Lawyer.Name,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      status,
		Priority:    priority,
		Progress:    input.Progress,
		Documents:   []domain.Document{},
		Tasks:       []domain.Task{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	s.notify(ctx, domain.Notification{
		UserID:  c.ClientID,
		Title:   "New Case Opened",
		Message: fmt.Sprintf("%s opened the case %q for you", c.LawyerName, c.Title),
		Type:    domain.NotifyCase,
		Link:    "/cases",
	})

	s.log.Info().Str("case_id", c.ID).Str("lawyer_id", c.LawyerID).Str("client_id", c.ClientID).Msg("case opened")
	return c, nil
}

// Update shallow-merges the patch and refreshes updatedAt on every mutation.
func (s *CaseService) Update(ctx context.Context, id string, patch ports.CasePatch, actor ports.Identity) (*domain.Case, error) {
	forbidden := false
	updated, err := s.repo.Update(ctx, id, func(c *domain.Case) {
		if !c.Participant(actor.UserID) {
			forbidden = true
			return
		}
		applyCasePatch(c, patch)
		c.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}
	if forbidden {
		return nil, domain.ErrForbidden
	}
	return updated, nil
}

func (s *CaseService) notify(ctx context.Context, n domain.Notification) {
	n.ID = newID("notif")
	n.CreatedAt = time.Now().UTC()
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.Warn().Err(err).Str("user_id", n.UserID).Msg("case notification not delivered")
	}
}

func applyCasePatch(c *domain.Case, p ports.CasePatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Progress != nil {
		c.Progress = *p.Progress
	}
}
