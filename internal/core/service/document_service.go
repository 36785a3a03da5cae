package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

const defaultFolder = "General"

// DocumentService implements case document sharing: metadata in the documents
// collection, bytes in the object store.
type DocumentService struct {
	repo          ports.DocumentRepository
	cases         ports.CaseRepository
	objects       ports.ObjectStore
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, cases ports.CaseRepository, objects ports.ObjectStore, notifications ports.NotificationRepository, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, cases: cases, objects: objects, notifications: notifications, log: log}
}

func (s *DocumentService) List(ctx context.Context, caseID string, actor ports.Identity) ([]domain.Document, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.Participant(actor.UserID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByCase(ctx, caseID)
}

// Upload stores the bytes first, then the metadata record, so a stored URL
// always points at existing content. The counterpart is notified.
func (s *DocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (*domain.Document, error) {
	c, err := s.cases.FindByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if !c.Participant(input.Actor.UserID) {
		return nil, domain.ErrForbidden
	}

	doc := &domain.Document{
		ID:         newID("doc"),
		CaseID:     input.CaseID,
		Name:       input.Name,
		Type:       input.ContentType,
		Size:       int64(len(input.Body)),
		UploadedBy: input.Actor.UserID,
		UploadedAt: time.Now().UTC(),
		Folder:     input.Folder,
	}
	if doc.Folder == "" {
		doc.Folder = defaultFolder
	}

	url, err := s.objects.Put(ctx, input.CaseID+"/"+doc.ID, input.ContentType, input.Body)
	if err != nil {
		s.log.Error().Err(err).Str("case_id", input.CaseID).Msg("failed to store document bytes")
		return nil, err
	}
	doc.URL = url

	if err := s.repo.Create(ctx, doc); err != nil {
		s.log.Error().Err(err).Msg("failed to record document")
		return nil, err
	}

	recipientID, _ := c.Counterpart(input.Actor.UserID)
	n := domain.Notification{
		ID:        newID("notif"),
		UserID:    recipientID,
		Title:     "Document Uploaded",
		Message:   fmt.Sprintf("%s uploaded %s", input.Actor.Name, doc.Name),
		Type:      domain.NotifyDocument,
		Link:      "/documents",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.Warn().Err(err).Str("user_id", recipientID).Msg("document notification not delivered")
	}

	s.log.Info().Str("document_id", doc.ID).Str("case_id", doc.CaseID).Int64("size", doc.Size).Msg("document uploaded")
	return doc, nil
}
