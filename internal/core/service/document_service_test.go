package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/kv"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/memory"
	"github.com/legalconnect/platform-api/internal/infrastructure/objectstore"
)

type documentFixture struct {
	documents     *DocumentService
	objects       *objectstore.MemoryStore
	notifications *kv.NotificationRepository
	caseID        string
}

func newDocumentFixture(t *testing.T) documentFixture {
	t.Helper()
	store := memory.New()
	caseRepo := kv.NewCaseRepository(store)
	notificationRepo := kv.NewNotificationRepository(store)
	objects := objectstore.NewMemoryStore()

	c := domain.Case{ID: "case_1", ClientID: "1", LawyerID: "2", ClientName: "John Client", LawyerName: "Sarah Chen"}
	if err := caseRepo.Create(context.Background(), &c); err != nil {
		t.Fatalf("create case: %v", err)
	}

	return documentFixture{
		documents:     NewDocumentService(kv.NewDocumentRepository(store), caseRepo, objects, notificationRepo, zerolog.Nop()),
		objects:       objects,
		notifications: notificationRepo,
		caseID:        c.ID,
	}
}

func TestDocumentService_UploadStoresBytesAndMetadata(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)
	body := []byte("%PDF-1.4 bank statement")

	doc, err := f.documents.Upload(ctx, ports.UploadDocumentInput{
		Actor:       demoClient,
		CaseID:      f.caseID,
		Name:        "bank_statement.pdf",
		ContentType: "application/pdf",
		Body:        body,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if doc.ID == "" || doc.UploadedAt.IsZero() {
		t.Fatalf("id or timestamp not synthesized: %+v", doc)
	}
	if doc.Size != int64(len(body)) || doc.Type != "application/pdf" {
		t.Fatalf("metadata mismatch: %+v", doc)
	}
	if doc.Folder != "General" {
		t.Fatalf("empty folder should default to General, got %q", doc.Folder)
	}
	if doc.UploadedBy != demoClient.UserID {
		t.Fatalf("uploader not taken from session: %+v", doc)
	}
	if !strings.HasSuffix(doc.URL, f.caseID+"/"+doc.ID) {
		t.Fatalf("url does not reference the stored object: %q", doc.URL)
	}

	stored, ok := f.objects.Get(f.caseID + "/" + doc.ID)
	if !ok {
		t.Fatalf("object bytes missing from store")
	}
	if !bytes.Equal(stored, body) {
		t.Fatalf("stored bytes differ from upload")
	}

	// Metadata survives a fresh read through the repository.
	listed, err := f.documents.List(ctx, f.caseID, demoLawyer)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != doc.ID || listed[0].Name != "bank_statement.pdf" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// The lawyer is told about the new file.
	ns, _ := f.notifications.List(ctx, demoLawyer.UserID)
	if len(ns) != 1 || ns[0].Type != domain.NotifyDocument {
		t.Fatalf("unexpected notifications: %+v", ns)
	}
}

func TestDocumentService_UploadKeepsSubmittedFolder(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)

	doc, err := f.documents.Upload(ctx, ports.UploadDocumentInput{
		Actor:       demoLawyer,
		CaseID:      f.caseID,
		Name:        "motion.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Folder:      "Court Filings",
		Body:        []byte("draft"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.Folder != "Court Filings" {
		t.Fatalf("submitted folder overwritten: %q", doc.Folder)
	}
}

func TestDocumentService_OutsiderCannotUploadOrList(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)
	outsider := ports.Identity{UserID: "99", Name: "Eve", Role: domain.RoleClient}

	_, err := f.documents.Upload(ctx, ports.UploadDocumentInput{
		Actor:       outsider,
		CaseID:      f.caseID,
		Name:        "x.txt",
		ContentType: "text/plain",
		Body:        []byte("x"),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := f.objects.Get(f.caseID + "/x.txt"); ok {
		t.Fatalf("forbidden upload must not store bytes")
	}

	if _, err := f.documents.List(ctx, f.caseID, outsider); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDocumentService_UnknownCase(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)

	_, err := f.documents.Upload(ctx, ports.UploadDocumentInput{
		Actor:       demoClient,
		CaseID:      "case_missing",
		Name:        "x.txt",
		ContentType: "text/plain",
		Body:        []byte("x"),
	})
	if !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}
