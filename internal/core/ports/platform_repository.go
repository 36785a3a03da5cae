package ports

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
)

// The five dashboard repositories share one contract: List filters the full
// collection by scope preserving storage order, Create appends and rewrites,
// Update applies fn to the record matched by linear scan and rewrites. Update
// on an unknown id returns the entity's not-found error and leaves the
// collection untouched. Each implementation serializes its own
// read-modify-write cycles (single writer per collection).

type AppointmentRepository interface {
	// List scopes by clientId for clients and lawyerId for lawyers.
	List(ctx context.Context, userID string, role domain.Role) ([]domain.Appointment, error)
	Create(ctx context.Context, apt *domain.Appointment) error
	Update(ctx context.Context, id string, fn func(*domain.Appointment)) (*domain.Appointment, error)
	Seed(ctx context.Context, apts []domain.Appointment) (bool, error)
}

type CaseRepository interface {
	List(ctx context.Context, userID string, role domain.Role) ([]domain.Case, error)
	FindByID(ctx context.Context, id string) (*domain.Case, error)
	Create(ctx context.Context, c *domain.Case) error
	Update(ctx context.Context, id string, fn func(*domain.Case)) (*domain.Case, error)
	Seed(ctx context.Context, cases []domain.Case) (bool, error)
}

type TaskRepository interface {
	// List scopes by assignee.
	List(ctx context.Context, assignedTo string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, id string, fn func(*domain.Task)) (*domain.Task, error)
	Seed(ctx context.Context, tasks []domain.Task) (bool, error)
}

type MessageRepository interface {
	ListByCase(ctx context.Context, caseID string) ([]domain.ChatMessage, error)
	Create(ctx context.Context, msg *domain.ChatMessage) error
	// MarkRead flips isRead on every unread message in the case that was not
	// sent by readerID. It returns the number of messages flipped.
	MarkRead(ctx context.Context, caseID, readerID string) (int, error)
	Seed(ctx context.Context, msgs []domain.ChatMessage) (bool, error)
}

type NotificationRepository interface {
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	Update(ctx context.Context, id string, fn func(*domain.Notification)) (*domain.Notification, error)
	Seed(ctx context.Context, ns []domain.Notification) (bool, error)
}

type DocumentRepository interface {
	ListByCase(ctx context.Context, caseID string) ([]domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) error
}

// ObjectStore holds document bytes. Put returns the stable URL recorded on
// the document metadata.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}
