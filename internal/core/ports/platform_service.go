package ports

import (
	"context"
	"time"

	"github.com/legalconnect/platform-api/internal/core/domain"
)

// Identity is the authenticated caller, extracted from the session by the
// transport layer and passed down to every scoped operation.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// BookAppointmentInput carries a client's booking request. Client identity
// comes from the session; the lawyer side comes from the directory selection.
type BookAppointmentInput struct {
	Client     Identity
	LawyerID   string
	LawyerName string
	Date       string
	Time       string
	Duration   int
	Notes      string
	CaseType   string
}

// AppointmentPatch is a shallow-merge update (accept/reject/cancel/reschedule).
type AppointmentPatch struct {
	Date     *string
	Time     *string
	Duration *int
	Status   *domain.AppointmentStatus
	MeetLink *string
	Notes    *string
}

type AppointmentService interface {
	List(ctx context.Context, userID string, role domain.Role) ([]domain.Appointment, error)
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, id string, patch AppointmentPatch, actor Identity) (*domain.Appointment, error)
}

// OpenCaseInput carries a lawyer's case-creation request.
type OpenCaseInput struct {
	Lawyer      Identity
	ClientID    string
	ClientName  string
	Title       string
	Description string
	Type        string
	Status      domain.CaseStatus
	Priority    domain.CasePriority
	Progress    int
}

type CasePatch struct {
	Title       *string
	Description *string
	Type        *string
	Status      *domain.CaseStatus
	Priority    *domain.CasePriority
	Progress    *int
}

type CaseService interface {
	List(ctx context.Context, userID string, role domain.Role) ([]domain.Case, error)
	// Get returns domain.ErrForbidden when the caller is not a participant.
	Get(ctx context.Context, id string, actor Identity) (*domain.Case, error)
	Open(ctx context.Context, input OpenCaseInput) (*domain.Case, error)
	Update(ctx context.Context, id string, patch CasePatch, actor Identity) (*domain.Case, error)
}

type CreateTaskInput struct {
	Actor       Identity
	CaseID      string
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
}

type TaskPatch struct {
	Title       *string
	Description *string
	AssignedTo  *string
	DueDate     *time.Time
	Status      *domain.TaskStatus
}

type TaskService interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
}

type SendMessageInput struct {
	Sender Identity
	CaseID string
	Text   string
}

type MessageService interface {
	List(ctx context.Context, caseID string, actor Identity) ([]domain.ChatMessage, error)
	Send(ctx context.Context, input SendMessageInput) (*domain.ChatMessage, error)
	// MarkRead flips isRead on the counterpart's messages; returns the count.
	MarkRead(ctx context.Context, caseID string, actor Identity) (int, error)
}

type NotificationService interface {
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	// MarkRead flips only isRead and is idempotent.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

type UploadDocumentInput struct {
	Actor       Identity
	CaseID      string
	Name        string
	ContentType string
	Folder      string
	Body        []byte
}

type DocumentService interface {
	List(ctx context.Context, caseID string, actor Identity) ([]domain.Document, error)
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
}
