package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// DemoPassword is the shared password of the seeded demo accounts.
const DemoPassword = "demo123"

// Demo account ids, cross-referenced by every fixture collection.
const (
	demoClientID = "1"
	demoLawyerID = "2"
)

// Seeder populates each collection with example records the first time the
// platform runs. Every collection is checked and written independently, so a
// partially-seeded store is completed rather than duplicated, and re-running
// against a populated store changes nothing.
type Seeder struct {
	users         ports.UserRepository
	appointments  ports.AppointmentRepository
	cases         ports.CaseRepository
	tasks         ports.TaskRepository
	messages      ports.MessageRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewSeeder(
	users ports.UserRepository,
	appointments ports.AppointmentRepository,
	cases ports.CaseRepository,
	tasks ports.TaskRepository,
	messages ports.MessageRepository,
	notifications ports.NotificationRepository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:         users,
		appointments:  appointments,
		cases:         cases,
		tasks:         tasks,
		messages:      messages,
		notifications: notifications,
		log:           log,
	}
}

// Run seeds whichever collections are still empty and returns how many
// collections it populated.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	users, err := demoUsers(now)
	if err != nil {
		return 0, err
	}

	steps := []struct {
		name string
		seed func() (bool, error)
	}{
		{"users", func() (bool, error) { return s.users.Seed(ctx, users) }},
		{"appointments", func() (bool, error) { return s.appointments.Seed(ctx, demoAppointments(now)) }},
		{"cases", func() (bool, error) { return s.cases.Seed(ctx, demoCases(now)) }},
		{"tasks", func() (bool, error) { return s.tasks.Seed(ctx, demoTasks(now)) }},
		{"messages", func() (bool, error) { return s.messages.Seed(ctx, demoMessages(now)) }},
		{"notifications", func() (bool, error) { return s.notifications.Seed(ctx, demoNotifications(now)) }},
	}

	var seeded int
	for _, step := range steps {
		done, err := step.seed()
		if err != nil {
			return seeded, err
		}
		if done {
			seeded++
			s.log.Info().Str("collection", step.name).Msg("demo data seeded")
		}
	}
	return seeded, nil
}

func demoUsers(now time.Time) ([]domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []domain.User{
		{
			ID:           demoClientID,
			Name:         "John Client",
			Email:        "client@demo.com",
			Role:         domain.RoleClient,
			PasswordHash: string(hash),
			Phone:        "+1 234 567 8900",
			Address:      "123 Main St, New York, NY",
			CreatedAt:    now,
		},
		{
			ID:           demoLawyerID,
			Name:         "Sarah Chen",
			Email:        "lawyer@demo.com",
			Role:         domain.RoleLawyer,
			PasswordHash: string(hash),
			Specialty:    "Criminal Law",
			Experience:   12,
			Rating:       4.9,
			Fees:         "$300/hour",
			Bio:          "Experienced criminal defense attorney with a track record of successful cases.",
			Phone:        "+1 234 567 8901",
			Address:      "456 Law St, New York, NY",
			CreatedAt:    now,
		},
	}, nil
}

func demoAppointments(now time.Time) []domain.Appointment {
	return []domain.Appointment{
		{
			ID:         "apt_1",
			ClientID:   demoClientID,
			LawyerID:   demoLawyerID,
			ClientName: "John Client",
			LawyerName: "Sarah Chen",
			Date:       now.AddDate(0, 0, 1).Format("2006-01-02"),
			Time:       "10:00",
			Duration:   60,
			Status:     domain.AppointmentConfirmed,
			MeetLink:   meetLink("apt_1"),
			Notes:      "Initial consultation for criminal case",
			CaseType:   "Criminal Law",
			CreatedAt:  now,
		},
		{
			ID:         "apt_2",
			ClientID:   demoClientID,
			LawyerID:   demoLawyerID,
			ClientName: "John Client",
			LawyerName: "Sarah Chen",
			Date:       now.AddDate(0, 0, -1).Format("2006-01-02"),
			Time:       "14:00",
			Duration:   45,
			Status:     domain.AppointmentCompleted,
			MeetLink:   meetLink("apt_2"),
			Notes:      "Case review and strategy discussion",
			CaseType:   "Criminal Law",
			CreatedAt:  now.AddDate(0, 0, -2),
		},
	}
}

func demoCases(now time.Time) []domain.Case {
	return []domain.Case{
		{
			ID:          "case_1",
			ClientID:    demoClientID,
			LawyerID:    demoLawyerID,
			ClientName:  "John Client",
			LawyerName:  "Sarah Chen",
			Title:       "Criminal Defense Case",
			Description: "Defense against criminal charges related to financial fraud allegations.",
			Type:        "Criminal Law",
			Status:      domain.CaseActive,
			Priority:    domain.PriorityHigh,
			Progress:    65,
			Documents:   []domain.Document{},
			Tasks:       []domain.Task{},
			CreatedAt:   now.AddDate(0, 0, -7),
			UpdatedAt:   now,
		},
	}
}

func demoTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:          "task_1",
			CaseID:      "case_1",
			Title:       "Upload Financial Documents",
			Description: "Please upload all financial documents related to the case including bank statements and tax returns.",
			AssignedTo:  demoClientID,
			AssignedBy:  demoLawyerID,
			DueDate:     now.AddDate(0, 0, 7),
			Status:      domain.TaskPending,
			CreatedAt:   now,
		},
		{
			ID:          "task_2",
			CaseID:      "case_1",
			Title:       "Prepare Case Summary",
			Description: "Prepare comprehensive case summary for court filing.",
			AssignedTo:  demoLawyerID,
			AssignedBy:  demoLawyerID,
			DueDate:     now.AddDate(0, 0, 3),
			Status:      domain.TaskPending,
			CreatedAt:   now,
		},
	}
}

func demoMessages(now time.Time) []domain.ChatMessage {
	return []domain.ChatMessage{
		{
			ID:         "msg_1",
			CaseID:     "case_1",
			SenderID:   demoLawyerID,
			SenderName: "Sarah Chen",
			SenderRole: domain.RoleLawyer,
			Message:    "Hello John, I hope you're doing well. I've reviewed your case details and we have a strong defense strategy.",
			Timestamp:  now.Add(-time.Hour),
			IsRead:     true,
		},
		{
			ID:         "msg_2",
			CaseID:     "case_1",
			SenderID:   demoClientID,
			SenderName: "John Client",
			SenderRole: domain.RoleClient,
			Message:    "Thank you Sarah. I'm feeling more confident about this. What documents do you need from me?",
			Timestamp:  now.Add(-30 * time.Minute),
			IsRead:     true,
		},
		{
			ID:         "msg_3",
			CaseID:     "case_1",
			SenderID:   demoLawyerID,
			SenderName: "Sarah Chen",
			SenderRole: domain.RoleLawyer,
			Message:    "I've assigned you a task to upload the financial documents. Please check your task list.",
			Timestamp:  now.Add(-15 * time.Minute),
			IsRead:     false,
		},
	}
}

func demoNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			ID:        "notif_1",
			UserID:    demoClientID,
			Title:     "New Message",
			Message:   "You have a new message from Sarah Chen",
			Type:      domain.NotifyMessage,
			IsRead:    false,
			CreatedAt: now.Add(-15 * time.Minute),
			Link:      "/chat/case_1",
		},
		{
			ID:        "notif_2",
			UserID:    demoClientID,
			Title:     "Task Assigned",
			Message:   "New task: Upload Financial Documents",
			Type:      domain.NotifyTask,
			IsRead:    false,
			CreatedAt: now.Add(-30 * time.Minute),
			Link:      "/tasks",
		},
		{
			ID:        "notif_3",
			UserID:    demoClientID,
			Title:     "Appointment Confirmed",
			Message:   "Your appointment with Sarah Chen has been confirmed",
			Type:      domain.NotifyAppointment,
			IsRead:    true,
			CreatedAt: now.AddDate(0, 0, -1),
			Link:      "/appointments",
		},
	}
}
