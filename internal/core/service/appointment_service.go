package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// AppointmentService implements booking and the accept/reject/cancel flow.
type AppointmentService struct {
	repo          ports.AppointmentRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, notifications ports.NotificationRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, notifications: notifications, log: log}
}

func (s *AppointmentService) List(ctx context.Context, userID string, role domain.Role) ([]domain.Appointment, error) {
	return s.repo.List(ctx, userID, role)
}

// Book creates the appointment in pending status, synthesizing id, createdAt
// and the meeting link, and notifies the lawyer. The notification is an
// independent write: its failure never rolls back the booking.
func (s *AppointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	apt := &domain.Appointment{
		ID:         newID("apt"),
		ClientID:   input.Client.UserID,
		ClientName: input.Client.Name,
		LawyerID:   input.LawyerID,
		LawyerName: input.LawyerName,
		Date:       input.Date,
		Time:       input.Time,
		Duration:   input.Duration,
		Status:     domain.AppointmentPending,
		Notes:      input.Notes,
		CaseType:   input.CaseType,
		CreatedAt:  time.Now().UTC(),
	}
	apt.MeetLink = meetLink(apt.ID)

	if err := s.repo.Create(ctx, apt); err != nil {
		s.log.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	s.notify(ctx, domain.Notification{
		UserID:  apt.LawyerID,
		Title:   "New Appointment Request",
		Message: fmt.Sprintf("%s requested a %s consultation on %s at %s", apt.ClientName, apt.CaseType, apt.Date, apt.Time),
		Type:    domain.NotifyAppointment,
		Link:    "/appointments",
	})

	s.log.Info().Str("appointment_id", apt.ID).Str("client_id", apt.ClientID).Str("lawyer_id", apt.LawyerID).Msg("appointment booked")
	return apt, nil
}

// Update shallow-merges the patch over the appointment. Only participants may
// update; a status change notifies the other party.
func (s *AppointmentService) Update(ctx context.Context, id string, patch ports.AppointmentPatch, actor ports.Identity) (*domain.Appointment, error) {
	forbidden := false
	updated, err := s.repo.Update(ctx, id, func(a *domain.Appointment) {
		if a.ClientID != actor.UserID && a.LawyerID != actor.UserID {
			forbidden = true
			return
		}
		applyAppointmentPatch(a, patch)
	})
	if err != nil {
		return nil, err
	}
	if forbidden {
		return nil, domain.ErrForbidden
	}

	if patch.Status != nil {
		recipient := updated.ClientID
		if actor.UserID == updated.ClientID {
			recipient = updated.LawyerID
		}
		s.notify(ctx, domain.Notification{
			UserID:  recipient,
			Title:   "Appointment " + titleCase(string(updated.Status)),
			Message: fmt.Sprintf("Your appointment on %s at %s is now %s", updated.Date, updated.Time, updated.Status),
			Type:    domain.NotifyAppointment,
			Link:    "/appointments",
		})
	}

	return updated, nil
}

func (s *AppointmentService) notify(ctx context.Context, n domain.Notification) {
	n.ID = newID("notif")
	n.CreatedAt = time.Now().UTC()
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.Warn().Err(err).Str("user_id", n.UserID).Msg("appointment notification not delivered")
	}
}

func applyAppointmentPatch(a *domain.Appointment, p ports.AppointmentPatch) {
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.MeetLink != nil {
		a.MeetLink = *p.MeetLink
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

// titleCase uppercases the first letter of an ASCII status word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
