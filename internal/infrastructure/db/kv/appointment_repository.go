package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type AppointmentRepository struct {
	coll *collection[domain.Appointment]
}

func NewAppointmentRepository(store ports.KVStore) *AppointmentRepository {
	return &AppointmentRepository{
		coll: newCollection(store, keyAppointments, func(a *domain.Appointment) string { return a.ID }),
	}
}

// List scopes by clientId for clients and lawyerId for lawyers, preserving
// storage order.
func (r *AppointmentRepository) List(ctx context.Context, userID string, role domain.Role) ([]domain.Appointment, error) {
	return r.coll.filter(ctx, func(a *domain.Appointment) bool {
		if role == domain.RoleClient {
			return a.ClientID == userID
		}
		return a.LawyerID == userID
	})
}

func (r *AppointmentRepository) Create(ctx context.Context, apt *domain.Appointment) error {
	return r.coll.append(ctx, *apt)
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, fn func(*domain.Appointment)) (*domain.Appointment, error) {
	apt, found, err := r.coll.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrAppointmentNotFound
	}
	return apt, nil
}

func (r *AppointmentRepository) Seed(ctx context.Context, apts []domain.Appointment) (bool, error) {
	return r.coll.seed(ctx, apts)
}
