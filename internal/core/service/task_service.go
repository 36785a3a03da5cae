package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// TaskService implements task assignment and the pending/completed toggle.
type TaskService struct {
	repo          ports.TaskRepository
	cases         ports.CaseRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cases ports.CaseRepository, notifications ports.NotificationRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cases: cases, notifications: notifications, log: log}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.repo.List(ctx, userID)
}

// Create assigns a task on a case. Only case participants may create tasks;
// the assignee is notified unless they assigned it to themselves.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	c, err := s.cases.FindByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if !c.Participant(input.Actor.UserID) {
		return nil, domain.ErrForbidden
	}

	task := &domain.Task{
		ID:          newID("task"),
		CaseID:      input.CaseID,
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		AssignedBy:  input.Actor.UserID,
		DueDate:     input.DueDate,
		Status:      domain.TaskPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	if task.AssignedTo != task.AssignedBy {
		n := domain.Notification{
			ID:        newID("notif"),
			UserID:    task.AssignedTo,
			Title:     "Task Assigned",
			Message:   fmt.Sprintf("New task: %s", task.Title),
			Type:      domain.NotifyTask,
			Link:      "/tasks",
			CreatedAt: time.Now().UTC(),
		}
		if err := s.notifications.Create(ctx, &n); err != nil {
			s.log.Warn().Err(err).Str("user_id", n.UserID).Msg("task notification not delivered")
		}
	}

	s.log.Info().Str("task_id", task.ID).Str("case_id", task.CaseID).Str("assigned_to", task.AssignedTo).Msg("task created")
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	return s.repo.Update(ctx, id, func(t *domain.Task) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.AssignedTo != nil {
			t.AssignedTo = *patch.AssignedTo
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
	})
}
