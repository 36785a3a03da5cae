package kv

import (
	"context"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type TaskRepository struct {
	coll *collection[domain.Task]
}

func NewTaskRepository(store ports.KVStore) *TaskRepository {
	return &TaskRepository{
		coll: newCollection(store, keyTasks, func(t *domain.Task) string { return t.ID }),
	}
}

func (r *TaskRepository) List(ctx context.Context, assignedTo string) ([]domain.Task, error) {
	return r.coll.filter(ctx, func(t *domain.Task) bool { return t.AssignedTo == assignedTo })
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.coll.append(ctx, *task)
}

func (r *TaskRepository) Update(ctx context.Context, id string, fn func(*domain.Task)) (*domain.Task, error) {
	task, found, err := r.coll.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *TaskRepository) Seed(ctx context.Context, tasks []domain.Task) (bool, error) {
	return r.coll.seed(ctx, tasks)
}
