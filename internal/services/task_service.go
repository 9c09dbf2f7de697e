package services

import (
	"context"

	"backend/internal/domain/models"
	"backend/internal/dto"
)

// TaskStore is the persistence contract the task service depends on.
// repositories.TaskRepository implements it.
type TaskStore interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (models.Task, error)
	Insert(ctx context.Context, t models.Task) (models.Task, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TaskService struct {
	Store TaskStore
}

func (s TaskService) GetAllTasks(ctx context.Context) ([]dto.TaskDTO, error) {
	tasks, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.TasksFromEntities(tasks), nil
}

func (s TaskService) GetTask(ctx context.Context, id int64) (dto.TaskDTO, error) {
	t, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.TaskDTO{}, err
	}
	return dto.TaskFromEntity(t), nil
}

func (s TaskService) CreateTask(ctx context.Context, in dto.TaskDTO) (dto.TaskDTO, error) {
	t := in.ToEntity()
	t.ID = 0
	saved, err := s.Store.Insert(ctx, t)
	if err != nil {
		return dto.TaskDTO{}, err
	}
	return dto.TaskFromEntity(saved), nil
}

func (s TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.Store.DeleteByID(ctx, id)
}
