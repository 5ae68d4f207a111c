package service

import (
	"context"
	"errors"
	"fmt"

	"taskcli/internal/logger"
	"taskcli/internal/models/task"
	rep "taskcli/internal/repository"

	"go.uber.org/zap"
)

// business errors are mapped here, commands only look at codes

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// AddTask returns the new id also together with a PERSISTENCE_ERROR, since
// the task exists in memory at that point.
func (s *TaskService) AddTask(ctx context.Context, description string) (int, error) {
	id, err := s.repo.Add(ctx, description)
	if err != nil {
		if errors.Is(err, rep.ErrValidation) {
			logger.Info("Service: empty task description rejected")
			return 0, NewValidationError("description", "must not be empty", err)
		}
		var persistErr *rep.PersistenceError
		if errors.As(err, &persistErr) {
			logger.Error("Service: task added but not saved", err, zap.Int("task_id", id))
			return id, NewPersistenceError(persistErr.Path, err)
		}
		return 0, fmt.Errorf("add task: %w", err)
	}

	logger.Info("Service: task added", zap.Int("task_id", id))
	return id, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError("delete task", id, err)
	}

	logger.Info("Service: task deleted", zap.Int("task_id", id))
	return nil
}

func (s *TaskService) MarkDone(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, task.StatusDone)
}

func (s *TaskService) MarkUndone(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, task.StatusTodo)
}

func (s *TaskService) setStatus(ctx context.Context, id int, status task.Status) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return s.mapError("set task status", id, err)
	}

	logger.Info("Service: task status changed",
		zap.Int("task_id", id),
		zap.String("status", string(status)))
	return nil
}

func (s *TaskService) mapError(op string, id int, err error) error {
	if errors.Is(err, rep.ErrNotFound) {
		logger.Info("Service: task not found", zap.Int("target_id", id))
		return NewNotFound(id, err)
	}
	if errors.Is(err, rep.ErrValidation) {
		return NewValidationError("status", err.Error(), err)
	}
	var persistErr *rep.PersistenceError
	if errors.As(err, &persistErr) {
		logger.Error("Service: change not saved", err, zap.Int("task_id", id))
		return NewPersistenceError(persistErr.Path, err)
	}
	return fmt.Errorf("%s %d: %w", op, id, err)
}
