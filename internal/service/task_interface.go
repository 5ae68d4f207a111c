package service

import (
	"context"

	"taskcli/internal/models/task"
)

// TaskRepository is implemented by jsonfile.TaskStorage and
// inmemory.TaskStorage.
type TaskRepository interface {
	Add(ctx context.Context, description string) (int, error)
	List(ctx context.Context) ([]task.Task, error)
	Delete(ctx context.Context, id int) error
	SetStatus(ctx context.Context, id int, status task.Status) error
}
