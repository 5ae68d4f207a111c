package commands

import (
	"context"

	"taskcli/internal/models/task"
)

// TaskService is satisfied by *service.TaskService.
type TaskService interface {
	AddTask(ctx context.Context, description string) (int, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	DeleteTask(ctx context.Context, id int) error
	MarkDone(ctx context.Context, id int) error
	MarkUndone(ctx context.Context, id int) error
}
