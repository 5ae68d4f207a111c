package output

import (
	"time"

	"taskcli/internal/models/task"
)

// TaskView is the shape printed by "list --json".
type TaskView struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTask(t task.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		Done:        t.Done(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTaskList(tasks []task.Task) []TaskView {
	result := make([]TaskView, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
