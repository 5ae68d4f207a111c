package task

import "time"

type TaskOption func(*Task)

// New builds a todo task stamped with now for both timestamps.
func New(id int, description string, now time.Time, options ...TaskOption) Task {
	t := Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.Apply(options...)
	return t
}

// Apply runs options in order, skipping nil ones.
func (t *Task) Apply(options ...TaskOption) {
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
}

func WithStatus(status Status) TaskOption {
	if !status.Valid() {
		return nil
	}
	return func(task *Task) {
		task.Status = status
	}
}

func WithUpdatedAt(updatedAt time.Time) TaskOption {
	if updatedAt.IsZero() {
		return nil
	}
	return func(task *Task) {
		task.UpdatedAt = updatedAt
	}
}
