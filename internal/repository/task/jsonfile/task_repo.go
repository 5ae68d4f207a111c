// Package jsonfile keeps tasks in a single JSON document that is read once
// on construction and rewritten in full after every mutation.
//
// TaskStorage is meant for one command per process and is not safe for
// concurrent use.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskcli/internal/logger"
	"taskcli/internal/models/task"
	repo "taskcli/internal/repository"

	"go.uber.org/zap"
)

type TaskStorage struct {
	path     string
	tasks    []task.Task
	lastID   int
	observer repo.LoadObserver
	now      func() time.Time
}

type Option func(*TaskStorage)

// WithObserver replaces the default observer, which logs a warning.
func WithObserver(observer repo.LoadObserver) Option {
	return func(s *TaskStorage) {
		s.observer = observer
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskStorage) {
		if now != nil {
			s.now = now
		}
	}
}

// New opens the task file at path. Unreadable content never fails
// construction: the store starts empty and the error goes to the observer.
func New(path string, options ...Option) (*TaskStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("task file path is required")
	}

	s := &TaskStorage{
		path:     path,
		observer: logObserver,
		now:      time.Now,
	}
	for _, opt := range options {
		opt(s)
	}

	s.Load()
	return s, nil
}

func logObserver(path string, err error) {
	logger.Warn("Repository: task file ignored, starting empty",
		zap.String("path", path),
		zap.Error(err))
}

func (s *TaskStorage) Path() string {
	return s.path
}

// Load replaces the in-memory tasks with the file contents. A missing file
// is the normal first run and is not reported.
func (s *TaskStorage) Load() {
	tasks, err := readTasks(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && s.observer != nil {
			s.observer(s.path, err)
		}
		s.tasks = []task.Task{}
		s.lastID = 0
		return
	}

	logger.Debug("Repository: tasks loaded",
		zap.String("path", s.path),
		zap.Int("count", len(tasks)))
	s.tasks = tasks
	s.lastID = highestID(tasks)
}

func readTasks(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("invalid task file: duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Save overwrites the task file with every task in memory.
func (s *TaskStorage) Save() error {
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return &repo.PersistenceError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &repo.PersistenceError{Path: s.path, Err: err}
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &repo.PersistenceError{Path: s.path, Err: err}
	}

	logger.Debug("Repository: tasks saved",
		zap.String("path", s.path),
		zap.Int("count", len(s.tasks)))
	return nil
}

// Add appends a todo task and persists. The assigned id is returned even
// when the write fails.
func (s *TaskStorage) Add(ctx context.Context, description string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("description must not be empty: %w", repo.ErrValidation)
	}

	s.lastID++
	t := task.New(s.lastID, description, s.now())
	s.tasks = append(s.tasks, t)

	if err := s.Save(); err != nil {
		return t.ID, err
	}
	return t.ID, nil
}

// List returns a copy of all tasks in insertion order.
func (s *TaskStorage) List(ctx context.Context) ([]task.Task, error) {
	snapshot := make([]task.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot, nil
}

// Delete removes the task with id. The file is only rewritten when a task
// was actually removed.
func (s *TaskStorage) Delete(ctx context.Context, id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("task %d: %w", id, repo.ErrNotFound)
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return s.Save()
}

// SetStatus moves a task to status and refreshes updated_at, also when the
// status does not change.
func (s *TaskStorage) SetStatus(ctx context.Context, id int, status task.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, repo.ErrValidation)
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("task %d: %w", id, repo.ErrNotFound)
	}

	s.tasks[idx].Apply(task.WithStatus(status), task.WithUpdatedAt(s.now()))
	return s.Save()
}

func (s *TaskStorage) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// highestID seeds the id counter on load. Within one store ids are never
// reused; after a restart the counter starts from what the file holds.
func highestID(tasks []task.Task) int {
	highest := 0
	for _, t := range tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}
