package inmemory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"taskcli/internal/logger"
	"taskcli/internal/models/task"
	repo "taskcli/internal/repository"

	"go.uber.org/zap"
)

// TaskStorage keeps tasks for the lifetime of the process only. maxID is
// the highest id ever handed out, so deleted ids are not reused.
type TaskStorage struct {
	storage map[int]*task.Task
	mtx     *sync.RWMutex
	ids     []int
	maxID   int
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[int]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []int{},
	}
}

func (s *TaskStorage) Add(ctx context.Context, description string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("description must not be empty: %w", repo.ErrValidation)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := s.maxID + 1
	created := task.New(id, description, time.Now())
	s.storage[id] = &created
	s.ids = append(s.ids, id)
	s.maxID = id

	logger.Debug("Repository: task stored in memory", zap.Int("id", id))
	return id, nil
}

func (s *TaskStorage) List(ctx context.Context) ([]task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, *s.storage[id])
	}
	return res, nil
}

func (s *TaskStorage) Delete(ctx context.Context, id int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return fmt.Errorf("task %d: %w", id, repo.ErrNotFound)
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

func (s *TaskStorage) SetStatus(ctx context.Context, id int, status task.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, repo.ErrValidation)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[id]
	if !ok {
		return fmt.Errorf("task %d: %w", id, repo.ErrNotFound)
	}

	existing.Apply(task.WithStatus(status), task.WithUpdatedAt(time.Now()))
	return nil
}
