package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taskcli/internal/models/task"
	"taskcli/internal/repository"
	"taskcli/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTaskRepository is a testify mock of the repository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Add(ctx context.Context, description string) (int, error) {
	args := m.Called(ctx, description)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) SetStatus(ctx context.Context, id int, status task.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

var _ service.TaskRepository = (*MockTaskRepository)(nil)

func persistFailure() error {
	return &repository.PersistenceError{Path: "/tmp/tasks.json", Err: errors.New("disk full")}
}

// TestTaskService_AddTask checks error mapping of AddTask
func TestTaskService_AddTask(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockTaskRepository)
		wantID    int
		wantCode  string
		wantPlain bool
	}{
		{
			name: "success",
			setupMock: func(m *MockTaskRepository) {
				m.On("Add", mock.Anything, "Buy milk").Return(1, nil)
			},
			wantID: 1,
		},
		{
			name: "error - empty description",
			setupMock: func(m *MockTaskRepository) {
				m.On("Add", mock.Anything, "Buy milk").
					Return(0, fmt.Errorf("description must not be empty: %w", repository.ErrValidation))
			},
			wantCode: service.CodeValidation,
		},
		{
			name: "error - not saved keeps id",
			setupMock: func(m *MockTaskRepository) {
				m.On("Add", mock.Anything, "Buy milk").Return(3, persistFailure())
			},
			wantID:   3,
			wantCode: service.CodePersistence,
		},
		{
			name: "error - unexpected",
			setupMock: func(m *MockTaskRepository) {
				m.On("Add", mock.Anything, "Buy milk").Return(0, errors.New("boom"))
			},
			wantPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := service.NewTaskService(mockRepo)
			id, err := svc.AddTask(context.Background(), "Buy milk")

			assert.Equal(t, tt.wantID, id)
			switch {
			case tt.wantCode != "":
				var be *service.BusinessError
				require.True(t, errors.As(err, &be), "expected BusinessError")
				assert.Equal(t, tt.wantCode, be.Code)
			case tt.wantPlain:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "add task")
				var be *service.BusinessError
				assert.False(t, errors.As(err, &be))
			default:
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_ListTasks(t *testing.T) {
	now := time.Now()
	stored := []task.Task{
		task.New(1, "Buy milk", now),
		task.New(2, "Walk dog", now, task.WithStatus(task.StatusDone)),
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("List", mock.Anything).Return(stored, nil)

		svc := service.NewTaskService(mockRepo)
		tasks, err := svc.ListTasks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, tasks)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("List", mock.Anything).Return(nil, errors.New("boom"))

		svc := service.NewTaskService(mockRepo)
		tasks, err := svc.ListTasks(context.Background())
		assert.Error(t, err)
		assert.Nil(t, tasks)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{name: "success"},
		{
			name:     "error - not found",
			repoErr:  fmt.Errorf("task 7: %w", repository.ErrNotFound),
			wantCode: service.CodeNotFound,
		},
		{
			name:     "error - not saved",
			repoErr:  persistFailure(),
			wantCode: service.CodePersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			mockRepo.On("Delete", mock.Anything, 7).Return(tt.repoErr)

			svc := service.NewTaskService(mockRepo)
			err := svc.DeleteTask(context.Background(), 7)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				var be *service.BusinessError
				require.True(t, errors.As(err, &be))
				assert.Equal(t, tt.wantCode, be.Code)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_MarkDoneUndone(t *testing.T) {
	tests := []struct {
		name       string
		call       func(*service.TaskService, context.Context, int) error
		wantStatus task.Status
		repoErr    error
		check      func(error) bool
	}{
		{
			name:       "done - success",
			call:       (*service.TaskService).MarkDone,
			wantStatus: task.StatusDone,
		},
		{
			name:       "undone - success",
			call:       (*service.TaskService).MarkUndone,
			wantStatus: task.StatusTodo,
		},
		{
			name:       "done - not found",
			call:       (*service.TaskService).MarkDone,
			wantStatus: task.StatusDone,
			repoErr:    fmt.Errorf("task 4: %w", repository.ErrNotFound),
			check:      service.IsNotFound,
		},
		{
			name:       "undone - not saved",
			call:       (*service.TaskService).MarkUndone,
			wantStatus: task.StatusTodo,
			repoErr:    persistFailure(),
			check:      service.IsPersistence,
		},
		{
			name:       "done - rejected status",
			call:       (*service.TaskService).MarkDone,
			wantStatus: task.StatusDone,
			repoErr:    fmt.Errorf("unknown status: %w", repository.ErrValidation),
			check:      service.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			mockRepo.On("SetStatus", mock.Anything, 4, tt.wantStatus).Return(tt.repoErr)

			svc := service.NewTaskService(mockRepo)
			err := tt.call(svc, context.Background(), 4)

			if tt.check == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tt.check(err), "unexpected error %v", err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBusinessError(t *testing.T) {
	cause := fmt.Errorf("task 9: %w", repository.ErrNotFound)
	err := service.NewNotFound(9, cause)

	assert.Equal(t, "Task with ID 9 not found.", err.Message)
	assert.Equal(t, 9, err.Details["id"])
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "[NOT_FOUND]")

	wrapped := fmt.Errorf("command: %w", err)
	assert.True(t, service.IsNotFound(wrapped))
	assert.False(t, service.IsValidation(wrapped))
	assert.False(t, service.IsPersistence(errors.New("plain")))

	bare := &service.BusinessError{Code: service.CodeValidation, Message: "bad"}
	assert.Equal(t, "[VALIDATION_ERROR] bad", bare.Error())
}
