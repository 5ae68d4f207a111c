package app

import (
	"context"
	"fmt"

	"taskcli/internal/config"
	"taskcli/internal/logger"
	"taskcli/internal/repository/task/inmemory"
	"taskcli/internal/repository/task/jsonfile"
	"taskcli/internal/service"

	"go.uber.org/zap"
)

type App struct {
	config     *config.Config
	repository service.TaskRepository // interface
	service    *service.TaskService
	shutdowns  []func() // run in reverse order by Shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init sets up logging, the store selected by storage.type and the
// service on top of it.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Sync()
	})

	repo, err := a.newRepository()
	if err != nil {
		return err
	}
	a.repository = repo
	a.service = service.NewTaskService(repo)

	logger.Debug("App: initialised",
		zap.String("storage", a.config.Storage.Type),
		zap.String("path", a.config.Storage.Path))
	return nil
}

func (a *App) newRepository() (service.TaskRepository, error) {
	switch a.config.Storage.Type {
	case config.StorageMemory:
		return inmemory.NewTaskStorage(), nil
	case config.StorageFile, "":
		store, err := jsonfile.New(a.config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open task file: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", a.config.Storage.Type)
	}
}

func (a *App) Service() *service.TaskService {
	return a.service
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
