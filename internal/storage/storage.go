package storage

import (
	"fmt"

	"taskmanager/local-app/internal/config"
	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

// UserStore persists the user registry.
type UserStore interface {
	UsersLoad() ([]models.User, error)
	UsersSave(users []models.User) error
}

// TaskStore persists the task list.
type TaskStore interface {
	TasksLoad() ([]models.Task, error)
	TasksSave(tasks []models.Task) error
}

// Storage is the persistence layer used by the tracker.
type Storage interface {
	UserStore
	TaskStore
	Close() error
}

var (
	_ Storage = (*TextStorage)(nil)
	_ Storage = (*SQLStorage)(nil)
)

// NewStorage creates the backend selected by cfg.StorageType.
func NewStorage(cfg *config.Config, logger *log.Logger) (Storage, error) {
	switch cfg.StorageType {
	case "", "text":
		s, err := NewTextStorage(cfg.UserPath(), cfg.TaskPath(), logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := NewSQLStorage(SQLite, cfg.DatabasePath(), logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "mysql":
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("storage type mysql requires database_dsn")
		}
		s, err := NewSQLStorage(MySQL, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
