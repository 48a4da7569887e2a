// Package tracker holds the task manager's in-memory state and the
// operations on it. Every mutating operation persists before returning.
package tracker

import (
	"context"
	"fmt"
	"time"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
	"taskmanager/local-app/internal/report"
	"taskmanager/local-app/internal/storage"
)

// Manager coordinates the user registry, the task store and persistence.
type Manager struct {
	store         storage.Storage
	users         *UserRegistry
	tasks         *TaskStore
	logger        *log.Logger
	now           func() time.Time
	hashPasswords bool
	adminUser     string
	adminPassword string
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the source of the current date.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithHashPasswords stores newly registered passwords as bcrypt hashes.
func WithHashPasswords(enabled bool) Option {
	return func(m *Manager) { m.hashPasswords = enabled }
}

// WithAdmin sets the account created when the user store is empty.
func WithAdmin(username, password string) Option {
	return func(m *Manager) {
		m.adminUser = username
		m.adminPassword = password
	}
}

// NewManager loads users and tasks from store. When no users exist and an
// admin account is configured, it is registered and saved first.
func NewManager(store storage.Storage, logger *log.Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	users, err := store.UsersLoad()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	m.users = NewUserRegistry(users)

	if m.users.Len() == 0 && m.adminUser != "" {
		if err := m.UserAdd(m.adminUser, m.adminPassword); err != nil {
			return nil, fmt.Errorf("failed to create default admin: %w", err)
		}
		m.logger.Info(context.Background(), "Default admin created", log.Fields{"user": m.adminUser})
	}

	tasks, err := store.TasksLoad()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	m.tasks = NewTaskStore(tasks)

	m.logger.Info(context.Background(), "Data loaded", log.Fields{"users": m.users.Len(), "tasks": m.tasks.Len()})
	return m, nil
}

// Today returns the current calendar date.
func (m *Manager) Today() time.Time {
	return models.DateOf(m.now())
}

// Users returns all registered users in registration order.
func (m *Manager) Users() []models.User {
	return m.users.Users()
}

// AdminUser returns the name of the account allowed to run admin commands.
func (m *Manager) AdminUser() string {
	return m.adminUser
}

// ReportBuild computes the report summary over the current state.
func (m *Manager) ReportBuild() report.Summary {
	return report.Build(m.tasks.All(), m.users.Users(), m.Today())
}

func (m *Manager) saveTasks() error {
	if err := m.store.TasksSave(m.tasks.All()); err != nil {
		m.logger.Error(context.Background(), "Failed to save tasks", log.Fields{"error": err})
		return err
	}
	return nil
}

func (m *Manager) saveUsers() error {
	if err := m.store.UsersSave(m.users.Users()); err != nil {
		m.logger.Error(context.Background(), "Failed to save users", log.Fields{"error": err})
		return err
	}
	return nil
}
