package tracker

import (
	"context"
	"fmt"
	"strings"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
	"taskmanager/local-app/internal/storage"
)

// UserAdd registers a new user and saves the registry. Surrounding spaces
// are not part of a username.
func (m *Manager) UserAdd(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if !models.TextValid(username) {
		return invalidText("username")
	}
	if !models.TextValid(password) {
		return invalidText("password")
	}
	if m.users.Exists(username) {
		return fmt.Errorf("%w: %q", ErrUserExists, username)
	}

	stored := password
	if m.hashPasswords {
		hashed, err := storage.PasswordHash(password)
		if err != nil {
			return err
		}
		stored = hashed
	}

	if err := m.users.Add(models.NewUser(username, stored)); err != nil {
		return fmt.Errorf("%w: %q", err, username)
	}
	if err := m.saveUsers(); err != nil {
		m.users.removeLast()
		return err
	}

	m.logger.Info(context.Background(), "User registered", log.Fields{"user": username})
	return nil
}

// UserExists reports whether username is registered.
func (m *Manager) UserExists(username string) bool {
	return m.users.Exists(strings.TrimSpace(username))
}

// UserAuthenticate checks a username and password against the registry.
func (m *Manager) UserAuthenticate(username, password string) (bool, error) {
	u, ok := m.users.Get(strings.TrimSpace(username))
	if !ok {
		return false, nil
	}
	match, err := storage.PasswordMatch(u.Password, password)
	if err != nil {
		return false, fmt.Errorf("authentication error: %w", err)
	}
	return match, nil
}
