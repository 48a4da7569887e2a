// Package storage provides functionality for persisting and retrieving users
// and tasks. This file implements the flat text stores.
package storage

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

// TextStorage keeps users and tasks in two delimited text files, one record
// per line. Every save rewrites the whole file.
type TextStorage struct {
	userPath string
	taskPath string
	logger   *log.Logger
}

// NewTextStorage creates a TextStorage over the given files, creating their
// directories when needed.
func NewTextStorage(userPath, taskPath string, logger *log.Logger) (*TextStorage, error) {
	for _, p := range []string{userPath, taskPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory for %s: %w", p, err)
		}
	}
	return &TextStorage{userPath: userPath, taskPath: taskPath, logger: logger}, nil
}

// UsersLoad reads all users in file order. A missing file holds no users.
func (s *TextStorage) UsersLoad() ([]models.User, error) {
	var users []models.User
	err := readRecords(s.userPath, func(line string, n int) error {
		u, err := UserParse(line)
		if err != nil {
			return located(err, s.userPath, n)
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(context.Background(), "Users loaded", log.Fields{"path": s.userPath, "count": len(users)})
	return users, nil
}

// UsersSave overwrites the user file with users.
func (s *TextStorage) UsersSave(users []models.User) error {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = UserFormat(u)
	}
	if err := writeRecords(s.userPath, lines); err != nil {
		return persistenceError("save users", err)
	}
	return nil
}

// TasksLoad reads all tasks in file order. A missing file holds no tasks.
func (s *TextStorage) TasksLoad() ([]models.Task, error) {
	var tasks []models.Task
	err := readRecords(s.taskPath, func(line string, n int) error {
		t, err := TaskParse(line)
		if err != nil {
			return located(err, s.taskPath, n)
		}
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(context.Background(), "Tasks loaded", log.Fields{"path": s.taskPath, "count": len(tasks)})
	return tasks, nil
}

// TasksSave overwrites the task file with tasks in their current order.
func (s *TextStorage) TasksSave(tasks []models.Task) error {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = TaskFormat(t)
	}
	if err := writeRecords(s.taskPath, lines); err != nil {
		return persistenceError("save tasks", err)
	}
	return nil
}

// Close is a no-op; files are only open while reading or writing.
func (s *TextStorage) Close() error {
	return nil
}

// readRecords calls fn for every non-blank line of path with its 1-based
// line number.
func readRecords(path string, fn func(line string, n int) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return persistenceError("read "+path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line, n); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return persistenceError("read "+path, err)
	}
	return nil
}

// writeRecords replaces path with lines, going through a temporary file so a
// failed write leaves the previous contents in place.
func writeRecords(path string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
