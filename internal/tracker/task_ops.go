package tracker

import (
	"context"
	"strconv"
	"strings"
	"time"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

// SelectionReturn is the input that leaves a task listing.
const SelectionReturn = "-1"

// TaskEdit describes the optional changes of an edit. An empty Username and
// a nil DueDate keep the current values.
type TaskEdit struct {
	Username string
	DueDate  *time.Time
}

// EditResult tells which fields an edit changed. Rejected holds the
// reassignment error when the new username is not registered; the due date
// change is still applied in that case.
type EditResult struct {
	Reassigned     bool
	DueDateChanged bool
	Rejected       error
}

// Changed reports whether the edit modified the task.
func (r EditResult) Changed() bool {
	return r.Reassigned || r.DueDateChanged
}

// DateParse parses a YYYY-MM-DD calendar date.
func DateParse(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	d, err := time.Parse(models.DateLayout, input)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: input}
	}
	return models.DateOf(d), nil
}

// TaskAdd creates a task assigned today and saves the task list. The store
// is left unchanged when validation or saving fails.
func (m *Manager) TaskAdd(username, title, description, dueDate string) (models.Task, error) {
	username = strings.TrimSpace(username)
	if !m.users.Exists(username) {
		return models.Task{}, &UnknownUserError{Username: username}
	}
	if !models.TextValid(title) {
		return models.Task{}, invalidText("title")
	}
	if !models.TextValid(description) {
		return models.Task{}, invalidText("description")
	}
	due, err := DateParse(dueDate)
	if err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(username, title, description, due, m.Today())
	n := m.tasks.Len()
	m.tasks.Append(task)
	if err := m.saveTasks(); err != nil {
		m.tasks.truncate(n)
		return models.Task{}, err
	}

	m.logger.Info(context.Background(), "Task added", log.Fields{"user": username, "title": title})
	return task, nil
}

// TaskViewAll returns every task in store order.
func (m *Manager) TaskViewAll() []models.Task {
	return m.tasks.All()
}

// TasksOf returns the tasks assigned to username, numbered from 1 in store
// order.
func (m *Manager) TasksOf(username string) []TaskRef {
	return m.tasks.Filter(username)
}

// TaskSelect resolves a listing number typed by username. SelectionReturn
// yields ErrSelectionReturn.
func (m *Manager) TaskSelect(username, input string) (TaskRef, error) {
	input = strings.TrimSpace(input)
	if input == SelectionReturn {
		return TaskRef{}, ErrSelectionReturn
	}

	refs := m.tasks.Filter(username)
	if !digitsOnly(input) {
		return TaskRef{}, &InvalidSelectionError{Input: input, Max: len(refs)}
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(refs) {
		return TaskRef{}, &InvalidSelectionError{Input: input, Max: len(refs)}
	}
	return refs[n-1], nil
}

// digitsOnly reports whether s is a non-empty run of ASCII digits. Signs and
// spaces inside the number are not accepted.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TaskComplete marks the task at index complete and saves the task list.
// Completing a completed task changes nothing and writes nothing.
func (m *Manager) TaskComplete(index int) (bool, error) {
	task, ok := m.tasks.Get(index)
	if !ok {
		return false, ErrTaskNotFound
	}
	if task.Completed {
		return false, nil
	}

	prev := task
	task.Completed = true
	m.tasks.set(index, task)
	if err := m.saveTasks(); err != nil {
		m.tasks.set(index, prev)
		return false, err
	}

	m.logger.Info(context.Background(), "Task completed", log.Fields{"user": task.Username, "title": task.Title})
	return true, nil
}

// TaskEdit applies edit to the task at index and saves the task list once
// if anything changed. Completed tasks cannot be edited.
func (m *Manager) TaskEdit(index int, edit TaskEdit) (EditResult, error) {
	var res EditResult

	task, ok := m.tasks.Get(index)
	if !ok {
		return res, ErrTaskNotFound
	}
	if task.Completed {
		return res, ErrTaskCompleted
	}

	prev := task
	if name := strings.TrimSpace(edit.Username); name != "" && name != task.Username {
		if m.users.Exists(name) {
			task.Username = name
			res.Reassigned = true
		} else {
			res.Rejected = &UnknownUserError{Username: name}
		}
	}
	if edit.DueDate != nil {
		due := models.DateOf(*edit.DueDate)
		if !due.Equal(task.DueDate) {
			task.DueDate = due
			res.DueDateChanged = true
		}
	}

	if !res.Changed() {
		return res, nil
	}

	m.tasks.set(index, task)
	if err := m.saveTasks(); err != nil {
		m.tasks.set(index, prev)
		return EditResult{}, err
	}

	m.logger.Info(context.Background(), "Task edited", log.Fields{
		"user":       task.Username,
		"title":      task.Title,
		"reassigned": res.Reassigned,
		"due_date":   res.DueDateChanged,
	})
	return res, nil
}
