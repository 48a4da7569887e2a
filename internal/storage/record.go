package storage

import (
	"strings"
	"time"

	"taskmanager/local-app/internal/models"
)

const (
	fieldSep   = ";"
	userFields = 2
	taskFields = 6

	completedYes = "Yes"
	completedNo  = "No"
)

// UserFormat encodes a user as "username;password".
func UserFormat(u models.User) string {
	return u.Username + fieldSep + u.Password
}

// UserParse decodes a "username;password" record.
func UserParse(line string) (models.User, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != userFields {
		return models.User{}, malformedf("expected %d fields, got %d", userFields, len(fields))
	}
	if fields[0] == "" {
		return models.User{}, malformedf("empty username")
	}
	return models.NewUser(fields[0], fields[1]), nil
}

// TaskFormat encodes a task as
// "username;title;description;due_date;assigned_date;completed".
func TaskFormat(t models.Task) string {
	return TaskFormatFields(
		t.Username,
		t.Title,
		t.Description,
		t.DueDate.Format(models.DateLayout),
		t.AssignedDate.Format(models.DateLayout),
		t.Status(),
	)
}

// TaskFormatFields joins already encoded task fields into one record.
func TaskFormatFields(fields ...string) string {
	return strings.Join(fields, fieldSep)
}

// TaskParse decodes a six field task record.
func TaskParse(line string) (models.Task, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != taskFields {
		return models.Task{}, malformedf("expected %d fields, got %d", taskFields, len(fields))
	}

	due, err := time.Parse(models.DateLayout, fields[3])
	if err != nil {
		return models.Task{}, malformedf("invalid due date %q", fields[3])
	}
	assigned, err := time.Parse(models.DateLayout, fields[4])
	if err != nil {
		return models.Task{}, malformedf("invalid assigned date %q", fields[4])
	}
	completed, err := completedParse(fields[5])
	if err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(fields[0], fields[1], fields[2], due, assigned)
	task.Completed = completed
	return task, nil
}

func completedParse(token string) (bool, error) {
	switch token {
	case completedYes:
		return true, nil
	case completedNo:
		return false, nil
	default:
		return false, malformedf("invalid completed flag %q", token)
	}
}
