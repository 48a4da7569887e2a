package models

import "time"

// DateLayout is the on-disk and user-facing calendar date format.
const DateLayout = "2006-01-02"

// Task is a single assignment. Tasks have no identity beyond their position
// in the task store.
type Task struct {
	Username     string    `json:"username" db:"username"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	DueDate      time.Time `json:"due_date" db:"due_date"`
	AssignedDate time.Time `json:"assigned_date" db:"assigned_date"`
	Completed    bool      `json:"completed" db:"completed"`
}

func NewTask(username, title, description string, dueDate, assignedDate time.Time) Task {
	return Task{
		Username:     username,
		Title:        title,
		Description:  description,
		DueDate:      DateOf(dueDate),
		AssignedDate: DateOf(assignedDate),
	}
}

// Overdue reports whether the task is incomplete and due strictly before today.
func (t Task) Overdue(today time.Time) bool {
	return !t.Completed && t.DueDate.Before(DateOf(today))
}

// Status returns the completed flag the way records and listings print it.
func (t Task) Status() string {
	if t.Completed {
		return "Yes"
	}
	return "No"
}

// DateOf truncates t to its calendar date at midnight UTC, using t's own
// location to decide which day it is.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
