package storage

import (
	"errors"
	"testing"
	"time"

	"taskmanager/local-app/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestTaskFormat(t *testing.T) {
	task := models.NewTask("alice", "Report", "Write the Q1 report", date(t, "2024-01-01"), date(t, "2023-12-01"))
	if got, want := TaskFormat(task), "alice;Report;Write the Q1 report;2024-01-01;2023-12-01;No"; got != want {
		t.Fatalf("TaskFormat = %q, want %q", got, want)
	}
	task.Completed = true
	if got, want := TaskFormat(task), "alice;Report;Write the Q1 report;2024-01-01;2023-12-01;Yes"; got != want {
		t.Fatalf("TaskFormat = %q, want %q", got, want)
	}
}

func TestTaskParse(t *testing.T) {
	task, err := TaskParse("bob;Fix bug;Null pointer in login;2024-02-29;2024-02-01;Yes")
	if err != nil {
		t.Fatalf("TaskParse: %v", err)
	}
	if task.Username != "bob" || task.Title != "Fix bug" || task.Description != "Null pointer in login" {
		t.Fatalf("unexpected text fields: %+v", task)
	}
	if !task.DueDate.Equal(date(t, "2024-02-29")) || !task.AssignedDate.Equal(date(t, "2024-02-01")) {
		t.Fatalf("unexpected dates: %+v", task)
	}
	if !task.Completed {
		t.Fatal("expected completed task")
	}
}

func TestTaskParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "bob;Fix bug;2024-02-29;2024-02-01;No",
		"too many fields": "bob;Fix;bug;desc;2024-02-29;2024-02-01;No",
		"bad due date":    "bob;Fix;desc;29/02/2024;2024-02-01;No",
		"bad assigned":    "bob;Fix;desc;2024-02-29;2024-02-30;No",
		"bad completed":   "bob;Fix;desc;2024-02-29;2024-02-01;yes",
		"empty line":      "",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := TaskParse(line)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}
			var mre *MalformedRecordError
			if !errors.As(err, &mre) || mre.Reason == "" {
				t.Fatalf("expected *MalformedRecordError with reason, got %#v", err)
			}
		})
	}
}

func TestUserParse(t *testing.T) {
	u, err := UserParse("admin;password")
	if err != nil {
		t.Fatalf("UserParse: %v", err)
	}
	if u.Username != "admin" || u.Password != "password" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if got := UserFormat(u); got != "admin;password" {
		t.Fatalf("UserFormat = %q", got)
	}

	for _, line := range []string{"admin", "admin;pass;extra", ";password"} {
		if _, err := UserParse(line); !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("UserParse(%q): expected ErrMalformedRecord, got %v", line, err)
		}
	}
}
