package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"taskmanager/local-app/internal/config"
	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

func newTestSQLite(t *testing.T) *SQLStorage {
	t.Helper()
	s, err := NewSQLStorage(SQLite, filepath.Join(t.TempDir(), "db", "tasks.db"), log.NewNopLogger())
	if err != nil {
		t.Fatalf("NewSQLStorage: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLStorage_TasksRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	want := sampleTasks(t)

	if err := s.TasksSave(want); err != nil {
		t.Fatalf("TasksSave: %v", err)
	}
	got, err := s.TasksLoad()
	if err != nil {
		t.Fatalf("TasksLoad: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	// A shorter save replaces everything
	if err := s.TasksSave(want[1:]); err != nil {
		t.Fatalf("TasksSave: %v", err)
	}
	got, err = s.TasksLoad()
	if err != nil {
		t.Fatalf("TasksLoad: %v", err)
	}
	if !reflect.DeepEqual(got, want[1:]) {
		t.Fatalf("expected only the last save, got %+v", got)
	}
}

func TestSQLStorage_UsersRoundTripKeepsOrder(t *testing.T) {
	s := newTestSQLite(t)
	want := []models.User{
		models.NewUser("admin", "password"),
		models.NewUser("zed", "z"),
		models.NewUser("alice", "pw"),
	}
	if err := s.UsersSave(want); err != nil {
		t.Fatalf("UsersSave: %v", err)
	}
	got, err := s.UsersLoad()
	if err != nil {
		t.Fatalf("UsersLoad: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSQLStorage_MalformedRow(t *testing.T) {
	s := newTestSQLite(t)
	_, err := s.db.Exec(`INSERT INTO tasks (position, username, title, description, due_date, assigned_date, completed)
		VALUES (0, 'alice', 't', 'd', 'someday', '2024-01-01', 'No')`)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := s.TasksLoad(); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestNewStorage_SelectsBackend(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	s, err := NewStorage(cfg, log.NewNopLogger())
	if err != nil {
		t.Fatalf("NewStorage(text): %v", err)
	}
	if _, ok := s.(*TextStorage); !ok {
		t.Fatalf("expected *TextStorage, got %T", s)
	}

	cfg.StorageType = "sqlite"
	s, err = NewStorage(cfg, log.NewNopLogger())
	if err != nil {
		t.Fatalf("NewStorage(sqlite): %v", err)
	}
	if _, ok := s.(*SQLStorage); !ok {
		t.Fatalf("expected *SQLStorage, got %T", s)
	}
	_ = s.Close()

	cfg.StorageType = "mysql"
	if _, err := NewStorage(cfg, log.NewNopLogger()); err == nil {
		t.Fatal("expected error for mysql without DSN")
	}
	cfg.StorageType = "csv"
	if _, err := NewStorage(cfg, log.NewNopLogger()); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}
