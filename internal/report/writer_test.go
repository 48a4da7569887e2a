package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taskmanager/local-app/internal/config"
	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

func testWriter(t *testing.T, pdf bool) (*Writer, string) {
	t.Helper()
	cfg := config.Default()
	cfg.ReportDir = filepath.Join(t.TempDir(), "reports")
	cfg.ReportPDF = pdf
	return NewWriter(cfg, log.NewNopLogger()), cfg.ReportDir
}

func TestWriter_WriteOverwritesAndReads(t *testing.T) {
	w, dir := testWriter(t, false)

	if _, _, err := w.Read(); !errors.Is(err, ErrNoReports) {
		t.Fatalf("expected ErrNoReports before first write, got %v", err)
	}

	stale := filepath.Join(dir, "task_overview.txt")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(stale, []byte("stale report with extra lines\n\n\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := Build(nil, []models.User{models.NewUser("admin", "password")}, day(t, "2024-01-01"))
	written, err := w.Write(s)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 files, got %v", written)
	}

	task, user, err := w.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if task != s.TaskOverview() || user != s.UserOverview() {
		t.Fatalf("read back mismatch:\n%s\n%s", task, user)
	}
}

func TestWriter_WritesPDFs(t *testing.T) {
	w, dir := testWriter(t, true)
	users := []models.User{models.NewUser("alice", "pw")}
	tasks := []models.Task{models.NewTask("alice", "t", "d", day(t, "2024-01-01"), day(t, "2023-12-01"))}

	written, err := w.Write(Build(tasks, users, day(t, "2024-02-01")))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(written) != 4 {
		t.Fatalf("expected text and pdf files, got %v", written)
	}
	for _, name := range []string{"task_overview.pdf", "user_overview.pdf"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile %s: %v", name, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Fatalf("%s is not a PDF", name)
		}
	}
}

func TestPDF_RejectsEmptyReport(t *testing.T) {
	if _, err := PDF(""); err == nil {
		t.Fatal("expected error for empty report")
	}
}

func TestPDF_EncodesLatin1Names(t *testing.T) {
	s := Build(nil, []models.User{models.NewUser("José", "pw")}, day(t, "2024-01-01"))
	data, err := PDF(s.UserOverview())
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Contains(data, []byte("User: Jos\xe9")) {
		t.Fatal("expected the username encoded as cp1252 in the page content")
	}
	if bytes.Contains(data, []byte("User: Jos\xc3\xa9")) {
		t.Fatal("username written as raw UTF-8")
	}
}
