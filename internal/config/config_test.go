package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoad_CreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "config.json")

	if err := ConfigLoad(path); err != nil {
		t.Fatalf("ConfigLoad: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}

	cfg := ConfigGet()
	if cfg.UserFile != "user.txt" || cfg.TaskFile != "tasks.txt" {
		t.Fatalf("unexpected store files: %+v", cfg)
	}
	if cfg.AdminUser != "admin" || cfg.AdminPassword != "password" {
		t.Fatalf("unexpected admin defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.StorageType != "text" {
		t.Fatalf("StorageType = %q, want text", cfg.StorageType)
	}
}

func TestConfigLoad_JSONOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"data_dir": "/srv/tasks", "report_pdf": true}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ConfigLoad(path); err != nil {
		t.Fatalf("ConfigLoad: %v", err)
	}
	cfg := ConfigGet()
	if cfg.DataDir != "/srv/tasks" || !cfg.ReportPDF {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.TaskPath() != filepath.Join("/srv/tasks", "tasks.txt") {
		t.Fatalf("TaskPath = %q", cfg.TaskPath())
	}
	if cfg.UserReport != "user_overview.txt" {
		t.Fatalf("unset field lost its default: %+v", cfg)
	}
}

func TestConfigLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("storage_type: sqlite\ndatabase_file: tasks.db\nadmin_user: root\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ConfigLoad(path); err != nil {
		t.Fatalf("ConfigLoad: %v", err)
	}
	cfg := ConfigGet()
	if cfg.StorageType != "sqlite" || cfg.DatabaseFile != "tasks.db" || cfg.AdminUser != "root" || cfg.LogLevel != "debug" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
}

func TestConfigSave_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := Default()
	want.HashPasswords = true
	want.ReportDir = "reports"

	if err := ConfigSave(want, path); err != nil {
		t.Fatalf("ConfigSave: %v", err)
	}
	if err := ConfigLoad(path); err != nil {
		t.Fatalf("ConfigLoad: %v", err)
	}
	if got := ConfigGet(); *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestConfigLoad_RejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := ConfigLoad(path); err == nil {
		t.Fatal("expected parse error")
	}
}
