package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"taskmanager/local-app/internal/config"
	"taskmanager/local-app/internal/log"
)

// ErrNoReports is returned by Read when the reports were never generated.
var ErrNoReports = errors.New("reports have not been generated")

// Writer stores rendered reports on disk, overwriting earlier ones.
type Writer struct {
	dir        string
	taskReport string
	userReport string
	pdf        bool
	logger     *log.Logger
}

// NewWriter creates a Writer using the report settings of cfg.
func NewWriter(cfg *config.Config, logger *log.Logger) *Writer {
	return &Writer{
		dir:        cfg.ReportDir,
		taskReport: cfg.TaskReport,
		userReport: cfg.UserReport,
		pdf:        cfg.ReportPDF,
		logger:     logger,
	}
}

// Write renders s into the task and user overview files and returns the
// paths written.
func (w *Writer) Write(s Summary) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	reports := []struct {
		name string
		text string
	}{
		{w.taskReport, s.TaskOverview()},
		{w.userReport, s.UserOverview()},
	}

	var written []string
	for _, r := range reports {
		path := filepath.Join(w.dir, r.name)
		if err := os.WriteFile(path, []byte(r.text), 0644); err != nil {
			return written, fmt.Errorf("failed to write report %s: %w", path, err)
		}
		written = append(written, path)

		if !w.pdf {
			continue
		}
		data, err := PDF(r.text)
		if err != nil {
			return written, err
		}
		pdfPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
		if err := os.WriteFile(pdfPath, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write report %s: %w", pdfPath, err)
		}
		written = append(written, pdfPath)
	}

	w.logger.Info(context.Background(), "Reports generated", log.Fields{"files": written})
	return written, nil
}

// Read returns the task and user overview texts last written.
func (w *Writer) Read() (taskOverview, userOverview string, err error) {
	task, err := os.ReadFile(filepath.Join(w.dir, w.taskReport))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", ErrNoReports
		}
		return "", "", fmt.Errorf("failed to read task report: %w", err)
	}
	user, err := os.ReadFile(filepath.Join(w.dir, w.userReport))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", ErrNoReports
		}
		return "", "", fmt.Errorf("failed to read user report: %w", err)
	}
	return string(task), string(user), nil
}
