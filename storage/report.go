package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cardata/models"
)

const reportTimestampLayout = "20060102_150405"

// DefaultReportPath returns the timestamped report location under dir.
func DefaultReportPath(dir string) string {
	ts := time.Now().UTC().Format(reportTimestampLayout)
	return filepath.Join(dir, fmt.Sprintf("diagnosis_report_%s.txt", ts))
}

// WriteReport persists the report as plain text with a trailing newline,
// creating directories as needed, and returns the absolute path written.
func WriteReport(r *models.Report, path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("report: create dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(r.Text()+"\n"), 0644); err != nil {
		return "", fmt.Errorf("report: write %q: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
