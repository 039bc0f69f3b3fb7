package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"cardata/models"
)

// CSVWriter writes a raw dataset to a CSV file, header included.
type CSVWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{path: path, file: f, writer: csv.NewWriter(f)}, nil
}

// Write writes the header row followed by every record. Null cells become
// empty fields.
func (c *CSVWriter) Write(t *models.Table) error {
	if err := c.writer.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	row := make([]string, t.ColumnCount())
	for _, rec := range t.Rows {
		for i, v := range rec {
			row[i] = v.String()
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// LoadCSV reads a dataset back from disk. Cell kinds are re-inferred, so a
// numeric-looking cell loads as a number regardless of how it was produced.
func LoadCSV(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %q has no header row", path)
	}

	table := models.NewTable(records[0])
	for _, rec := range records[1:] {
		row := make([]models.Value, len(rec))
		for i, cell := range rec {
			row[i] = models.ParseValue(cell)
		}
		table.Append(row)
	}
	return table, nil
}

type csvProvider struct {
	path string
}

func (p csvProvider) Name() string                 { return p.path }
func (p csvProvider) Load() (*models.Table, error) { return LoadCSV(p.path) }
