package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"cardata/models"
)

// jsonDataset is the on-disk JSON snapshot envelope. Keeping columns and rows
// separate preserves column order, which maps lose.
type jsonDataset struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// WriteJSON persists a dataset as a JSON snapshot, creating directories as
// needed. Null cells become JSON null, numbers stay numbers, text stays text.
func WriteJSON(t *models.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("json: create output dir: %w", err)
	}

	ds := jsonDataset{Columns: t.Columns, Rows: make([][]any, 0, t.RowCount())}
	for _, rec := range t.Rows {
		row := make([]any, len(rec))
		for i, v := range rec {
			switch v.Kind() {
			case models.KindNull:
				row[i] = nil
			case models.KindInteger, models.KindReal:
				f, _ := v.Numeric()
				row[i] = f
			default:
				s, _ := v.TextValue()
				row[i] = s
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("json: marshal: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", path, err)
	}
	return nil
}

// LoadJSON reads a dataset snapshot back. Whole-valued numbers load as
// integers, everything else keeps its JSON kind.
func LoadJSON(path string) (*models.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json: read %q: %w", path, err)
	}

	var ds jsonDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("json: parse %q: %w", path, err)
	}

	table := models.NewTable(ds.Columns)
	for n, rec := range ds.Rows {
		if len(rec) != len(ds.Columns) {
			return nil, fmt.Errorf("json: %q: row %d has %d cells, want %d",
				path, n, len(rec), len(ds.Columns))
		}
		row := make([]models.Value, len(rec))
		for i, cell := range rec {
			switch c := cell.(type) {
			case nil:
				row[i] = models.Null()
			case float64:
				if c == math.Trunc(c) {
					row[i] = models.Int(int64(c))
				} else {
					row[i] = models.Real(c)
				}
			case string:
				row[i] = models.Text(c)
			default:
				row[i] = models.Text(fmt.Sprintf("%v", c))
			}
		}
		table.Append(row)
	}
	return table, nil
}

type jsonProvider struct {
	path string
}

func (p jsonProvider) Name() string                 { return p.path }
func (p jsonProvider) Load() (*models.Table, error) { return LoadJSON(p.path) }
