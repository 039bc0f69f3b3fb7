package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cardata/generator"
	"cardata/models"
	"cardata/services"
	"cardata/utils"
)

func writeDataset(t *testing.T, table *models.Table, path string) {
	t.Helper()
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.Write(table); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCSVRoundTripDiagnosis(t *testing.T) {
	logger := utils.NewLogger(false)
	table := generator.New(logger).Generate(30, 7)

	path := filepath.Join(t.TempDir(), "nested", "raw_car_equipment.csv")
	writeDataset(t, table, path)

	loaded, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	report := services.NewDiagnoser(logger).Diagnose(loaded)
	if report.Lines[1] != "- Rows: 30" {
		t.Errorf("row line: got %q, want %q", report.Lines[1], "- Rows: 30")
	}
	if report.Lines[2] != "- Columns: 10" {
		t.Errorf("column line: got %q", report.Lines[2])
	}

	dupLine := report.Lines[3]
	if !strings.HasPrefix(dupLine, "- Duplicate rows detected: ") {
		t.Fatalf("unexpected duplicate line %q", dupLine)
	}
	if dupLine == "- Duplicate rows detected: 0" {
		t.Error("round-tripped dataset should keep at least one duplicate")
	}
}

func TestCSVPreservesWhitespaceAndNulls(t *testing.T) {
	table := models.NewTable([]string{"model", "exterior_color"})
	table.Append([]models.Value{models.Text(" Prius  "), models.Null()})
	table.Append([]models.Value{models.Text("X5"), models.Text("Black")})

	path := filepath.Join(t.TempDir(), "cells.csv")
	writeDataset(t, table, path)

	loaded, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if s, _ := loaded.Rows[0][0].TextValue(); s != " Prius  " {
		t.Errorf("whitespace not preserved: got %q", s)
	}
	if !loaded.Rows[0][1].IsNull() {
		t.Error("empty cell should load as null")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadJSONRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.json")
	content := `{"columns":["make","model"],"rows":[["Toyota","Corolla"],["Toyota"]]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadJSON(path)
	if err == nil {
		t.Fatal("expected error for row shorter than the column list")
	}
	if !strings.Contains(err.Error(), "row 1 has 1 cells, want 2") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	logger := utils.NewLogger(false)
	table := generator.New(logger).Generate(18, 4)

	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := WriteJSON(table, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	loaded, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if loaded.RowCount() != 18 {
		t.Errorf("rows: got %d, want 18", loaded.RowCount())
	}
	if loaded.ColumnCount() != len(models.CarColumns) {
		t.Errorf("columns: got %d", loaded.ColumnCount())
	}

	for i, row := range loaded.Rows {
		for j, v := range row {
			if !v.Equal(table.Rows[i][j]) {
				t.Fatalf("cell %d/%d changed: got %v, want %v", i, j, v, table.Rows[i][j])
			}
		}
	}
}
