package services

import (
	"strconv"
	"strings"

	"cardata/models"
	"cardata/utils"
)

// expectedValues is the fixed vocabulary table for categorical columns,
// checked in this order.
var expectedValues = []struct {
	Column string
	Values []string
}{
	{"trim_level", []string{"Base", "Sport", "Premium", "Limited"}},
	{"transmission", []string{"automatic", "manual", "CVT", "dual clutch"}},
	{"fuel_type", []string{"gasoline", "diesel", "hybrid", "electric"}},
}

// checkDuplicates counts rows whose every field equals an earlier row.
func checkDuplicates(t *models.Table, r *models.Report) {
	seen := utils.NewStringSet()
	duplicates := 0
	for _, row := range t.Rows {
		if !seen.Add(models.Fingerprint(row)) {
			duplicates++
		}
	}
	r.Addf("- Duplicate rows detected: %d", duplicates)
}

// checkNulls reports per-column null counts in column order, or "none".
func checkNulls(t *models.Table, r *models.Report) {
	var parts []string
	for idx, col := range t.Columns {
		count := 0
		for _, row := range t.Rows {
			if row[idx].IsNull() {
				count++
			}
		}
		if count > 0 {
			parts = append(parts, col+" ("+strconv.Itoa(count)+")")
		}
	}
	if len(parts) > 0 {
		r.Addf("- Columns containing null values: %s", strings.Join(parts, ", "))
	} else {
		r.Addf("- Columns containing null values: none")
	}
}

// checkMixedTypes reports columns whose non-null cells span more than one
// kind, with the kind names sorted lexically.
func checkMixedTypes(t *models.Table, r *models.Report) {
	for idx, col := range t.Columns {
		kinds := utils.NewStringSet()
		for _, row := range t.Rows {
			if row[idx].IsNull() {
				continue
			}
			kinds.Add(row[idx].Kind().String())
		}
		if kinds.Size() > 1 {
			r.Addf("- Mixed data types in '%s': %s", col, strings.Join(kinds.Sorted(), ", "))
		}
	}
}

// checkWhitespace counts text cells that differ from their trimmed form.
func checkWhitespace(t *models.Table, r *models.Report) {
	for idx, col := range t.Columns {
		count := 0
		for _, row := range t.Rows {
			s, ok := row[idx].TextValue()
			if ok && s != strings.TrimSpace(s) {
				count++
			}
		}
		if count > 0 {
			r.Addf("- %d values in '%s' have leading/trailing spaces", count, col)
		}
	}
}

// checkCategoricalValues collects values absent from the fixed vocabulary of
// each categorical column. Non-text cells contribute their kind name as a
// placeholder. Offenders are reported sorted and unique.
func checkCategoricalValues(t *models.Table, r *models.Report) {
	for _, expected := range expectedValues {
		idx := t.ColumnIndex(expected.Column)
		if idx < 0 {
			continue
		}
		allowed := utils.NewStringSet()
		for _, v := range expected.Values {
			allowed.Add(v)
		}

		offenders := utils.NewStringSet()
		for _, row := range t.Rows {
			v := row[idx]
			if v.IsNull() {
				continue
			}
			s, ok := v.TextValue()
			if !ok {
				offenders.Add(v.Kind().String())
				continue
			}
			if !allowed.Contains(s) {
				offenders.Add(s)
			}
		}
		if offenders.Size() > 0 {
			r.Addf("- Unexpected values in '%s': %s",
				expected.Column, strings.Join(offenders.Sorted(), ", "))
		}
	}
}

// checkMSRP counts msrp values that fail numeric coercion.
func checkMSRP(t *models.Table, r *models.Report) {
	col := t.Column("msrp")
	if col == nil {
		return
	}
	nonNumeric := 0
	for _, v := range col {
		if _, err := v.Numeric(); err != nil {
			nonNumeric++
		}
	}
	if nonNumeric > 0 {
		r.Addf("- 'msrp' contains %d non-numeric values", nonNumeric)
	}
}

// checkModelYear reports the presence of model_year coercion failures.
func checkModelYear(t *models.Table, r *models.Report) {
	col := t.Column("model_year")
	if col == nil {
		return
	}
	for _, v := range col {
		if _, err := v.Numeric(); err != nil {
			r.Addf("- 'model_year' includes non-numeric entries")
			return
		}
	}
}
