package services

import (
	"fmt"

	"cardata/models"
	"cardata/utils"
)

// Diagnoser runs the rule-based quality checks over an in-memory table.
type Diagnoser struct {
	logger *utils.Logger
}

// NewDiagnoser creates a Diagnoser with the given logger.
func NewDiagnoser(logger *utils.Logger) *Diagnoser {
	return &Diagnoser{logger: logger}
}

// Diagnose applies every check, in order, and returns the assembled report.
// Checks are independent; each appends zero or more finding lines.
func (d *Diagnoser) Diagnose(t *models.Table) *models.Report {
	report := &models.Report{}
	report.Addf("Data diagnosis report")
	report.Addf("- Rows: %d", t.RowCount())
	report.Addf("- Columns: %d", t.ColumnCount())

	checkDuplicates(t, report)
	checkNulls(t, report)
	checkMixedTypes(t, report)
	checkWhitespace(t, report)
	checkCategoricalValues(t, report)
	checkMSRP(t, report)
	checkModelYear(t, report)

	d.logger.Debug("[diagnoser] %d finding lines over %d rows",
		len(report.Lines), t.RowCount())
	return report
}

// Print writes the report body to standard output.
func (d *Diagnoser) Print(r *models.Report) {
	fmt.Println(r.Text())
}
