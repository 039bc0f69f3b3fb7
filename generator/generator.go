package generator

import (
	"fmt"
	"math/rand"

	"cardata/models"
	"cardata/utils"
)

// Fixed sampling catalogs. These are pure configuration data; the diagnoser
// carries its own expected-value table and must not share these.
var makeCatalog = []struct {
	Make   string
	Models []string
}{
	{"Toyota", []string{"Corolla", "Camry", "RAV4", "Prius"}},
	{"Honda", []string{"Civic", "Accord", "CR-V", "Pilot"}},
	{"Ford", []string{"Focus", "Fusion", "Escape", "Explorer"}},
	{"BMW", []string{"320i", "X5", "X3", "M3"}},
	{"Tesla", []string{"Model S", "Model 3", "Model X", "Model Y"}},
}

var (
	trims        = []string{"Base", "Sport", "Premium", "Limited"}
	colors       = []string{"Red", "Blue", "Black", "White", "Silver", "Gray"}
	transmission = []string{"automatic", "manual", "CVT", "dual clutch"}
	fuels        = []string{"gasoline", "diesel", "hybrid", "electric"}
	infotainment = []string{"Basic Audio", "Touchscreen", "Premium Audio", "Navigation"}
)

// Misspelled and miscased confusion variants injected as defects. Each set
// ends with a slot for the record's current (valid) value, so a roll may
// still leave the field intact.
var (
	trimVariants         = []string{"standart", "Premuim", "luxary"}
	transmissionVariants = []string{"Automtic", "manuall", "automatic ", "AUTOMATIC"}
	fuelVariants         = []string{"gasolen", "deisel"}
)

const (
	minYear = 2013
	maxYear = 2023

	minMSRP  = 22000
	maxMSRP  = 70000
	msrpStep = 500
)

// Generator produces deliberately messy car equipment tables for ETL practice.
type Generator struct {
	logger *utils.Logger
}

// New creates a Generator with the given logger.
func New(logger *utils.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate returns a table of rows records, deterministic under a fixed seed.
// The result contains max(2, rows/6) verbatim full-row duplicates and is
// shuffled, and individual records carry independently injected defects.
func (g *Generator) Generate(rows int, seed int64) *models.Table {
	rng := rand.New(rand.NewSource(seed))

	duplicates := rows / 6
	if duplicates < 2 {
		duplicates = 2
	}
	base := rows - duplicates
	if base < 1 {
		// Tiny batches still need at least one record to copy from.
		base = 1
		duplicates = rows - base
	}

	table := models.NewTable(models.CarColumns)
	for idx := 0; idx < base; idx++ {
		table.Append(g.record(rng, idx))
	}

	for i := 0; i < duplicates; i++ {
		src := table.Rows[rng.Intn(len(table.Rows))]
		table.Append(models.Clone(src))
	}

	rng.Shuffle(len(table.Rows), func(i, j int) {
		table.Rows[i], table.Rows[j] = table.Rows[j], table.Rows[i]
	})

	g.logger.Info("[generator] Generated %d records (%d base + %d duplicates, seed %d)",
		table.RowCount(), base, duplicates, seed)
	return table
}

// record draws one base record and runs every defect roll against it. The
// rolls are independent, so a single record may stack several defects, and a
// later msrp roll may overwrite an earlier one.
func (g *Generator) record(rng *rand.Rand, idx int) []models.Value {
	entry := makeCatalog[rng.Intn(len(makeCatalog))]
	model := entry.Models[rng.Intn(len(entry.Models))]
	msrp := minMSRP + msrpStep*rng.Intn((maxMSRP-minMSRP)/msrpStep)
	year := minYear + rng.Intn(maxYear-minYear+1)

	carID := models.Text(fmt.Sprintf("C%03d", idx+1))
	makeVal := models.Text(entry.Make)
	modelVal := models.Text(model)
	yearVal := models.Int(int64(year))
	trimVal := models.Text(trims[rng.Intn(len(trims))])
	colorVal := models.Text(colors[rng.Intn(len(colors))])
	transVal := models.Text(transmission[rng.Intn(len(transmission))])
	fuelVal := models.Text(fuels[rng.Intn(len(fuels))])
	infoVal := models.Text(infotainment[rng.Intn(len(infotainment))])
	msrpVal := models.Int(int64(msrp))

	if rng.Float64() < 0.20 { // surrounding whitespace
		modelVal = models.Text(" " + model + "  ")
	}
	if rng.Float64() < 0.18 { // null color
		colorVal = models.Null()
	}
	if rng.Float64() < 0.15 { // year rendered as text
		yearVal = models.Text(fmt.Sprintf("%d", year))
	}
	if rng.Float64() < 0.12 { // currency-formatted price
		msrpVal = models.Text(formatCurrency(msrp))
	}
	if rng.Float64() < 0.10 { // non-numeric placeholder
		msrpVal = models.Text("N/A")
	}
	if rng.Float64() < 0.14 { // misspelled trim
		trimVal = models.Text(pickVariant(rng, trimVariants, trimVal))
	}
	if rng.Float64() < 0.12 { // inconsistent transmission casing/spelling
		transVal = models.Text(transmissionVariants[rng.Intn(len(transmissionVariants))])
	}
	if rng.Float64() < 0.10 { // misspelled fuel
		fuelVal = models.Text(pickVariant(rng, fuelVariants, fuelVal))
	}
	if rng.Float64() < 0.08 { // null infotainment
		infoVal = models.Null()
	}

	return []models.Value{
		carID, makeVal, modelVal, yearVal, trimVal,
		colorVal, transVal, fuelVal, infoVal, msrpVal,
	}
}

// pickVariant chooses from the confusion set extended with the current valid
// value, so the defect roll does not always corrupt the field.
func pickVariant(rng *rand.Rand, variants []string, current models.Value) string {
	n := rng.Intn(len(variants) + 1)
	if n == len(variants) {
		s, _ := current.TextValue()
		return s
	}
	return variants[n]
}

// formatCurrency renders e.g. 45500 as "$45,500". MSRP values are bounded
// well below a million, so a single thousands separator suffices.
func formatCurrency(n int) string {
	return fmt.Sprintf("$%d,%03d", n/1000, n%1000)
}
