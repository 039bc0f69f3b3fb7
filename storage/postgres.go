package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"cardata/models"
	"cardata/utils"
)

// PostgresStore persists generated raw batches and serves them back to the
// diagnoser. Cells are stored in their CSV rendering with NULLs preserved,
// so reloaded batches re-infer kinds exactly like a CSV round trip.
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use store.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db, logger: logger}
	if err := ps.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS raw_car_records (
			id                  SERIAL PRIMARY KEY,
			batch_id            UUID        NOT NULL,
			row_index           INT         NOT NULL,
			car_id              TEXT,
			make                TEXT,
			model               TEXT,
			model_year          TEXT,
			trim_level          TEXT,
			exterior_color      TEXT,
			transmission        TEXT,
			fuel_type           TEXT,
			infotainment_system TEXT,
			msrp                TEXT,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_raw_car_records_batch ON raw_car_records(batch_id);
	`)
	return err
}

// StoreBatch inserts every row of the table under a fresh batch id and
// returns it. Row order is preserved through row_index.
func (ps *PostgresStore) StoreBatch(t *models.Table) (uuid.UUID, error) {
	batchID := uuid.New()

	const batchSize = 50
	for i := 0; i < t.RowCount(); i += batchSize {
		end := i + batchSize
		if end > t.RowCount() {
			end = t.RowCount()
		}
		if err := ps.insertBatch(batchID, i, t.Rows[i:end]); err != nil {
			return uuid.Nil, err
		}
	}

	ps.logger.Info("[postgres] Stored %d records under batch %s", t.RowCount(), batchID)
	return batchID, nil
}

func (ps *PostgresStore) insertBatch(batchID uuid.UUID, offset int, rows [][]models.Value) error {
	const cols = 12 // batch_id, row_index, then the ten schema columns
	valueStrings := make([]string, 0, len(rows))
	valueArgs := make([]interface{}, 0, len(rows)*cols)

	for idx, row := range rows {
		base := idx * cols
		ph := make([]string, cols)
		for p := 0; p < cols; p++ {
			ph[p] = fmt.Sprintf("$%d", base+p+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(ph, ",")+")")

		valueArgs = append(valueArgs, batchID, offset+idx)
		for _, v := range row {
			if v.IsNull() {
				valueArgs = append(valueArgs, nil)
			} else {
				valueArgs = append(valueArgs, v.String())
			}
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO raw_car_records
			(batch_id, row_index, car_id, make, model, model_year, trim_level,
			 exterior_color, transmission, fuel_type, infotainment_system, msrp)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := ps.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// Write stores the table as a fresh batch, satisfying TableWriter.
func (ps *PostgresStore) Write(t *models.Table) error {
	_, err := ps.StoreBatch(t)
	return err
}

// FetchLatestBatch reloads the most recently stored batch in row order.
func (ps *PostgresStore) FetchLatestBatch() (*models.Table, error) {
	rows, err := ps.db.Query(`
		SELECT car_id, make, model, model_year, trim_level, exterior_color,
		       transmission, fuel_type, infotainment_system, msrp
		FROM raw_car_records
		WHERE batch_id = (
			SELECT batch_id FROM raw_car_records ORDER BY created_at DESC, id DESC LIMIT 1
		)
		ORDER BY row_index
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch latest batch: %w", err)
	}
	defer rows.Close()

	table := models.NewTable(models.CarColumns)
	for rows.Next() {
		cells := make([]sql.NullString, len(models.CarColumns))
		dest := make([]interface{}, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}

		row := make([]models.Value, len(cells))
		for i, c := range cells {
			if !c.Valid {
				row[i] = models.Null()
			} else {
				row[i] = models.ParseValue(c.String)
			}
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: fetch latest batch: %w", err)
	}
	return table, nil
}

// Close closes the underlying connection pool.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
