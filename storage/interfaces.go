package storage

import "cardata/models"

// TableProvider produces an in-memory table from some backing source: a file
// on disk, the in-process generator, or a database batch.
type TableProvider interface {
	Name() string
	Load() (*models.Table, error)
}

// TableWriter is the interface any dataset sink must satisfy.
type TableWriter interface {
	Write(t *models.Table) error
	Close() error
}
