package store

import (
	"database/sql"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/migrations"
)

// DB wraps a database handle together with the migration set of its schema.
type DB struct {
	*sql.DB
	migrations migrations.Set
	logger     *logger.Logger
}

// Migrate applies the pending migrations of the handle's schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrations)
}
