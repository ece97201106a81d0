package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/migrations"
)

// DB is the local token database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrate token database: %w", err)
	}
	db.logger.Debug().Msg("token database schema is up to date")
	return nil
}
