package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/crypto"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// TokenRepository is the SQLite-backed repository for tokens received
	// from the login service.
	TokenRepository TokenRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the token sealer from loginCfg.TokenKey and wires it into a
//     fresh [TokenRepository].
//
// Returns an error if the database connection cannot be established, if
// migration fails, or if the sealer cannot be built.
func NewClientStorages(cfg config.ClientStorage, loginCfg config.ClientLogin, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	sealer, err := crypto.NewSealer(loginCfg.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("token sealer: %w", err)
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenRepository: NewTokenRepository(db, sealer, logger),
		db:              db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
