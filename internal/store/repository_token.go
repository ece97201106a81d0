// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-login-bridge/internal/crypto"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/models"
)

const tokensTable = "tokens"

var tokenColumns = []string{"id", "identifier", "sealed_token", "subject", "expires_at", "created_at"}

type tokenRepository struct {
	db      *DB
	sealer  crypto.Sealer
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

// NewTokenRepository returns a [TokenRepository] backed by db. Tokens are
// sealed with sealer, bound to their identifier.
func NewTokenRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) TokenRepository {
	return &tokenRepository{
		db:      db,
		sealer:  sealer,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
		logger:  logger,
	}
}

func (r *tokenRepository) Save(ctx context.Context, token models.StoredToken) (int64, error) {
	log := logger.FromContext(ctx)

	sealed, err := r.sealer.Seal([]byte(token.Token), []byte(token.Identifier))
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.Save").Msg("failed to seal token")
		return 0, fmt.Errorf("%w: %w", ErrSealingToken, err)
	}

	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	query, args, err := r.builder.
		Insert(tokensTable).
		Columns("identifier", "sealed_token", "subject", "expires_at", "created_at").
		Values(token.Identifier, sealed, token.Subject, nullTime(token.ExpiresAt), createdAt).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Save").
			Str("identifier", token.Identifier).
			Msg("failed to insert token")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return 0, ErrTokenNotSaved
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("token_id", id).Str("identifier", token.Identifier).Msg("token stored")
	return id, nil
}

func (r *tokenRepository) Latest(ctx context.Context, identifier string) (models.StoredToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(tokenColumns...).
		From(tokensTable).
		Where(sq.Eq{"identifier": identifier}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.StoredToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		stored    models.StoredToken
		sealed    []byte
		expiresAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&stored.ID,
		&stored.Identifier,
		&sealed,
		&stored.Subject,
		&expiresAt,
		&stored.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredToken{}, ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Latest").
			Str("identifier", identifier).
			Msg("failed to query latest token")
		return models.StoredToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plain, err := r.sealer.Open(sealed, []byte(stored.Identifier))
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.Latest").Msg("failed to open sealed token")
		return models.StoredToken{}, fmt.Errorf("%w: %w", ErrSealingToken, err)
	}

	stored.Token = string(plain)
	if expiresAt.Valid {
		stored.ExpiresAt = expiresAt.Time
	}

	return stored, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
