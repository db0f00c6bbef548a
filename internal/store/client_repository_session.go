// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/models"
)

const (
	sessionTable = "local_session"
	// the table holds at most one row, always under this id
	sessionRowID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// Save replaces the remembered session with session.
func (r *sessionRepository) Save(ctx context.Context, session models.LocalSession) error {
	query, args, err := psql.
		Insert(sessionTable).
		Options("OR REPLACE").
		Columns("id", "user_id", "username", "logged_in_at").
		Values(sessionRowID, session.UserID, session.Username, session.LoggedInAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the remembered session or [ErrLocalSessionNotFound].
func (r *sessionRepository) Get(ctx context.Context) (models.LocalSession, error) {
	query, args, err := psql.
		Select("user_id", "username", "logged_in_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.LocalSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.Username, &session.LoggedInAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.LocalSession{}, ErrLocalSessionNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*sessionRepository.Get").Msg("error reading local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// Delete forgets the remembered session. Deleting when nothing is stored is
// not an error.
func (r *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := psql.
		Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Delete").Msg("error deleting local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
