package postgres

import (
	"errors"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes from the integrity_constraint_violation class.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError turns driver errors into store sentinels using the SQLSTATE code,
// never the message text.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return errors.Join(store.ErrAlreadyExists, err)
	case codeForeignKeyViolation:
		return errors.Join(store.ErrInvalidReference, err)
	}
	return err
}

// expectOne reports store.ErrNotFound when a single-row mutation matched
// nothing.
func expectOne(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func affected(tag pgconn.CommandTag, err error) (int64, error) {
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}
