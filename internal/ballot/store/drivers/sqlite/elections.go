package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
)

type electionsRepo struct {
	db dbtx
}

func scanElection(row rowScanner) (domain.Election, error) {
	var (
		e          domain.Election
		start, end sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &start, &end, &e.CreatedAt); err != nil {
		return domain.Election{}, err
	}
	e.StartDate = fromNullStringPtr(start)
	e.EndDate = fromNullStringPtr(end)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

func (r *electionsRepo) CreateElection(ctx context.Context, e domain.Election) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO elections (id, title, description, start_date, end_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, nullStringPtr(e.StartDate), nullStringPtr(e.EndDate), e.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *electionsRepo) GetElection(ctx context.Context, id string) (domain.Election, error) {
	e, err := scanElection(r.db.QueryRowContext(ctx,
		`SELECT id, title, description, start_date, end_date, created_at FROM elections WHERE id = ?`, id))
	return e, mapError(err)
}

func (r *electionsRepo) ListElections(ctx context.Context) ([]domain.Election, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, start_date, end_date, created_at FROM elections ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []domain.Election{}
	for rows.Next() {
		e, err := scanElection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *electionsRepo) DeleteElection(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM elections WHERE id = ?`, id))
}
