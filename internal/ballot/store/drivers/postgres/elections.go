package postgres

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/jackc/pgx/v5"
)

const electionColumns = `id, title, description, start_date, end_date, created_at`

type electionsRepo struct {
	q querier
}

func scanElection(row pgx.Row) (domain.Election, error) {
	var e domain.Election
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedAt); err != nil {
		return domain.Election{}, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

func (r *electionsRepo) CreateElection(ctx context.Context, e domain.Election) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO elections (id, title, description, start_date, end_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Title, e.Description, e.StartDate, e.EndDate, e.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *electionsRepo) GetElection(ctx context.Context, id string) (domain.Election, error) {
	e, err := scanElection(r.q.QueryRow(ctx, `SELECT `+electionColumns+` FROM elections WHERE id = $1`, id))
	return e, mapError(err)
}

func (r *electionsRepo) ListElections(ctx context.Context) ([]domain.Election, error) {
	rows, err := r.q.Query(ctx, `SELECT `+electionColumns+` FROM elections ORDER BY id`)
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
	return expectOne(r.q.Exec(ctx, `DELETE FROM elections WHERE id = $1`, id))
}
