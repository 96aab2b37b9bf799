package postgres

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/jackc/pgx/v5"
)

type candidatesRepo struct {
	q querier
}

func scanCandidate(row pgx.Row) (domain.Candidate, error) {
	var c domain.Candidate
	if err := row.Scan(&c.ID, &c.ElectionID, &c.Name, &c.CreatedAt); err != nil {
		return domain.Candidate{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r *candidatesRepo) CreateCandidate(ctx context.Context, c domain.Candidate) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO candidates (id, election_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.ElectionID, c.Name, c.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *candidatesRepo) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := scanCandidate(r.q.QueryRow(ctx,
		`SELECT id, election_id, name, created_at FROM candidates WHERE id = $1`, id))
	return c, mapError(err)
}

func (r *candidatesRepo) ListCandidates(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, election_id, name, created_at FROM candidates WHERE election_id = $1 ORDER BY id`,
		electionID,
	)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *candidatesRepo) DeleteCandidate(ctx context.Context, id string) error {
	return expectOne(r.q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id))
}

func (r *candidatesRepo) DeleteCandidatesByElection(ctx context.Context, electionID string) (int64, error) {
	return affected(r.q.Exec(ctx, `DELETE FROM candidates WHERE election_id = $1`, electionID))
}
