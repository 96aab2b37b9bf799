package sqlite

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
)

type candidatesRepo struct {
	db dbtx
}

func scanCandidate(row rowScanner) (domain.Candidate, error) {
	var c domain.Candidate
	if err := row.Scan(&c.ID, &c.ElectionID, &c.Name, &c.CreatedAt); err != nil {
		return domain.Candidate{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r *candidatesRepo) CreateCandidate(ctx context.Context, c domain.Candidate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO candidates (id, election_id, name, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.ElectionID, c.Name, c.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *candidatesRepo) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRowContext(ctx,
		`SELECT id, election_id, name, created_at FROM candidates WHERE id = ?`, id))
	return c, mapError(err)
}

func (r *candidatesRepo) ListCandidates(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, election_id, name, created_at FROM candidates WHERE election_id = ? ORDER BY id`,
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
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = ?`, id))
}

func (r *candidatesRepo) DeleteCandidatesByElection(ctx context.Context, electionID string) (int64, error) {
	return affected(r.db.ExecContext(ctx, `DELETE FROM candidates WHERE election_id = ?`, electionID))
}
