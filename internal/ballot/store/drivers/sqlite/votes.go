package sqlite

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
)

type votesRepo struct {
	db dbtx
}

func (r *votesRepo) CreateVote(ctx context.Context, v domain.Vote) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO votes (id, voter_id, election_id, candidate_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.VoterID, v.ElectionID, v.CandidateID, v.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *votesRepo) ListVotes(ctx context.Context) ([]domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, voter_id, election_id, candidate_id, created_at FROM votes ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []domain.Vote{}
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.ElectionID, &v.CandidateID, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.CreatedAt = v.CreatedAt.UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *votesRepo) DeleteVotesByElection(ctx context.Context, electionID string) (int64, error) {
	return affected(r.db.ExecContext(ctx, `DELETE FROM votes WHERE election_id = ?`, electionID))
}

func (r *votesRepo) DeleteVotesByCandidate(ctx context.Context, candidateID string) (int64, error) {
	return affected(r.db.ExecContext(ctx, `DELETE FROM votes WHERE candidate_id = ?`, candidateID))
}

func (r *votesRepo) DeleteVotesByVoter(ctx context.Context, voterID string) (int64, error) {
	return affected(r.db.ExecContext(ctx, `DELETE FROM votes WHERE voter_id = ?`, voterID))
}

// Tally joins from candidates so zero-vote candidates appear. Candidate ids
// are ULIDs, so ordering by id is creation order.
func (r *votesRepo) Tally(ctx context.Context, electionID string) ([]domain.Tally, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, COUNT(v.id) AS total_votes
		 FROM candidates c
		 LEFT JOIN votes v ON v.candidate_id = c.id AND v.election_id = c.election_id
		 WHERE c.election_id = ?
		 GROUP BY c.id, c.name
		 ORDER BY total_votes DESC, c.id ASC`,
		electionID,
	)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []domain.Tally{}
	for rows.Next() {
		var t domain.Tally
		if err := rows.Scan(&t.CandidateID, &t.CandidateName, &t.TotalVotes); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
