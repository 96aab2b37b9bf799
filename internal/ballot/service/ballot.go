package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// BallotService records votes.
type BallotService struct {
	Store store.Store
}

// CastVote records one ballot for voterID. It is a single insert: the
// database's unique (voter_id, election_id) constraint decides which of any
// concurrent attempts wins. Foreign keys reject a candidate that is not part
// of the election and a voter whose account no longer exists.
func (s *BallotService) CastVote(ctx context.Context, voterID, electionID, candidateID string) (string, error) {
	electionID = strings.TrimSpace(electionID)
	candidateID = strings.TrimSpace(candidateID)
	if electionID == "" || candidateID == "" {
		return "", invalid("Election ID and Candidate ID required")
	}

	v := domain.Vote{
		ID:          idx.New().String(),
		VoterID:     voterID,
		ElectionID:  electionID,
		CandidateID: candidateID,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.Store.Votes().CreateVote(ctx, v)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return "", ErrAlreadyVoted
	case errors.Is(err, store.ErrInvalidReference):
		return "", s.rejectedReference(ctx, voterID)
	case err != nil:
		return "", err
	}

	slogx.FromContext(ctx).Info("vote recorded", "election_id", electionID, "vote_id", v.ID)
	return v.ID, nil
}

// rejectedReference tells a deleted voter apart from a bad ballot; both
// surface from the store as the same constraint failure.
func (s *BallotService) rejectedReference(ctx context.Context, voterID string) error {
	_, err := s.Store.Users().GetUserByID(ctx, voterID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrVoterNotFound
	case err != nil:
		return err
	}
	return ErrInvalidElectionOrCandidate
}

// ListVotes returns every recorded vote.
func (s *BallotService) ListVotes(ctx context.Context) ([]domain.Vote, error) {
	return s.Store.Votes().ListVotes(ctx)
}
