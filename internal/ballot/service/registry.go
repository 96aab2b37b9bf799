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

// RegistryService manages elections and their candidates.
type RegistryService struct {
	Store store.Store
}

type ElectionInput struct {
	Title       string
	Description string
	StartDate   string
	EndDate     string
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *RegistryService) CreateElection(ctx context.Context, in ElectionInput) (domain.Election, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Election{}, invalid("Title is required")
	}

	e := domain.Election{
		ID:          idx.New().String(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		StartDate:   optional(in.StartDate),
		EndDate:     optional(in.EndDate),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Elections().CreateElection(ctx, e); err != nil {
		return domain.Election{}, err
	}

	slogx.FromContext(ctx).Info("election created", "election_id", e.ID)
	return e, nil
}

func (s *RegistryService) ListElections(ctx context.Context) ([]domain.Election, error) {
	return s.Store.Elections().ListElections(ctx)
}

func (s *RegistryService) GetElection(ctx context.Context, id string) (domain.Election, error) {
	e, err := s.Store.Elections().GetElection(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Election{}, ErrElectionNotFound
	}
	return e, err
}

// DeleteElection removes the election with its candidates and votes in one
// transaction, children first.
func (s *RegistryService) DeleteElection(ctx context.Context, id string) error {
	var votes, candidates int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if votes, err = tx.Votes().DeleteVotesByElection(ctx, id); err != nil {
			return err
		}
		if candidates, err = tx.Candidates().DeleteCandidatesByElection(ctx, id); err != nil {
			return err
		}
		return tx.Elections().DeleteElection(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrElectionNotFound
	}
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("election deleted",
		"election_id", id,
		"candidates_removed", candidates,
		"votes_removed", votes,
	)
	return nil
}

// AddCandidate adds a candidate to an existing election.
func (s *RegistryService) AddCandidate(ctx context.Context, electionID, name string) (domain.Candidate, error) {
	electionID = strings.TrimSpace(electionID)
	name = strings.TrimSpace(name)
	if electionID == "" || name == "" {
		return domain.Candidate{}, invalid("Election ID and candidate name required")
	}

	c := domain.Candidate{
		ID:         idx.New().String(),
		ElectionID: electionID,
		Name:       name,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.Candidates().CreateCandidate(ctx, c); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return domain.Candidate{}, ErrElectionNotFound
		}
		return domain.Candidate{}, err
	}

	slogx.FromContext(ctx).Info("candidate added", "election_id", electionID, "candidate_id", c.ID)
	return c, nil
}

// ListCandidates returns the election's candidates. An unknown election has
// none.
func (s *RegistryService) ListCandidates(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	return s.Store.Candidates().ListCandidates(ctx, electionID)
}

// DeleteCandidate removes a candidate and the votes cast for it.
func (s *RegistryService) DeleteCandidate(ctx context.Context, id string) error {
	var votes int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if votes, err = tx.Votes().DeleteVotesByCandidate(ctx, id); err != nil {
			return err
		}
		return tx.Candidates().DeleteCandidate(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("candidate deleted", "candidate_id", id, "votes_removed", votes)
	return nil
}
