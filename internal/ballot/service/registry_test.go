package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/stretchr/testify/require"
)

func TestElections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("title required", func(t *testing.T) {
		_, err := f.registry.CreateElection(ctx, service.ElectionInput{Title: "  "})
		require.ErrorIs(t, err, service.ErrValidation)
		require.EqualError(t, err, "Title is required")
	})

	t.Run("dates are optional and kept verbatim", func(t *testing.T) {
		e, err := f.registry.CreateElection(ctx, service.ElectionInput{
			Title:     "Board",
			StartDate: "2026-11-01",
		})
		require.NoError(t, err)
		require.NotNil(t, e.StartDate)
		require.Equal(t, "2026-11-01", *e.StartDate)
		require.Nil(t, e.EndDate)

		got, err := f.registry.GetElection(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, e.Title, got.Title)
		require.Equal(t, "2026-11-01", *got.StartDate)
	})

	t.Run("unknown election", func(t *testing.T) {
		_, err := f.registry.GetElection(ctx, "missing")
		require.ErrorIs(t, err, service.ErrElectionNotFound)
		require.ErrorIs(t, f.registry.DeleteElection(ctx, "missing"), service.ErrElectionNotFound)
	})

	t.Run("listed in creation order", func(t *testing.T) {
		second, err := f.registry.CreateElection(ctx, service.ElectionInput{Title: "Treasurer"})
		require.NoError(t, err)

		all, err := f.registry.ListElections(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "Board", all[0].Title)
		require.Equal(t, second.ID, all[1].ID)
	})
}

func TestCandidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, _ := f.election(t, "Board")

	t.Run("unknown election", func(t *testing.T) {
		_, err := f.registry.AddCandidate(ctx, "missing", "Ada")
		require.ErrorIs(t, err, service.ErrElectionNotFound)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := f.registry.AddCandidate(ctx, e.ID, "")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("list and delete", func(t *testing.T) {
		a, err := f.registry.AddCandidate(ctx, e.ID, "Ada")
		require.NoError(t, err)
		_, err = f.registry.AddCandidate(ctx, e.ID, "Grace")
		require.NoError(t, err)

		list, err := f.registry.ListCandidates(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Ada", list[0].Name)

		require.NoError(t, f.registry.DeleteCandidate(ctx, a.ID))
		require.ErrorIs(t, f.registry.DeleteCandidate(ctx, a.ID), service.ErrCandidateNotFound)

		list, err = f.registry.ListCandidates(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("unknown election lists nothing", func(t *testing.T) {
		list, err := f.registry.ListCandidates(ctx, "missing")
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestDeleteElectionCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	voter := f.register(t, "Alice", "alice@example.com", "")
	e, cands := f.election(t, "Board", "Ada", "Grace")
	keep, keepCands := f.election(t, "Treasurer", "Linus")

	_, err := f.ballots.CastVote(ctx, voter.User.ID, e.ID, cands[0].ID)
	require.NoError(t, err)
	_, err = f.ballots.CastVote(ctx, voter.User.ID, keep.ID, keepCands[0].ID)
	require.NoError(t, err)

	require.NoError(t, f.registry.DeleteElection(ctx, e.ID))

	list, err := f.registry.ListCandidates(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	votes, err := f.ballots.ListVotes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, keep.ID, votes[0].ElectionID)

	rows, err := f.results.Results(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestDeleteCandidateRemovesVotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "Alice", "alice@example.com", "")
	e, cands := f.election(t, "Board", "Ada", "Grace")

	_, err := f.ballots.CastVote(ctx, alice.User.ID, e.ID, cands[0].ID)
	require.NoError(t, err)
	require.NoError(t, f.registry.DeleteCandidate(ctx, cands[0].ID))

	// The voter's ballot went with the candidate, so they may vote again.
	_, err = f.ballots.CastVote(ctx, alice.User.ID, e.ID, cands[1].ID)
	require.NoError(t, err)
}
