// Package storetest is a conformance suite every store driver runs from its
// own tests.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a migrated, empty store. It should register its own cleanup.
type Factory func(t *testing.T) store.Store

// Run exercises the full store contract against a fresh store per subtest.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("reset tokens", func(t *testing.T) { testResetTokens(t, newStore(t)) })
	t.Run("elections and candidates", func(t *testing.T) { testRegistry(t, newStore(t)) })
	t.Run("votes unique per voter and election", func(t *testing.T) { testVoteUniqueness(t, newStore(t)) })
	t.Run("votes reference a candidate of the election", func(t *testing.T) { testVoteReferences(t, newStore(t)) })
	t.Run("votes reference an existing voter", func(t *testing.T) { testVoteVoter(t, newStore(t)) })
	t.Run("concurrent votes", func(t *testing.T) { testConcurrentVotes(t, newStore(t)) })
	t.Run("tally", func(t *testing.T) { testTally(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTx(t, newStore(t)) })
}

func newID() string { return idx.New().String() }

// NewUser builds a voter with a unique id and the given email.
func NewUser(email string) domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.User{
		ID:           newID(),
		Name:         "Test " + email,
		Email:        email,
		Role:         domain.RoleVoter,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Seed creates an election with the named candidates and returns them in
// creation order.
func Seed(t *testing.T, s store.Store, title string, names ...string) (domain.Election, []domain.Candidate) {
	t.Helper()
	ctx := context.Background()

	e := domain.Election{ID: newID(), Title: title, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Elections().CreateElection(ctx, e))

	out := make([]domain.Candidate, 0, len(names))
	for _, n := range names {
		c := domain.Candidate{ID: newID(), ElectionID: e.ID, Name: n, CreatedAt: time.Now().UTC()}
		require.NoError(t, s.Candidates().CreateCandidate(ctx, c))
		out = append(out, c)
	}
	return e, out
}

// SeedVoter stores a voter whose email is derived from name and returns
// its id.
func SeedVoter(t *testing.T, s store.Store, name string) string {
	t.Helper()
	u := NewUser(name + "@example.com")
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u.ID
}

func vote(voter string, c domain.Candidate) domain.Vote {
	return domain.Vote{
		ID:          newID(),
		VoterID:     voter,
		ElectionID:  c.ElectionID,
		CandidateID: c.ID,
		CreatedAt:   time.Now().UTC(),
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	empty, err := users.IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	alice := NewUser("alice@example.com")
	require.NoError(t, users.CreateUser(ctx, alice))

	empty, err = users.IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	got, err := users.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, alice.Name, got.Name)
	require.Equal(t, domain.RoleVoter, got.Role)
	require.Equal(t, alice.PasswordHash, got.PasswordHash)
	require.Empty(t, got.ResetToken)
	require.Nil(t, got.ResetTokenExpires)
	require.True(t, alice.CreatedAt.Equal(got.CreatedAt))

	// Duplicate email is a structured conflict and leaves the first row alone.
	dup := NewUser("alice@example.com")
	dup.Name = "Impostor"
	require.ErrorIs(t, users.CreateUser(ctx, dup), store.ErrAlreadyExists)
	got, err = users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.Name, got.Name)

	// Emails match exactly as stored.
	_, err = users.GetUserByEmail(ctx, "ALICE@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	legacy := NewUser("legacy@example.com")
	legacy.PasswordHash = ""
	require.NoError(t, users.CreateUser(ctx, legacy))
	got, err = users.GetUserByID(ctx, legacy.ID)
	require.NoError(t, err)
	require.False(t, got.HasPassword())

	require.NoError(t, users.SetRole(ctx, alice.ID, domain.RoleAdmin))
	got, err = users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, got.Role)

	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, alice.ID, list[0].ID)
	require.Equal(t, legacy.ID, list[1].ID)

	require.ErrorIs(t, users.SetRole(ctx, newID(), domain.RoleAdmin), store.ErrNotFound)
	require.ErrorIs(t, users.UpdatePasswordHash(ctx, newID(), "x"), store.ErrNotFound)
	require.ErrorIs(t, users.DeleteUser(ctx, newID()), store.ErrNotFound)
	_, err = users.GetUserByID(ctx, newID())
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, users.DeleteUser(ctx, legacy.ID))
	_, err = users.GetUserByID(ctx, legacy.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testResetTokens(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	u := NewUser("reset@example.com")
	require.NoError(t, users.CreateUser(ctx, u))

	now := time.Now().UTC()
	expires := now.Add(time.Hour)
	require.NoError(t, users.SetResetToken(ctx, u.ID, "fp-1", expires))

	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "fp-1", got.ResetToken)
	require.NotNil(t, got.ResetTokenExpires)
	require.WithinDuration(t, expires, *got.ResetTokenExpires, time.Millisecond)

	// A newer token replaces the old fingerprint.
	require.NoError(t, users.SetResetToken(ctx, u.ID, "fp-2", expires))
	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "fp-2", got.ResetToken)

	// Changing the password consumes the pending reset.
	require.NoError(t, users.UpdatePasswordHash(ctx, u.ID, "new-hash"))
	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Empty(t, got.ResetToken)
	require.Nil(t, got.ResetTokenExpires)

	// Consuming needs the current fingerprint, and only works once.
	require.NoError(t, users.SetResetToken(ctx, u.ID, "fp-3", expires))
	require.ErrorIs(t, users.ConsumeResetToken(ctx, u.ID, "fp-2", "hash-a", now), store.ErrNotFound)
	require.NoError(t, users.ConsumeResetToken(ctx, u.ID, "fp-3", "hash-b", now))
	require.ErrorIs(t, users.ConsumeResetToken(ctx, u.ID, "fp-3", "hash-c", now), store.ErrNotFound)
	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "hash-b", got.PasswordHash)
	require.Empty(t, got.ResetToken)

	// An expired fingerprint cannot be consumed.
	require.NoError(t, users.SetResetToken(ctx, u.ID, "fp-4", now.Add(-time.Second)))
	require.ErrorIs(t, users.ConsumeResetToken(ctx, u.ID, "fp-4", "hash-d", now), store.ErrNotFound)

	require.NoError(t, users.SetResetToken(ctx, u.ID, "fp-5", expires))
	require.NoError(t, users.ClearResetToken(ctx, u.ID))
	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, got.ResetToken)

	// Housekeeping clears only expired state.
	stale := NewUser("stale@example.com")
	fresh := NewUser("fresh@example.com")
	require.NoError(t, users.CreateUser(ctx, stale))
	require.NoError(t, users.CreateUser(ctx, fresh))
	require.NoError(t, users.SetResetToken(ctx, stale.ID, "fp-stale", now.Add(-time.Minute)))
	require.NoError(t, users.SetResetToken(ctx, fresh.ID, "fp-fresh", now.Add(time.Hour)))

	n, err := users.DeleteExpiredResetTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err = users.GetUserByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Empty(t, got.ResetToken)
	got, err = users.GetUserByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, "fp-fresh", got.ResetToken)
}

func testRegistry(t *testing.T, s store.Store) {
	ctx := context.Background()

	start := "2026-11-01"
	e := domain.Election{
		ID:          newID(),
		Title:       "Board Vote",
		Description: "Annual board election",
		StartDate:   &start,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Elections().CreateElection(ctx, e))

	got, err := s.Elections().GetElection(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Title, got.Title)
	require.Equal(t, e.Description, got.Description)
	require.NotNil(t, got.StartDate)
	require.Equal(t, start, *got.StartDate)
	require.Nil(t, got.EndDate)

	other, _ := Seed(t, s, "Treasurer")

	list, err := s.Elections().ListElections(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, e.ID, list[0].ID)
	require.Equal(t, other.ID, list[1].ID)

	alice := domain.Candidate{ID: newID(), ElectionID: e.ID, Name: "Alice", CreatedAt: time.Now().UTC()}
	bob := domain.Candidate{ID: newID(), ElectionID: e.ID, Name: "Bob", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Candidates().CreateCandidate(ctx, alice))
	require.NoError(t, s.Candidates().CreateCandidate(ctx, bob))

	orphan := domain.Candidate{ID: newID(), ElectionID: newID(), Name: "Nobody", CreatedAt: time.Now().UTC()}
	require.ErrorIs(t, s.Candidates().CreateCandidate(ctx, orphan), store.ErrInvalidReference)

	cands, err := s.Candidates().ListCandidates(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, cands, 2)
	require.Equal(t, "Alice", cands[0].Name)
	require.Equal(t, "Bob", cands[1].Name)

	cands, err = s.Candidates().ListCandidates(ctx, other.ID)
	require.NoError(t, err)
	require.Empty(t, cands)

	gotC, err := s.Candidates().GetCandidate(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, e.ID, gotC.ElectionID)

	// An election with children cannot be removed on its own.
	require.Error(t, s.Elections().DeleteElection(ctx, e.ID))

	n, err := s.Candidates().DeleteCandidatesByElection(ctx, e.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.NoError(t, s.Elections().DeleteElection(ctx, e.ID))

	_, err = s.Elections().GetElection(ctx, e.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Elections().DeleteElection(ctx, e.ID), store.ErrNotFound)
	require.ErrorIs(t, s.Candidates().DeleteCandidate(ctx, alice.ID), store.ErrNotFound)
}

func testVoteUniqueness(t *testing.T, s store.Store) {
	ctx := context.Background()
	_, cands := Seed(t, s, "Board Vote", "Alice", "Bob")
	v1 := SeedVoter(t, s, "voter1")
	v2 := SeedVoter(t, s, "voter2")

	require.NoError(t, s.Votes().CreateVote(ctx, vote(v1, cands[0])))

	// Same voter, same election, different candidate: still a duplicate.
	require.ErrorIs(t, s.Votes().CreateVote(ctx, vote(v1, cands[1])), store.ErrAlreadyExists)

	// Another voter is fine, and so is the same voter in another election.
	require.NoError(t, s.Votes().CreateVote(ctx, vote(v2, cands[1])))
	_, other := Seed(t, s, "Treasurer", "Carol")
	require.NoError(t, s.Votes().CreateVote(ctx, vote(v1, other[0])))

	votes, err := s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 3)
	require.Equal(t, v1, votes[0].VoterID)
	require.Equal(t, cands[0].ID, votes[0].CandidateID)
}

func testVoteReferences(t *testing.T, s store.Store) {
	ctx := context.Background()
	e, cands := Seed(t, s, "Board Vote", "Alice")
	_, foreign := Seed(t, s, "Treasurer", "Carol")
	voter := SeedVoter(t, s, "voter1")

	unknownCandidate := vote(voter, cands[0])
	unknownCandidate.CandidateID = newID()
	require.ErrorIs(t, s.Votes().CreateVote(ctx, unknownCandidate), store.ErrInvalidReference)

	unknownElection := vote(voter, cands[0])
	unknownElection.ElectionID = newID()
	require.ErrorIs(t, s.Votes().CreateVote(ctx, unknownElection), store.ErrInvalidReference)

	crossed := vote(voter, foreign[0])
	crossed.ElectionID = e.ID
	require.ErrorIs(t, s.Votes().CreateVote(ctx, crossed), store.ErrInvalidReference)

	votes, err := s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Empty(t, votes)
}

func testVoteVoter(t *testing.T, s store.Store) {
	ctx := context.Background()
	_, cands := Seed(t, s, "Board Vote", "Alice")
	voter := SeedVoter(t, s, "voter1")

	require.ErrorIs(t, s.Votes().CreateVote(ctx, vote(newID(), cands[0])), store.ErrInvalidReference)

	require.NoError(t, s.Votes().CreateVote(ctx, vote(voter, cands[0])))

	// A voter with ballots on file cannot be removed on their own.
	require.Error(t, s.Users().DeleteUser(ctx, voter))

	n, err := s.Votes().DeleteVotesByVoter(ctx, voter)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.NoError(t, s.Users().DeleteUser(ctx, voter))

	// Once the account is gone it cannot vote again.
	require.ErrorIs(t, s.Votes().CreateVote(ctx, vote(voter, cands[0])), store.ErrInvalidReference)

	votes, err := s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Empty(t, votes)
}

func testConcurrentVotes(t *testing.T, s store.Store) {
	ctx := context.Background()
	_, cands := Seed(t, s, "Board Vote", "Alice", "Bob")
	voter := SeedVoter(t, s, "voter1")

	const attempts = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		duplicate atomic.Int32
		other     atomic.Int32
	)

	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Votes().CreateVote(ctx, vote(voter, cands[i%2]))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, store.ErrAlreadyExists):
				duplicate.Add(1)
			default:
				t.Logf("unexpected error: %v", err)
				other.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, 1, succeeded.Load())
	require.EqualValues(t, attempts-1, duplicate.Load())
	require.Zero(t, other.Load())

	votes, err := s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 1)
}

func testTally(t *testing.T, s store.Store) {
	ctx := context.Background()
	_, cands := Seed(t, s, "Board Vote", "C1", "C2", "C3", "C4")
	_, other := Seed(t, s, "Treasurer", "X")

	voters := make([]string, 5)
	for i := range voters {
		voters[i] = SeedVoter(t, s, fmt.Sprintf("voter%d", i))
	}

	// C2 and C4 tie on one vote each; C2 was created first.
	for i := range 3 {
		require.NoError(t, s.Votes().CreateVote(ctx, vote(voters[i], cands[0])))
	}
	require.NoError(t, s.Votes().CreateVote(ctx, vote(voters[3], cands[3])))
	require.NoError(t, s.Votes().CreateVote(ctx, vote(voters[4], cands[1])))
	require.NoError(t, s.Votes().CreateVote(ctx, vote(voters[0], other[0])))

	tally, err := s.Votes().Tally(ctx, cands[0].ElectionID)
	require.NoError(t, err)
	require.Len(t, tally, 4)

	names := make([]string, len(tally))
	counts := make([]int64, len(tally))
	for i, row := range tally {
		names[i] = row.CandidateName
		counts[i] = row.TotalVotes
	}
	require.Equal(t, []string{"C1", "C2", "C4", "C3"}, names)
	require.Equal(t, []int64{3, 1, 1, 0}, counts)

	empty, err := s.Votes().Tally(ctx, newID())
	require.NoError(t, err)
	require.Empty(t, empty)
}

func testTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	e, cands := Seed(t, s, "Board Vote", "Alice")
	voter := SeedVoter(t, s, "voter1")
	require.NoError(t, s.Votes().CreateVote(ctx, vote(voter, cands[0])))

	// A failing fn rolls everything back.
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Votes().DeleteVotesByElection(ctx, e.ID); err != nil {
			return err
		}
		return tx.Elections().DeleteElection(ctx, e.ID)
	})
	require.Error(t, err)

	votes, err := s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 1)

	// Children first, then the parent, commits cleanly.
	err = s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Votes().DeleteVotesByElection(ctx, e.ID); err != nil {
			return err
		}
		if _, err := tx.Candidates().DeleteCandidatesByElection(ctx, e.ID); err != nil {
			return err
		}
		return tx.Elections().DeleteElection(ctx, e.ID)
	})
	require.NoError(t, err)

	votes, err = s.Votes().ListVotes(ctx)
	require.NoError(t, err)
	require.Empty(t, votes)
	cands, err = s.Candidates().ListCandidates(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, cands)

	// Nested transactions are refused.
	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}
