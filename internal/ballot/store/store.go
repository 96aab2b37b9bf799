package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference is returned when a row points at a parent that does
	// not exist (foreign key violation).
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so a Tx can
// hand out the same repositories bound to the transaction, and so a Tx cannot
// open another Tx.
type Store interface {
	Users() Users
	Elections() Elections
	Candidates() Candidates
	Votes() Votes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Prefer it over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A duplicate email is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdatePasswordHash sets password_hash and clears any pending reset
	// token in the same statement.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetResetToken records the fingerprint of the latest reset token,
	// replacing any earlier one.
	SetResetToken(ctx context.Context, userID, fingerprint string, expires time.Time) error

	// ConsumeResetToken sets password_hash and clears the reset token only if
	// fingerprint is still the stored one and has not expired at now. It
	// returns ErrNotFound when the token was already used or replaced.
	ConsumeResetToken(ctx context.Context, userID, fingerprint, newHash string, now time.Time) error

	// ClearResetToken forgets any pending reset token.
	ClearResetToken(ctx context.Context, userID string) error

	SetRole(ctx context.Context, userID string, role domain.Role) error

	// DeleteUser removes the user row only; callers remove votes first.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)

	// DeleteExpiredResetTokens clears reset state whose expiry is at or
	// before now and returns how many users were touched.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Elections interface {
	CreateElection(ctx context.Context, e domain.Election) error
	GetElection(ctx context.Context, id string) (domain.Election, error)

	// ListElections returns every election in creation order.
	ListElections(ctx context.Context) ([]domain.Election, error)

	// DeleteElection removes the election row only; callers remove
	// candidates and votes first.
	DeleteElection(ctx context.Context, id string) error
}

type Candidates interface {
	// CreateCandidate inserts a candidate. An unknown election is
	// ErrInvalidReference.
	CreateCandidate(ctx context.Context, c domain.Candidate) error

	GetCandidate(ctx context.Context, id string) (domain.Candidate, error)

	// ListCandidates returns the election's candidates in creation order.
	ListCandidates(ctx context.Context, electionID string) ([]domain.Candidate, error)

	DeleteCandidate(ctx context.Context, id string) error
	DeleteCandidatesByElection(ctx context.Context, electionID string) (int64, error)
}

type Votes interface {
	// CreateVote inserts a ballot. A second ballot for the same voter and
	// election is ErrAlreadyExists. An election or candidate that does not
	// exist, or a candidate of a different election, is ErrInvalidReference.
	CreateVote(ctx context.Context, v domain.Vote) error

	// ListVotes returns every vote in creation order.
	ListVotes(ctx context.Context) ([]domain.Vote, error)

	DeleteVotesByElection(ctx context.Context, electionID string) (int64, error)
	DeleteVotesByCandidate(ctx context.Context, candidateID string) (int64, error)
	DeleteVotesByVoter(ctx context.Context, voterID string) (int64, error)

	// Tally counts votes per candidate of an election, including candidates
	// with no votes, ordered by count descending then candidate id.
	Tally(ctx context.Context, electionID string) ([]domain.Tally, error)
}
