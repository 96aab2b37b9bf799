package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer Store owns the connection pool.
func (t *txStore) Close() error { return nil }

// Ping is a no-op; the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users           { return &usersRepo{db: t.tx} }
func (t *txStore) Elections() store.Elections   { return &electionsRepo{db: t.tx} }
func (t *txStore) Candidates() store.Candidates { return &candidatesRepo{db: t.tx} }
func (t *txStore) Votes() store.Votes           { return &votesRepo{db: t.tx} }

// Migrations run on the Store before any transaction is opened.
func (t *txStore) ApplyMigrations() error { return nil }
