package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
)

const userColumns = `id, name, email, role, password_hash, reset_token, reset_token_expires, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		role       string
		hash       sql.NullString
		resetToken sql.NullString
		resetExp   sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &hash, &resetToken, &resetExp, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.PasswordHash = fromNullString(hash)
	u.ResetToken = fromNullString(resetToken)
	u.ResetTokenExpires = fromNullTimePtr(resetExp)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, role, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, string(u.Role), nullString(u.PasswordHash), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapError(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	return u, mapError(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	return u, mapError(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, reset_token = NULL, reset_token_expires = NULL, updated_at = ?
		 WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	))
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, fingerprint string, expires time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = ?, reset_token_expires = ?, updated_at = ? WHERE id = ?`,
		fingerprint, expires.UTC(), time.Now().UTC(), userID,
	))
}

func (r *usersRepo) ConsumeResetToken(ctx context.Context, userID, fingerprint, newHash string, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, reset_token = NULL, reset_token_expires = NULL, updated_at = ?
		 WHERE id = ? AND reset_token = ? AND julianday(reset_token_expires) > julianday(?)`,
		newHash, now.UTC(), userID, fingerprint, now.UTC(),
	))
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	))
}

func (r *usersRepo) SetRole(ctx context.Context, userID string, role domain.Role) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, mapError(err)
	}
	return count == 0, nil
}

func (r *usersRepo) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return affected(r.db.ExecContext(ctx,
		`UPDATE users
		 SET reset_token = NULL, reset_token_expires = NULL
		 WHERE reset_token_expires IS NOT NULL AND julianday(reset_token_expires) <= julianday(?)`,
		now.UTC(),
	))
}
