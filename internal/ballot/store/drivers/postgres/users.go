package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, role, password_hash, reset_token, reset_token_expires, created_at, updated_at`

type usersRepo struct {
	q querier
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u          domain.User
		role       string
		hash       *string
		resetToken *string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &hash, &resetToken, &u.ResetTokenExpires, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.PasswordHash = derefString(hash)
	u.ResetToken = derefString(resetToken)
	if u.ResetTokenExpires != nil {
		t := u.ResetTokenExpires.UTC()
		u.ResetTokenExpires = &t
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO users (id, name, email, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, string(u.Role), nullString(u.PasswordHash), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapError(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, mapError(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	return u, mapError(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
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
	return expectOne(r.q.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, reset_token = NULL, reset_token_expires = NULL, updated_at = $2
		 WHERE id = $3`,
		newHash, time.Now().UTC(), userID,
	))
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, fingerprint string, expires time.Time) error {
	return expectOne(r.q.Exec(ctx,
		`UPDATE users SET reset_token = $1, reset_token_expires = $2, updated_at = $3 WHERE id = $4`,
		fingerprint, expires.UTC(), time.Now().UTC(), userID,
	))
}

func (r *usersRepo) ConsumeResetToken(ctx context.Context, userID, fingerprint, newHash string, now time.Time) error {
	return expectOne(r.q.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, reset_token = NULL, reset_token_expires = NULL, updated_at = $2
		 WHERE id = $3 AND reset_token = $4 AND reset_token_expires > $2`,
		newHash, now.UTC(), userID, fingerprint,
	))
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	return expectOne(r.q.Exec(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), userID,
	))
}

func (r *usersRepo) SetRole(ctx context.Context, userID string, role domain.Role) error {
	return expectOne(r.q.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`,
		string(role), time.Now().UTC(), userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return expectOne(r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return !exists, nil
}

func (r *usersRepo) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return affected(r.q.Exec(ctx,
		`UPDATE users
		 SET reset_token = NULL, reset_token_expires = NULL
		 WHERE reset_token_expires IS NOT NULL AND reset_token_expires <= $1`,
		now.UTC(),
	))
}
