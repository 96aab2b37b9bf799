package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// UserService is the admin view of accounts.
type UserService struct {
	Store store.Store
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// DeleteUser removes the user and every vote they cast in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return invalid("User ID required")
	}

	var votes int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if votes, err = tx.Votes().DeleteVotesByVoter(ctx, id); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted", "target_user_id", id, "votes_removed", votes)
	return nil
}

// SetRole promotes or demotes a user. Existing session tokens keep the role
// they were issued with until they expire.
func (s *UserService) SetRole(ctx context.Context, id string, role domain.Role) error {
	if id == "" {
		return invalid("User ID required")
	}
	if !role.Valid() {
		return invalid("role must be voter or admin")
	}

	err := s.Store.Users().SetRole(ctx, id, role)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user role changed", "target_user_id", id, "role", role)
	return nil
}
