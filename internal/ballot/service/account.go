package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// AccountService owns registration, sign in and password reset.
type AccountService struct {
	Store    store.Store
	Tokens   *TokenService
	Notifier ResetNotifier

	// AllowAdminSignup lets anyone register with role "admin". When false an
	// admin can only self-register while the user table is empty.
	AllowAdminSignup bool
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Session is a signed in user plus their bearer token.
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// Register creates a user and signs them in.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	l := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return Session{}, invalid("name, email and password required")
	}

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return Session{}, invalid("role must be voter or admin")
	}
	if role == domain.RoleAdmin && !s.AllowAdminSignup {
		empty, err := s.Store.Users().IsEmpty(ctx)
		if err != nil {
			return Session{}, err
		}
		if !empty {
			l.Warn("refused admin self-registration")
			return Session{}, ErrAdminSelfRegistration
		}
	}

	u, err := s.createUser(ctx, name, email, in.Password, role)
	if err != nil {
		return Session{}, err
	}

	tok, exp, err := s.Tokens.IssueSession(u)
	if err != nil {
		return Session{}, err
	}

	l.Info("user registered", "user_id", u.ID, "role", u.Role)
	return Session{User: u, Token: tok, ExpiresAt: exp}, nil
}

// CreateAdmin seeds an administrator account. It is the operator path for
// creating admins once self-registration is closed.
func (s *AccountService) CreateAdmin(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, invalid("name, email and password required")
	}
	return s.createUser(ctx, name, email, password, domain.RoleAdmin)
}

func (s *AccountService) createUser(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return u, nil
}

// Login checks a password and issues a session token.
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, invalid("email and password required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrUserNotFound
	}
	if err != nil {
		return Session{}, err
	}

	if !u.HasPassword() {
		return Session{}, ErrNoPassword
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login failed", "user_id", u.ID)
			return Session{}, ErrBadCredentials
		}
		return Session{}, err
	}

	tok, exp, err := s.Tokens.IssueSession(u)
	if err != nil {
		return Session{}, err
	}

	l.Info("user signed in", "user_id", u.ID)
	return Session{User: u, Token: tok, ExpiresAt: exp}, nil
}

// ForgotPassword issues a reset token, stores its fingerprint (retiring any
// earlier token) and hands it to the notifier. An unknown email is
// ErrUserNotFound.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("Email required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	tok, exp, err := s.Tokens.IssueReset(u.Email)
	if err != nil {
		return err
	}

	if err := s.Store.Users().SetResetToken(ctx, u.ID, cryptox.FingerprintToken(tok), exp); err != nil {
		return err
	}

	return s.notifier().SendPasswordReset(ctx, u, tok, exp)
}

// ResetPassword sets a new password using a reset token. The token is spent
// by the same conditional update that writes the password, so it works once
// even if two resets race.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	l := slogx.FromContext(ctx)

	if token == "" || newPassword == "" {
		return invalid("Reset token and new password required")
	}

	u, err := s.Tokens.VerifyReset(ctx, token)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.Store.Users().ConsumeResetToken(ctx, u.ID, cryptox.FingerprintToken(token), hash, s.Tokens.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		return err
	}

	l.Info("password reset", "user_id", u.ID)
	return nil
}

func (s *AccountService) notifier() ResetNotifier {
	if s.Notifier != nil {
		return s.Notifier
	}
	return LogResetNotifier{}
}
