package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// ResetNotifier delivers a password reset token to the account holder.
type ResetNotifier interface {
	SendPasswordReset(ctx context.Context, u domain.User, token string, expires time.Time) error
}

// LogResetNotifier records that a reset was issued. There is no mail
// transport; with ExposeToken set (development only) the token itself is
// written to the log so the flow can be completed by hand.
type LogResetNotifier struct {
	ExposeToken bool
}

func (n LogResetNotifier) SendPasswordReset(ctx context.Context, u domain.User, token string, expires time.Time) error {
	attrs := []any{
		slog.String("user_id", u.ID),
		slog.Time("expires", expires),
	}
	if n.ExposeToken {
		attrs = append(attrs, slog.String("reset_token", token))
	}
	slogx.FromContext(ctx).Info("password reset issued", attrs...)
	return nil
}
