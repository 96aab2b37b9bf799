package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string // argon2 encoded, empty for legacy accounts

	// ResetToken is the fingerprint of the most recently issued password
	// reset token, never the token itself. Empty when no reset is pending.
	ResetToken        string
	ResetTokenExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u User) HasPassword() bool { return u.PasswordHash != "" }
