package service

import "errors"

// Errors returned by the services. Handlers map them to status codes with
// errors.Is; storage errors never cross this boundary unwrapped.
var (
	ErrValidation = errors.New("validation failed")

	ErrEmailTaken            = errors.New("email already registered")
	ErrAdminSelfRegistration = errors.New("admin registration is not allowed")
	ErrUserNotFound          = errors.New("user not found")
	ErrNoPassword            = errors.New("user has no password (legacy account)")
	ErrBadCredentials        = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	ErrElectionNotFound  = errors.New("election not found")
	ErrCandidateNotFound = errors.New("candidate not found")

	ErrVoterNotFound              = errors.New("voter account not found")
	ErrAlreadyVoted               = errors.New("already voted in this election")
	ErrInvalidElectionOrCandidate = errors.New("invalid election or candidate")
)

// validationError carries a client-facing message and matches ErrValidation.
type validationError struct {
	msg string
}

func (e *validationError) Error() string        { return e.msg }
func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &validationError{msg: msg} }
