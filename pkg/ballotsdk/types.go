package ballotsdk

import "time"

// ============================================================================
// Requests
// ============================================================================

// Missing fields are reported by the service with a combined message, so
// the tags below only check the shape of values that are present.

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"omitempty,min=6,max=128"`
	// Role is "voter" (default) or "admin".
	Role string `json:"role,omitempty" validate:"omitempty,oneof=voter admin"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"max=254"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"max=4096"`
	NewPassword string `json:"newPassword" validate:"omitempty,min=6,max=128"`
}

// CreateElectionRequest is the body of POST /elections/create. Dates are
// stored as given.
type CreateElectionRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	StartDate   string `json:"start_date,omitempty" validate:"max=64"`
	EndDate     string `json:"end_date,omitempty" validate:"max=64"`
}

// AddCandidateRequest is the body of POST /candidates/add.
type AddCandidateRequest struct {
	ElectionID string `json:"election_id" validate:"max=64"`
	Name       string `json:"name" validate:"max=200"`
}

// CastVoteRequest is the body of POST /vote.
type CastVoteRequest struct {
	ElectionID  string `json:"election_id" validate:"max=64"`
	CandidateID string `json:"candidate_id" validate:"max=64"`
}

// UserIDRequest is the body of POST /make-admin and POST /make-voter.
type UserIDRequest struct {
	ID string `json:"id" validate:"max=64"`
}

// ============================================================================
// Responses
// ============================================================================

// ErrorResponse is the body of every non-success response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation that returns no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// User is the public view of an account. Password and reset state are
// never sent.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type Election struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Candidate struct {
	ID         string    `json:"id"`
	ElectionID string    `json:"election_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	ElectionID  string    `json:"election_id"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatedResponse is returned when an election or candidate is created.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// CastVoteResponse is returned by POST /vote.
type CastVoteResponse struct {
	Message string `json:"message"`
	VoteID  string `json:"vote_id"`
}

// ResultRow is one candidate's total.
type ResultRow struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	TotalVotes    int64  `json:"total_votes"`
}

// ResultsResponse lists every candidate of an election, most votes first.
type ResultsResponse struct {
	ElectionID string      `json:"election_id"`
	Results    []ResultRow `json:"results"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
