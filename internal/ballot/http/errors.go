package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// Client-facing messages for service errors.
const (
	msgEmailTaken        = "Email already registered"
	msgAdminSignup       = "Admin registration is not allowed"
	msgUserNotFound      = "User not found"
	msgEmailNotFound     = "Email not found"
	msgNoPassword        = "User has no password (legacy account)"
	msgBadCredentials    = "Invalid credentials"
	msgInvalidReset      = "Invalid or expired reset token"
	msgElectionNotFound  = "Election not found"
	msgCandidateNotFound = "Candidate not found"
	msgVoterGone         = "Account no longer exists"
	msgAlreadyVoted      = "You have already voted in this election"
	msgInvalidBallot     = "Invalid election or candidate"
)

// writeServiceError answers with the status and message for a known service
// error. Anything else is logged and answered with a generic 500 carrying
// fallback, so driver text never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *httpx.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, msgEmailTaken)
	case errors.Is(err, service.ErrAlreadyVoted):
		httpx.WriteError(w, http.StatusConflict, msgAlreadyVoted)
	case errors.Is(err, service.ErrAdminSelfRegistration):
		httpx.WriteError(w, http.StatusForbidden, msgAdminSignup)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrNoPassword):
		httpx.WriteError(w, http.StatusBadRequest, msgNoPassword)
	case errors.Is(err, service.ErrVoterNotFound):
		httpx.WriteError(w, http.StatusUnauthorized, msgVoterGone)
	case errors.Is(err, service.ErrBadCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, msgBadCredentials)
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidReset)
	case errors.Is(err, service.ErrElectionNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgElectionNotFound)
	case errors.Is(err, service.ErrCandidateNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgCandidateNotFound)
	case errors.Is(err, service.ErrInvalidElectionOrCandidate):
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidBallot)
	default:
		slogx.FromContext(r.Context()).Error(fallback, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
