package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
)

// VotesHandler serves the ballot ledger and results.
type VotesHandler struct {
	BallotService  *service.BallotService
	ResultsService *service.ResultsService
}

// HandleCastVote handles POST /vote
//
//	@Summary		Cast vote
//	@Description	Records the caller's ballot. Each user votes at most once per election.
//	@Tags			Votes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.CastVoteRequest	true	"election_id, candidate_id"
//	@Success		201		{object}	ballotsdk.CastVoteResponse	"message, vote_id"
//	@Failure		400		{object}	ballotsdk.ErrorResponse		"missing fields or unknown election or candidate"
//	@Failure		401		{object}	ballotsdk.ErrorResponse		"missing or invalid token, or account deleted"
//	@Failure		409		{object}	ballotsdk.ErrorResponse		"already voted"
//	@Failure		429		{object}	ballotsdk.ErrorResponse		"rate limited"
//	@Failure		500		{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/vote [post]
func (h *VotesHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.CastVoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Failed to record vote")
		return
	}

	voterID := httpx.UserIDFromContext(r.Context())
	id, err := h.BallotService.CastVote(r.Context(), voterID, req.ElectionID, req.CandidateID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to record vote")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, ballotsdk.CastVoteResponse{
		Message: "Your vote was recorded",
		VoteID:  id,
	})
}

// HandleListVotes handles GET /all-votes
//
//	@Summary		List all votes
//	@Tags			Votes
//	@Produce		json
//	@Success		200	{array}		ballotsdk.Vote
//	@Failure		401	{object}	ballotsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500	{object}	ballotsdk.ErrorResponse	"internal error"
//	@Security		BearerAuth
//	@Router			/all-votes [get]
func (h *VotesHandler) HandleListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.BallotService.ListVotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list votes")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(votes, toVote))
}

// HandleResults handles GET /results/{electionId}
//
//	@Summary		Election results
//	@Description	Every candidate with their total, most votes first, ties in candidate creation order. Computed on each request.
//	@Tags			Votes
//	@Produce		json
//	@Param			electionId	path		string						true	"Election ID"
//	@Success		200			{object}	ballotsdk.ResultsResponse	"election_id, results"
//	@Failure		401			{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		500			{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/results/{electionId} [get]
func (h *VotesHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("electionId")

	rows, err := h.ResultsService.Results(r.Context(), electionID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to compute results")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ballotsdk.ResultsResponse{
		ElectionID: electionID,
		Results: mapSlice(rows, func(t domain.Tally) ballotsdk.ResultRow {
			return ballotsdk.ResultRow{
				CandidateID:   t.CandidateID,
				CandidateName: t.CandidateName,
				TotalVotes:    t.TotalVotes,
			}
		}),
	})
}
