package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
)

// ElectionsHandler serves elections and their candidates.
type ElectionsHandler struct {
	RegistryService *service.RegistryService
}

// HandleListElections handles GET /elections
//
//	@Summary		List elections
//	@Tags			Elections
//	@Produce		json
//	@Success		200	{array}		ballotsdk.Election
//	@Failure		401	{object}	ballotsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500	{object}	ballotsdk.ErrorResponse	"internal error"
//	@Security		BearerAuth
//	@Router			/elections [get]
func (h *ElectionsHandler) HandleListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.RegistryService.ListElections(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list elections")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(elections, toElection))
}

// HandleCreateElection handles POST /elections/create
//
//	@Summary		Create election
//	@Description	Dates are optional and stored as given.
//	@Tags			Elections
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.CreateElectionRequest	true	"title, description, start_date, end_date"
//	@Success		201		{object}	ballotsdk.CreatedResponse		"message, id"
//	@Failure		400		{object}	ballotsdk.ErrorResponse			"title missing"
//	@Failure		401		{object}	ballotsdk.ErrorResponse			"missing or invalid token"
//	@Failure		403		{object}	ballotsdk.ErrorResponse			"admin role required"
//	@Failure		500		{object}	ballotsdk.ErrorResponse			"internal error"
//	@Security		BearerAuth
//	@Router			/elections/create [post]
func (h *ElectionsHandler) HandleCreateElection(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.CreateElectionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Failed to create election")
		return
	}

	e, err := h.RegistryService.CreateElection(r.Context(), service.ElectionInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to create election")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, ballotsdk.CreatedResponse{Message: "Election created", ID: e.ID})
}

// HandleDeleteElection handles DELETE /election/{id}
//
//	@Summary		Delete election
//	@Description	Removes the election together with its candidates and every vote cast in it.
//	@Tags			Elections
//	@Produce		json
//	@Param			id	path		string						true	"Election ID"
//	@Success		200	{object}	ballotsdk.MessageResponse	"message"
//	@Failure		401	{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		403	{object}	ballotsdk.ErrorResponse		"admin role required"
//	@Failure		404	{object}	ballotsdk.ErrorResponse		"election not found"
//	@Failure		500	{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/election/{id} [delete]
func (h *ElectionsHandler) HandleDeleteElection(w http.ResponseWriter, r *http.Request) {
	if err := h.RegistryService.DeleteElection(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete election")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Election deleted")
}

// HandleListCandidates handles GET /candidates/{electionId}
//
//	@Summary		List candidates
//	@Description	An unknown election has no candidates.
//	@Tags			Candidates
//	@Produce		json
//	@Param			electionId	path		string	true	"Election ID"
//	@Success		200			{array}		ballotsdk.Candidate
//	@Failure		401			{object}	ballotsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500			{object}	ballotsdk.ErrorResponse	"internal error"
//	@Security		BearerAuth
//	@Router			/candidates/{electionId} [get]
func (h *ElectionsHandler) HandleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.RegistryService.ListCandidates(r.Context(), r.PathValue("electionId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list candidates")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(candidates, toCandidate))
}

// HandleAddCandidate handles POST /candidates/add
//
//	@Summary		Add candidate
//	@Tags			Candidates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.AddCandidateRequest	true	"election_id, name"
//	@Success		201		{object}	ballotsdk.CreatedResponse		"message, id"
//	@Failure		400		{object}	ballotsdk.ErrorResponse			"missing fields"
//	@Failure		401		{object}	ballotsdk.ErrorResponse			"missing or invalid token"
//	@Failure		403		{object}	ballotsdk.ErrorResponse			"admin role required"
//	@Failure		404		{object}	ballotsdk.ErrorResponse			"election not found"
//	@Failure		500		{object}	ballotsdk.ErrorResponse			"internal error"
//	@Security		BearerAuth
//	@Router			/candidates/add [post]
func (h *ElectionsHandler) HandleAddCandidate(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.AddCandidateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Failed to add candidate")
		return
	}

	c, err := h.RegistryService.AddCandidate(r.Context(), req.ElectionID, req.Name)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add candidate")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, ballotsdk.CreatedResponse{Message: "Candidate added", ID: c.ID})
}

// HandleDeleteCandidate handles DELETE /candidate/{id}
//
//	@Summary		Delete candidate
//	@Description	Removes the candidate and the votes cast for them.
//	@Tags			Candidates
//	@Produce		json
//	@Param			id	path		string						true	"Candidate ID"
//	@Success		200	{object}	ballotsdk.MessageResponse	"message"
//	@Failure		401	{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		403	{object}	ballotsdk.ErrorResponse		"admin role required"
//	@Failure		404	{object}	ballotsdk.ErrorResponse		"candidate not found"
//	@Failure		500	{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/candidate/{id} [delete]
func (h *ElectionsHandler) HandleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.RegistryService.DeleteCandidate(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete candidate")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Candidate deleted")
}
