package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
)

// UsersHandler serves account administration.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleListUsers handles GET /users
//
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		ballotsdk.User
//	@Failure		401	{object}	ballotsdk.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	ballotsdk.ErrorResponse	"admin role required"
//	@Failure		500	{object}	ballotsdk.ErrorResponse	"internal error"
//	@Security		BearerAuth
//	@Router			/users [get]
func (h *UsersHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(users, toUser))
}

// HandleDeleteUser handles DELETE /user/{id}
//
//	@Summary		Delete user
//	@Description	Removes the account and every vote it cast.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{object}	ballotsdk.MessageResponse	"message"
//	@Failure		401	{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		403	{object}	ballotsdk.ErrorResponse		"admin role required"
//	@Failure		404	{object}	ballotsdk.ErrorResponse		"user not found"
//	@Failure		500	{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/user/{id} [delete]
func (h *UsersHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete user")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "User deleted")
}

// HandleMakeAdmin handles POST /make-admin
//
//	@Summary		Promote user
//	@Description	Grants the admin role. Tokens already issued keep their role until they expire.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.UserIDRequest		true	"id"
//	@Success		200		{object}	ballotsdk.MessageResponse	"message"
//	@Failure		400		{object}	ballotsdk.ErrorResponse		"id missing"
//	@Failure		401		{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		403		{object}	ballotsdk.ErrorResponse		"admin role required"
//	@Failure		404		{object}	ballotsdk.ErrorResponse		"user not found"
//	@Failure		500		{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/make-admin [post]
func (h *UsersHandler) HandleMakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, domain.RoleAdmin, "User promoted to admin")
}

// HandleMakeVoter handles POST /make-voter
//
//	@Summary		Demote user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.UserIDRequest		true	"id"
//	@Success		200		{object}	ballotsdk.MessageResponse	"message"
//	@Failure		400		{object}	ballotsdk.ErrorResponse		"id missing"
//	@Failure		401		{object}	ballotsdk.ErrorResponse		"missing or invalid token"
//	@Failure		403		{object}	ballotsdk.ErrorResponse		"admin role required"
//	@Failure		404		{object}	ballotsdk.ErrorResponse		"user not found"
//	@Failure		500		{object}	ballotsdk.ErrorResponse		"internal error"
//	@Security		BearerAuth
//	@Router			/make-voter [post]
func (h *UsersHandler) HandleMakeVoter(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, domain.RoleVoter, "User demoted to voter")
}

func (h *UsersHandler) setRole(w http.ResponseWriter, r *http.Request, role domain.Role, msg string) {
	var req ballotsdk.UserIDRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Failed to change role")
		return
	}

	if err := h.UserService.SetRole(r.Context(), req.ID, role); err != nil {
		writeServiceError(w, r, err, "Failed to change role")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msg)
}
