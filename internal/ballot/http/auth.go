package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
)

// AuthHandler serves registration, sign in and password reset.
type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister handles POST /auth/register
//
//	@Summary		Register
//	@Description	Creates an account and signs it in. Role defaults to voter; admin is only accepted while no users exist or when admin signup is enabled.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.RegisterRequest	true	"name, email, password, role"
//	@Success		201		{object}	ballotsdk.AuthResponse		"message, token, user"
//	@Failure		400		{object}	ballotsdk.ErrorResponse		"missing or malformed fields"
//	@Failure		403		{object}	ballotsdk.ErrorResponse		"admin self-registration refused"
//	@Failure		409		{object}	ballotsdk.ErrorResponse		"email already registered"
//	@Failure		429		{object}	ballotsdk.ErrorResponse		"rate limited"
//	@Failure		500		{object}	ballotsdk.ErrorResponse		"internal error"
//	@Router			/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Registration failed")
		return
	}

	sess, err := h.AccountService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err, "Registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authResponse("registered", sess))
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	ballotsdk.AuthResponse	"message, token, user"
//	@Failure		400		{object}	ballotsdk.ErrorResponse	"missing fields or legacy account without password"
//	@Failure		401		{object}	ballotsdk.ErrorResponse	"invalid credentials"
//	@Failure		404		{object}	ballotsdk.ErrorResponse	"user not found"
//	@Failure		429		{object}	ballotsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	ballotsdk.ErrorResponse	"internal error"
//	@Router			/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Login failed")
		return
	}

	sess, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Login failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse("Login ok", sess))
}

// HandleForgotPassword handles POST /auth/forgot-password
//
//	@Summary		Request a password reset
//	@Description	Issues a single-use reset token and hands it to the configured notifier. Unknown emails get 404.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	ballotsdk.MessageResponse		"message"
//	@Failure		400		{object}	ballotsdk.ErrorResponse			"email missing"
//	@Failure		404		{object}	ballotsdk.ErrorResponse			"email not found"
//	@Failure		429		{object}	ballotsdk.ErrorResponse			"rate limited"
//	@Failure		500		{object}	ballotsdk.ErrorResponse			"internal error"
//	@Router			/auth/forgot-password [post]
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Password reset failed")
		return
	}

	err := h.AccountService.ForgotPassword(r.Context(), req.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		httpx.WriteError(w, http.StatusNotFound, msgEmailNotFound)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Password reset failed")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Password reset instructions sent")
}

// HandleResetPassword handles POST /auth/reset-password
//
//	@Summary		Reset password
//	@Description	Sets a new password using a reset token. The token works once and is retired by any newer reset request.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ballotsdk.ResetPasswordRequest	true	"resetToken, newPassword"
//	@Success		200		{object}	ballotsdk.MessageResponse		"message"
//	@Failure		400		{object}	ballotsdk.ErrorResponse			"missing fields or invalid, expired or spent token"
//	@Failure		429		{object}	ballotsdk.ErrorResponse			"rate limited"
//	@Failure		500		{object}	ballotsdk.ErrorResponse			"internal error"
//	@Router			/auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ballotsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Password reset failed")
		return
	}

	if err := h.AccountService.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		writeServiceError(w, r, err, "Password reset failed")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Password reset successful")
}

func authResponse(msg string, sess service.Session) ballotsdk.AuthResponse {
	return ballotsdk.AuthResponse{
		Message:   msg,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      toUser(sess.User),
	}
}
