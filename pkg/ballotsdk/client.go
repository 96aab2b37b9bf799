package ballotsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints and opens Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns a Session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/auth/register", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return c.NewSession(out.Token, out.User), nil
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/auth/login", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(out.Token, out.User), nil
}

// ForgotPassword asks the service to issue a reset token for email. The
// token is delivered out of band.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.call(ctx, http.MethodPost, "/auth/forgot-password", "",
		ForgotPasswordRequest{Email: email}, nil, http.StatusOK)
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.call(ctx, http.MethodPost, "/auth/reset-password", "",
		ResetPasswordRequest{ResetToken: resetToken, NewPassword: newPassword}, nil, http.StatusOK)
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
