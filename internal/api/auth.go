package api

import (
	"context"
	"net/http"

	"github.com/plusgraphics/backoffice/internal/models"
)

// LoginResult is the auth/login response.
type LoginResult struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	ErrMsg  string       `json:"error,omitempty"`
}

// Login exchanges credentials for a user record and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyToken checks whether the current bearer token is still accepted.
func (c *Client) VerifyToken(ctx context.Context) (bool, error) {
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// ListUsers returns all back-office users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/usuarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
