// ABOUTME: Authentication endpoints of the finflow API
// ABOUTME: CSRF bootstrap, register, login, logout, and who-am-I calls

package client

import (
	"context"
	"fmt"
	"net/http"
)

// User is the authenticated account as returned by the backend
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the envelope returned by the register and login endpoints.
// Depending on the endpoint the backend puts the bearer token in either
// access_token or token; BearerToken resolves that ambiguity.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	User        *User  `json:"user"`
	Message     string `json:"message"`
}

// BearerToken returns the usable token from the response, checking the
// accepted field names in priority order: access_token, then token.
// Empty means the backend sent a success without a credential.
func (r *AuthResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// RegisterInput is the create-account payload
type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetCsrfCookie asks the backend to set the CSRF cookie. The response body is
// drained so the Set-Cookie effect has landed in the jar before any dependent
// call is dispatched. Must complete before login, register, or logout.
func (c *Client) GetCsrfCookie(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+csrfBootstrapPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("CSRF bootstrap failed: %w", err)
	}
	return nil
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the auth envelope
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the server-side session
func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/logout", nil, nil)
}

// Me returns the user the backend associates with the current credential.
// Used for startup revalidation and user refresh.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
