package api

import (
	"context"
	"fmt"
	"net/http"

	"campusai/src/models"
)

// Login authenticates against the backend and keeps the session cookie.
// The backend rejects a login whose role does not match the account.
func (c *Client) Login(ctx context.Context, username, password, role string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Username: username, Password: password, Role: role}
	if err := c.do(ctx, http.MethodPost, PathLogin, req, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, &models.APIError{Endpoint: PathLogin, StatusCode: http.StatusOK, Message: out.Message}
	}
	c.logger.Info("logged in", "username", username, "role", out.Role)
	return &out, nil
}

// Signup registers a new student account.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	var out models.AuthResponse
	req := models.SignupRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, PathSignup, req, &out); err != nil {
		return err
	}
	if out.Status != "success" {
		return &models.APIError{Endpoint: PathSignup, StatusCode: http.StatusOK, Message: out.Message}
	}
	return nil
}

// Logout ends the backend session. The local cookies are dropped even if
// the request fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.clearCookies()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(PathLogout), nil)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", PathLogout, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", PathLogout, err)
	}
	defer resp.Body.Close()

	// The backend answers with a redirect to the login page.
	if resp.StatusCode >= 400 {
		return &models.APIError{Endpoint: PathLogout, StatusCode: resp.StatusCode}
	}
	return nil
}

// Cookies returns the cookies the jar holds for the backend.
func (c *Client) Cookies() []*http.Cookie {
	return c.http.Jar.Cookies(c.base)
}

// SetCookies restores previously saved cookies for the backend.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.http.Jar.SetCookies(c.base, cookies)
}

func (c *Client) clearCookies() {
	current := c.Cookies()
	expired := make([]*http.Cookie, 0, len(current))
	for _, ck := range current {
		expired = append(expired, &http.Cookie{Name: ck.Name, Value: "", Path: "/", MaxAge: -1})
	}
	if len(expired) > 0 {
		c.http.Jar.SetCookies(c.base, expired)
	}
}
