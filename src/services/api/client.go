// Package api talks to the CampusAI backend over HTTP/JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"campusai/src/models"
)

// Backend endpoints.
const (
	PathAsk         = "/ask"
	PathScholarship = "/recommend_scholarship"
	PathAnalytics   = "/analytics"
	PathLogin       = "/login"
	PathSignup      = "/signup"
	PathLogout      = "/logout"
)

// Client is a CampusAI backend client. It keeps the session cookie in a
// jar so the admin-only analytics endpoint works after Login.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a client for baseURL with the given per-request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base: base,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			// /login and /logout answer browsers with redirects; the
			// client only cares about the first response and its cookies.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Ask sends one chat message. The caller is responsible for the category tag.
func (c *Client) Ask(ctx context.Context, message string) (*models.AskResponse, error) {
	var out models.AskResponse
	if err := c.do(ctx, http.MethodPost, PathAsk, models.AskRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendScholarship posts the profile verbatim and returns the evaluation.
func (c *Client) RecommendScholarship(ctx context.Context, profile models.ScholarshipProfile) (*models.ScholarshipResponse, error) {
	var out models.ScholarshipResponse
	if err := c.do(ctx, http.MethodPost, PathScholarship, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analytics fetches the current aggregate counters.
func (c *Client) Analytics(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var out models.AnalyticsSnapshot
	if err := c.do(ctx, http.MethodGet, PathAnalytics, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one JSON request. A nil body sends no payload; a nil out
// discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", path, err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: reading response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(path, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", path, err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + path
}

// newAPIError extracts the backend's message from either error shape it
// uses: {"status":"error","message":...} or {"error":...}.
func newAPIError(path string, status int, body []byte) *models.APIError {
	var errorResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	apiErr := &models.APIError{Endpoint: path, StatusCode: status}
	if err := json.Unmarshal(body, &errorResp); err == nil {
		apiErr.Message = errorResp.Message
		if apiErr.Message == "" {
			apiErr.Message = errorResp.Error
		}
	}
	if apiErr.Message == "" && status != http.StatusFound && len(body) > 0 && len(body) < 200 {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
