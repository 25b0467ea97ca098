// ABOUTME: HTTP client for the finflow personal-finance API
// ABOUTME: Credentialed dispatch with cookie jar, CSRF echo, and bearer injection

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jmercadier/finflow/internal/cache"
)

const categoryCacheTTL = 5 * time.Minute

// Client is the API client for the finflow backend. All requests share a
// cookie jar so session cookies set by the backend round-trip, and pass
// through the CSRF and bearer injection transports.
type Client struct {
	baseURL    string
	httpClient *http.Client
	jar        *cookiejar.Jar
	cache      *cache.Cache

	mu    sync.RWMutex
	token string
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		jar:     jar,
		cache:   cache.New(categoryCacheTTL),
	}
	c.httpClient = &http.Client{
		Timeout: 30 * time.Second,
		Jar:     jar,
		Transport: &csrfTransport{
			jar: jar,
			next: &bearerTransport{
				tokens: c,
				next:   http.DefaultTransport,
			},
		},
	}
	return c
}

// Token returns the currently held bearer token, empty when none
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the held bearer token
func (c *Client) ClearToken() {
	c.SetToken("")
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON issues a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

// sendJSON issues a request with a JSON body and decodes the response into out.
// A nil body sends an empty JSON object; the backend expects a JSON payload on
// every POST, including logout.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// do dispatches the request and maps transport and backend errors
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses a backend error body, keeping the message intact
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
		apiErr.Errors = body.Errors
	}

	return apiErr
}
