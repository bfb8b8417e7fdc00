// Package gateway provides the HTTP client for the TecniGestión REST
// API. Every read and write goes through it: it attaches the bearer
// token, normalizes error responses, and evicts the local session when
// the server rejects the token.
package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrSessionExpired is returned when the server rejects a stored token
// with a 401. By the time the caller sees it, the persisted session has
// already been cleared. A 401 on an unauthenticated request (a failed
// login) is reported as a regular API error instead.
var ErrSessionExpired = errors.New("session expired: run 'tg login' to authenticate again")

// SessionClearer evicts locally persisted session state. It is called
// centrally on authorization failure, regardless of which request
// triggered it.
type SessionClearer interface {
	Clear() error
}

// Client is an HTTP client for the TecniGestión API.
type Client struct {
	baseURL    string
	token      string
	sessions   SessionClearer
	httpClient *http.Client
}

// New creates a new API client. sessions may be nil for unauthenticated
// use; the token is attached to every request when non-empty.
func New(baseURL, token string, sessions SessionClearer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		sessions:   sessions,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Error is a non-success API response with the server's message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	return c.send("POST", path, body, result)
}

// put performs a PUT request with a JSON body and decodes the response.
func (c *Client) put(path string, body interface{}, result interface{}) error {
	return c.send("PUT", path, body, result)
}

// patch performs a PATCH request. body may be nil for query-only calls.
func (c *Client) patch(path string, body interface{}, result interface{}) error {
	return c.send("PATCH", path, body, result)
}

// del performs a DELETE request.
func (c *Client) del(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) send(method, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	return c.do(req, result)
}

// do executes an HTTP request with auth headers and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	slog.Debug("api request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && c.token != "" {
		if c.sessions != nil {
			if cerr := c.sessions.Clear(); cerr != nil {
				slog.Warn("clearing session", "error", cerr)
			}
		}
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(respBody, resp.StatusCode)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the server's detail message from an error body,
// falling back to the HTTP status text.
func errorMessage(body []byte, status int) string {
	var errResp struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return fmt.Sprintf("server error: %s", http.StatusText(status))
}
