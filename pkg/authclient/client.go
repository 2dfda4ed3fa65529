// Package authclient is a small Go client for the session endpoints. It keeps the
// session cookie in a cookie jar so subsequent calls are authenticated.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// User is the profile returned by login and session checks.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	Plan   string `json:"plan,omitempty"`
	Status string `json:"status,omitempty"`
}

// Session is the state reported by GET /api/auth/session.
type Session struct {
	Authenticated   bool   `json:"authenticated"`
	User            *User  `json:"user,omitempty"`
	PendingRedirect string `json:"pending_redirect,omitempty"`
}

// Error is a non-2xx answer from the API.
type Error struct {
	StatusCode int
	Message    string
	Kind       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("authclient: %d %s (%s)", e.StatusCode, e.Message, e.Kind)
}

// Client talks to the auth endpoints of one API base URL, e.g. "http://localhost:8080/api".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client with its own cookie jar.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("authclient: cookie jar: %w", err)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// Login signs in and stores the session cookie. redirectTo may be empty.
func (c *Client) Login(ctx context.Context, email, password, redirectTo string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	if redirectTo != "" {
		body["redirect_to"] = redirectTo
	}

	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Session reports the current session. An anonymous client gets Authenticated=false and no error.
func (c *Client) Session(ctx context.Context) (*Session, error) {
	var out struct {
		Session Session `json:"session"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/session", nil, &out); err != nil {
		return nil, err
	}
	return &out.Session, nil
}

// Logout clears the session. Errors are ignored: the server always clears the cookie
// and a failed call leaves nothing for the caller to recover.
func (c *Client) Logout(ctx context.Context) {
	_ = c.do(ctx, http.MethodDelete, "/auth/session", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("authclient: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("authclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("authclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("authclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error string `json:"error"`
			Kind  string `json:"kind"`
		}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Kind = envelope.Kind
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("authclient: decode response: %w", err)
	}
	return nil
}
