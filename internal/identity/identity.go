// Package identity verifies Supabase bearer tokens by introspecting them
// against the project's auth endpoint.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNoIdentity is returned whenever a token cannot be resolved to a user:
// missing token, a non-success response from Supabase, or a network failure.
// Callers must treat it as unauthenticated before touching any other resource.
var ErrNoIdentity = errors.New("no identity")

// User is the subset of the Supabase user record the backend needs.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier resolves a bearer token to a user identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// Client calls the Supabase auth API with the project anon key.
type Client struct {
	authURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient builds a Client for the given project URL and anon key.
func NewClient(projectURL, anonKey string) *Client {
	return &Client{
		authURL: strings.TrimRight(projectURL, "/") + "/auth/v1",
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify resolves token via GET /auth/v1/user. No retry, no caching;
// token expiry is whatever Supabase enforces.
func (c *Client) Verify(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNoIdentity
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.authURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoIdentity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: auth responded %d", ErrNoIdentity, resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if user.ID == "" {
		return nil, ErrNoIdentity
	}
	return &user, nil
}
