// Package client is a small Go client for the go-shield HTTP API.
//
// A Client wraps a resty HTTP client, remembers the bearer token issued at
// registration or login, and translates problem+json error responses into
// typed errors that callers can match with errors.Is and errors.As.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dsemenov/go-shield/models"
	"github.com/go-resty/resty/v2"
)

// Client talks to a single go-shield server. It is safe for use from a single
// goroutine; concurrent use requires external synchronisation because the
// bearer token is mutated by Register and Login.
type Client struct {
	http  *resty.Client
	token string
}

// New constructs a Client for the server at baseURL. A scheme-less address is
// treated as http. Returns an error if baseURL is empty or unparsable.
func New(baseURL string, requestTimeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(normalized).
		SetTimeout(requestTimeout)

	return &Client{http: httpClient}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	return req
}

// Register creates a new account. On success the issued bearer token is
// stored on the client for subsequent authenticated calls.
func (c *Client) Register(ctx context.Context, registration models.RegisterRequest) (models.TokenResponse, error) {
	var issued models.TokenResponse

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		SetResult(&issued).
		Post("/api/v1/auth/register")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	c.SetToken(issued.AccessToken)
	return issued, nil
}

// Login exchanges credentials for a bearer token. On success the token is
// stored on the client for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, credentials models.LoginRequest) (models.TokenResponse, error) {
	var issued models.TokenResponse

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&issued).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	c.SetToken(issued.AccessToken)
	return issued, nil
}

// Logout tells the server to end the session and drops the stored token.
// The token is dropped even if the request fails.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.request(ctx).Post("/api/v1/auth/logout")
	c.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Health reports whether the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}
