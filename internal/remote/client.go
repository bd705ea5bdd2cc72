// Package remote is the HTTP client for the JobFlow account service.
// Every failure surfaces as ErrUnavailable so the data manager can fall
// back to the local store without inspecting transport detail.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2"
)

// ErrUnavailable is returned for network failures, timeouts, and non-2xx
// responses.
var ErrUnavailable = errors.New("remote service unavailable")

const (
	// DefaultTimeout bounds every request; it is the only limit on how
	// long a remote call can block the caller.
	DefaultTimeout = 15 * time.Second

	// basePath prefixes every endpoint.
	basePath = "/api/v1"

	// getRetries is the extra attempts made for idempotent GETs.
	getRetries = 2
)

// Client issues authenticated JSON requests against the account service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (useful in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the service at baseURL, authenticating with the
// bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	hc := oauth2.NewClient(context.Background(), src)
	hc.Timeout = DefaultTimeout

	c := &Client{
		baseURL: baseURL,
		http:    hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes a 2xx JSON body into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the diagnostic log.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrUnavailable, method, path, resp.StatusCode, bytes.TrimSpace(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

// get issues an idempotent GET, retrying transient failures with
// exponential backoff before giving up.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), getRetries),
		ctx,
	)
	return backoff.Retry(func() error {
		return c.do(ctx, http.MethodGet, path, nil, out)
	}, bo)
}
