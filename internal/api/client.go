// Package api is the typed client for the remote REST backend. Every
// backend operation gets one method; callers receive decoded records or
// an *Error carrying the HTTP status and the server's message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenFunc extracts the bearer token for a request, typically from the
// session stored in the request context. An empty string sends no
// Authorization header.
type TokenFunc func(ctx context.Context) string

// Client issues JSON requests against the backend. It performs no
// retries and configures no timeout; failures surface as errors for the
// caller to turn into a user-facing message.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenFunc sets the bearer token source.
func WithTokenFunc(f TokenFunc) Option {
	return func(c *Client) { c.token = f }
}

// NewClient builds a client for the given API origin. The "/api" prefix
// is appended to every operation path.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		token:   func(context.Context) string { return "" },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Error is a non-2xx backend response. Message carries the optional
// {mensaje} (or {error}) field of the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: unexpected status %d", e.Status)
}

// do issues one request and decodes a 2xx JSON body into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}
	var payload struct {
		Mensaje string `json:"mensaje"`
		ErrMsg  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Mensaje != "" {
			apiErr.Message = payload.Mensaje
		} else {
			apiErr.Message = payload.ErrMsg
		}
	}
	return apiErr
}
