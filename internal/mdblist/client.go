// Package mdblist fetches movie metadata documents from the MDBList API on
// RapidAPI or from recorded fixture files.
package mdblist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lepinkainen/moviequiz/internal/errors"
)

const (
	defaultBaseURL = "https://mdblist.p.rapidapi.com/"
	defaultHost    = "mdblist.p.rapidapi.com"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an MDBList API client. It makes exactly one request per call.
type Client struct {
	apiKey     string
	baseURL    string
	host       string
	httpClient HTTPDoer
}

// NewClient creates a new MDBList API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		host:       defaultHost,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = base
		}
	}
}

// WithHost sets the x-rapidapi-host header value.
func WithHost(host string) Option {
	return func(client *Client) {
		if host != "" {
			client.host = host
		}
	}
}

// Fetch returns the raw response body for the movie with the given IMDb
// identifier. A non-2xx answer returns an *errors.HTTPStatusError.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("i", id)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	slog.Debug("Fetching MDBList details", "imdb_id", id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewHTTPStatusError(endpoint.String(), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
