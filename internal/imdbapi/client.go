// Package imdbapi provides a client for the imdb-api.com title search and
// streaming availability endpoints.
package imdbapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/moviequiz/internal/ratelimit"
)

const (
	defaultBaseURL       = "https://imdb-api.com"
	defaultRatePerSecond = 2
	// PrimeAvailability is the online_availability filter for Amazon Prime
	// Video subscriptions in Germany.
	PrimeAvailability = "DE/today/Amazon/subs"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an imdb-api.com client.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
	useCache    bool
}

// NewClient creates a new imdb-api.com client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: ratelimit.New("imdb-api", defaultRatePerSecond),
		useCache:    true,
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
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// WithCache enables or disables the SQLite response cache.
func WithCache(enabled bool) Option {
	return func(client *Client) {
		client.useCache = enabled
	}
}
