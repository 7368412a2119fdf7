package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lepinkainen/moviequiz/internal/errors"
)

const (
	defaultBaseURL   = "https://translate.google.com/m"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
	resultSelector   = ".result-container"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// GoogleEngine scrapes the Google Translate mobile page.
type GoogleEngine struct {
	baseURL    string
	httpClient HTTPDoer
}

// Option is a functional option for configuring the GoogleEngine.
type Option func(*GoogleEngine)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(e *GoogleEngine) {
		if c != nil {
			e.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL.
func WithBaseURL(base string) Option {
	return func(e *GoogleEngine) {
		if base != "" {
			e.baseURL = base
		}
	}
}

// NewGoogleEngine creates a new GoogleEngine.
func NewGoogleEngine(opts ...Option) *GoogleEngine {
	engine := &GoogleEngine{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Translate implements Engine.
func (e *GoogleEngine) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	endpoint, err := url.Parse(e.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("q", text)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	slog.Debug("Translating", "source", source, "target", target, "chars", len(text))

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch translation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewHTTPStatusError(endpoint.String(), resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse translation page: %w", err)
	}

	result := doc.Find(resultSelector).First()
	if result.Length() == 0 {
		return "", fmt.Errorf("translation page has no %s element", resultSelector)
	}
	return strings.TrimSpace(result.Text()), nil
}
