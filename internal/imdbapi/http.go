package imdbapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/moviequiz/internal/errors"
)

func (c *Client) getJSON(ctx context.Context, endpoint string, target apiResponse) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.NewRateLimitErrorWithRetry("imdb-api rate limit reached", retryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewHTTPStatusError(c.redact(endpoint), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if msg := strings.TrimSpace(target.apiError()); msg != "" {
		if isUsageLimit(msg) {
			return errors.NewRateLimitError("imdb-api: " + msg)
		}
		return fmt.Errorf("imdb-api: %s", msg)
	}
	return nil
}

// isUsageLimit matches messages like "Maximum usage (100 per day) for this
// API Key has been reached".
func isUsageLimit(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "maximum usage") || strings.Contains(lower, "limit")
}

func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// redact keeps the API key out of error messages and logs.
func (c *Client) redact(endpoint string) string {
	if c.apiKey == "" {
		return endpoint
	}
	return strings.ReplaceAll(endpoint, c.apiKey, "***")
}
