package imdbapi

import (
	"log/slog"
	"sync/atomic"
)

var rateLimitReached atomic.Bool

// MarkRateLimitReached marks the imdb-api quota as used up.
// It logs a warning on the first call and subsequent calls are no-ops.
func MarkRateLimitReached() {
	if rateLimitReached.CompareAndSwap(false, true) {
		slog.Warn("imdb-api rate limit reached; skipping further requests for this run")
	}
}

// RequestsAllowed returns true if imdb-api requests are still allowed.
func RequestsAllowed() bool {
	return !rateLimitReached.Load()
}

// ResetRateLimit resets the rate limit flag. Useful for testing.
func ResetRateLimit() {
	rateLimitReached.Store(false)
}
