package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("slow down")

	if err.Error() != "slow down" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "slow down")
	}

	if !IsRateLimitError(err) {
		t.Fatalf("IsRateLimitError returned false for RateLimitError")
	}

	wrapped := stdErrors.Join(err)
	if !IsRateLimitError(wrapped) {
		t.Fatalf("IsRateLimitError returned false for wrapped RateLimitError")
	}
}

func TestStopProcessingError(t *testing.T) {
	err := NewStopProcessingError("user stopped")

	if err.Error() != "user stopped" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "user stopped")
	}

	if !IsStopProcessingError(err) {
		t.Fatalf("IsStopProcessingError returned false for StopProcessingError")
	}

	wrapped := stdErrors.Join(err)
	if !IsStopProcessingError(wrapped) {
		t.Fatalf("IsStopProcessingError returned false for wrapped StopProcessingError")
	}
}

func TestRateLimitErrorWithRetry(t *testing.T) {
	err := NewRateLimitErrorWithRetry("too many requests", 2*time.Minute)

	expected := "too many requests (retry after 2m0s)"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsRateLimitError(err) {
		t.Fatalf("IsRateLimitError returned false for RateLimitErrorWithRetry")
	}

	if err.RetryAfter.Minutes() != 2.0 {
		t.Fatalf("RetryAfter = %v, want 2 minutes", err.RetryAfter)
	}
}

func TestRateLimitErrorWithRetry_ZeroDuration(t *testing.T) {
	err := NewRateLimitErrorWithRetry("rate limited", 0)

	// When RetryAfter is 0, the implementation only adds retry info if > 0
	expected := "rate limited"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if err.RetryAfter != 0 {
		t.Fatalf("RetryAfter = %v, want 0", err.RetryAfter)
	}
}

func TestRateLimitErrorWithRetry_VariousDurations(t *testing.T) {
	tests := []struct {
		name            string
		duration        time.Duration
		expectedMessage string
	}{
		{
			name:            "1 second",
			duration:        1 * time.Second,
			expectedMessage: "rate limited (retry after 1s)",
		},
		{
			name:            "30 seconds",
			duration:        30 * time.Second,
			expectedMessage: "rate limited (retry after 30s)",
		},
		{
			name:            "1 hour",
			duration:        1 * time.Hour,
			expectedMessage: "rate limited (retry after 1h0m0s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRateLimitErrorWithRetry("rate limited", tt.duration)
			if err.Error() != tt.expectedMessage {
				t.Fatalf("Error message = %q, want %q", err.Error(), tt.expectedMessage)
			}
		})
	}
}

func TestStatusCategory(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{101, "Informational"},
		{204, "Success!"},
		{301, "Redirect. The requested page has moved somewhere else."},
		{438, "Client error. There’s something wrong with the way the browser asked for the page."},
		{503, "Server error. Something went wrong with the way the server tried to send the page."},
		{999, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.code), func(t *testing.T) {
			if got := StatusCategory(tt.code); got != tt.expected {
				t.Fatalf("StatusCategory(%d) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestHTTPStatusError(t *testing.T) {
	err := NewHTTPStatusError("https://example.test/?i=tt1", 429)

	expected := "HTTP 429: Client error. There’s something wrong with the way the browser asked for the page."
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	wrapped := fmt.Errorf("fetch tt1: %w", err)
	got, ok := AsHTTPStatusError(wrapped)
	if !ok {
		t.Fatalf("AsHTTPStatusError returned false for wrapped HTTPStatusError")
	}
	if got.StatusCode != 429 {
		t.Fatalf("StatusCode = %d, want 429", got.StatusCode)
	}
	if !IsHTTPStatusError(wrapped) {
		t.Fatalf("IsHTTPStatusError returned false for wrapped HTTPStatusError")
	}
}

func TestHTTPStatusError_UnknownCategory(t *testing.T) {
	err := NewHTTPStatusError("", 999)

	if err.Error() != "unexpected HTTP status 999" {
		t.Fatalf("Error message = %q", err.Error())
	}
	if IsHTTPStatusError(stdErrors.New("plain")) {
		t.Fatalf("IsHTTPStatusError returned true for plain error")
	}
}

func TestAsRateLimitError(t *testing.T) {
	wrapped := fmt.Errorf("search failed: %w", NewRateLimitErrorWithRetry("quota", 30*time.Second))

	rateErr, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatalf("AsRateLimitError returned false for wrapped RateLimitError")
	}
	if rateErr.RetryAfter != 30*time.Second {
		t.Fatalf("RetryAfter = %v, want 30s", rateErr.RetryAfter)
	}

	if _, ok := AsRateLimitError(fmt.Errorf("plain")); ok {
		t.Fatalf("AsRateLimitError returned true for a plain error")
	}
}
