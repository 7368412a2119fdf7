package errors

import (
	stdErrors "errors"
	"fmt"
	"strconv"
)

// statusCategories maps the leading digit of an HTTP status code to a
// human readable description.
var statusCategories = map[string]string{
	"1": "Informational",
	"2": "Success!",
	"3": "Redirect. The requested page has moved somewhere else.",
	"4": "Client error. There’s something wrong with the way the browser asked for the page.",
	"5": "Server error. Something went wrong with the way the server tried to send the page.",
}

// StatusCategory returns the description for the status code's leading digit.
// Unknown leading digits return an empty string.
func StatusCategory(statusCode int) string {
	if statusCode < 0 {
		return ""
	}
	return statusCategories[strconv.Itoa(statusCode)[:1]]
}

// HTTPStatusError is returned when a provider answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	category := e.Category()
	if category == "" {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, category)
}

// Category returns the human readable category of the status code.
func (e *HTTPStatusError) Category() string {
	return StatusCategory(e.StatusCode)
}

// NewHTTPStatusError creates a new HTTPStatusError
func NewHTTPStatusError(url string, statusCode int) *HTTPStatusError {
	return &HTTPStatusError{URL: url, StatusCode: statusCode}
}

// AsHTTPStatusError extracts an HTTPStatusError from err (even when wrapped).
func AsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if stdErrors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsHTTPStatusError reports whether err is an HTTPStatusError (even when wrapped).
func IsHTTPStatusError(err error) bool {
	_, ok := AsHTTPStatusError(err)
	return ok
}
