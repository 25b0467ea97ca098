// ABOUTME: Error types for finflow API responses
// ABOUTME: Preserves backend-supplied messages so callers can display them verbatim

package client

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the backend. Message carries the
// backend-supplied text (e.g. "Invalid credentials") unmodified.
type APIError struct {
	StatusCode int
	Message    string
	// Errors holds Laravel-style per-field validation messages, if any
	Errors map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// AsAPIError unwraps err as an *APIError if one is in the chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
