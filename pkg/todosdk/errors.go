package todosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNilInput is returned when a required input struct is nil.
	ErrNilInput = errors.New("todosdk: nil input provided")

	// ErrUnauthorized matches any response with status 401, including failed
	// logins and admin operations attempted without elevation.
	ErrUnauthorized = errors.New("todosdk: invalid credentials")

	// ErrNotFound matches any response with status 404.
	ErrNotFound = errors.New("todosdk: resource not found")

	// ErrNoCookieReturned is returned when a login succeeds but the response
	// carries no session cookie.
	ErrNoCookieReturned = errors.New("todosdk: no cookie returned from login request")
)

// APIError represents an error response from the todo service.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Code is the service's machine-readable error code, when present.
	Code int `json:"code"`

	// Message is the service's human-readable error description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("todosdk: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("todosdk: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps well-known status codes onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// ValidationError reports client-side input validation failures, keyed by
// field name. It is returned before any request is made.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	sort.Strings(parts)
	return "todosdk: invalid input: " + strings.Join(parts, "; ")
}

// validationError wraps a non-nil field map in a ValidationError.
func validationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// parseErrorResponse converts a non-2xx HTTP response body into a typed
// *APIError. The service emits {"message": ..., "code": ...} bodies; anything
// unparseable falls back to the bare status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if len(body) > 0 {
		// Best effort; the zero value already describes the status code.
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}
