package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated means the backend rejected the bearer token. The
	// session has already been cleared; callers route back to login.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound covers stale references, e.g. operating on an item id the
	// server no longer recognizes.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the request never reached the backend (transport
	// failure or open circuit breaker).
	ErrUnavailable = errors.New("backend unavailable")
)

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// APIError is a non-2xx response decoded into a typed error.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Is maps well-known statuses onto the package sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
