package tvmaze

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates a client could not be constructed
	ErrInvalidConfig = errors.New("invalid tvmaze configuration")
	// ErrInvalidArgument indicates a call was rejected before any request was sent
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound matches API errors with status 404
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited matches API errors with status 429
	ErrRateLimited = errors.New("rate limited by tvmaze")
)

// APIError represents a non-success HTTP status returned by TVMaze.
// The response body is never decoded when this error is returned.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tvmaze API error: status %d: %s", e.StatusCode, e.Status)
}

// Is lets errors.Is match ErrNotFound and ErrRateLimited
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrRateLimited:
		return e.IsRateLimited()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if TVMaze rejected the call with 429
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TransportError is returned when no response was obtained at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tvmaze request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx body is not valid JSON or does not fit the result type.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode tvmaze response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
