package spotify

import (
	"fmt"
)

// AuthError is returned when the client-credentials token exchange
// fails with a non-2xx status.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("spotify: token exchange failed with status %d", e.StatusCode)
}

// StatusError is returned when a resource endpoint responds with a
// non-2xx status. It carries the failing endpoint path so callers can
// tell which request misbehaved.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spotify: %s returned status %d", e.Endpoint, e.StatusCode)
}

// ValidationError is returned when a client-side constraint is violated,
// such as exceeding a batch ID ceiling. No network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "spotify: " + e.Message
}

func batchCeilingError(resource string, got, ceiling int) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s accepts at most %d IDs per request, got %d", resource, ceiling, got),
	}
}
