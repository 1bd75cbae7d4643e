package pco

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the Planning Center API could not be reached.
	ErrUnavailable = errors.New("planning center api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("planning center request timed out")

	// ErrUnexpectedStatus indicates a response other than 200 OK.
	ErrUnexpectedStatus = errors.New("unexpected planning center response status")

	// ErrMalformedResponse indicates a 200 response whose body does not have
	// the expected JSON:API shape.
	ErrMalformedResponse = errors.New("malformed planning center response")
)

// StatusError carries the HTTP status of a failed call.
type StatusError struct {
	Resource   Resource
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Resource, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// StatusCode extracts the HTTP status from err, or 0 when err did not come
// from a non-200 response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func malformed(resource Resource, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedResponse, resource, fmt.Sprintf(format, args...))
}
