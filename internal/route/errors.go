package route

import "errors"

var (
	// ErrUnavailable indicates the suggestion backend is unreachable.
	ErrUnavailable = errors.New("route backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("route request timed out")

	// ErrInvalidOutput indicates the backend response could not be
	// parsed into the expected structured format.
	ErrInvalidOutput = errors.New("invalid route output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("route retry attempts exhausted")
)
