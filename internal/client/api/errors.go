package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or did not produce a response.
	ErrUnavailable = errors.New("server unavailable")
)

// RequestError is a non-2xx API response. Message carries the server's
// "error" field when present, otherwise a generic fallback supplied by the
// caller.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}
