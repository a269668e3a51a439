package executor

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is returned for any method other than GET, POST, PUT or DELETE.
// It is detected before any network I/O.
var ErrInvalidMethod = errors.New("invalid method")

// ErrNoRequest is returned when Execute is called without a request
var ErrNoRequest = errors.New("no request to send")

// TransportError wraps a failure of the HTTP layer (DNS, connect, TLS, timeout).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid UTF-8.
// It never aborts a dispatch; its message becomes the body text.
type DecodeError struct {
	Offset int
	Size   int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body as UTF-8 (invalid byte at offset %d of %d): %v", e.Offset, e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
