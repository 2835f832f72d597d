// Package errors provides the typed error taxonomy of the QUADS client.
// Every failure surfaced by the SDK is one of these types (or wraps one),
// so callers can branch with errors.Is / errors.As.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCategory determines whether a failed request may be retried.
type ErrorCategory int

const (
	// Recoverable errors may succeed when repeated.
	// Examples: 502 Bad Gateway, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way every time.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

var (
	// ErrNotAuthenticated is returned when an authenticated call is attempted
	// without an active session.
	ErrNotAuthenticated = stderrors.New("quads: not authenticated, call Login first")

	// ErrNotFound matches a 404 RemoteError and lookups that returned nothing.
	ErrNotFound = stderrors.New("quads: resource not found")

	// ErrInvalidArgument is returned when a required argument is missing
	// before any request is sent.
	ErrInvalidArgument = stderrors.New("quads: invalid argument")
)

// RemoteError is a non-2xx response from the QUADS API.
type RemoteError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Message    string // "message" field of the JSON error body, if any
	Body       string // raw response body for debugging
	Category   ErrorCategory
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Category, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *RemoteError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AuthenticationError reports that the server rejected the credentials or the
// session, or that the login call itself failed. Err holds the cause.
type AuthenticationError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AuthenticationError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("quads: authentication failed: HTTP %d: %s", e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("quads: authentication failed: HTTP %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("quads: authentication failed: %v", e.Err)
	default:
		return "quads: authentication failed"
	}
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// NetworkError is a connection, TLS or timeout failure; no response was read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a deadline or timeout.
func (e *NetworkError) Timeout() bool {
	if stderrors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(e.Err, &ne) && ne.Timeout()
}

// DecodeError reports a response body that does not match the expected schema.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err may succeed when the call is repeated.
func IsRecoverable(err error) bool {
	var re *RemoteError
	if stderrors.As(err, &re) {
		return re.Category == Recoverable
	}
	var ne *NetworkError
	return stderrors.As(err, &ne)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *RemoteError
	if stderrors.As(err, &re) {
		return re.StatusCode
	}
	var ae *AuthenticationError
	if stderrors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}
