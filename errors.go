package quads

import (
	"errors"
	"net/http"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
)

// Error types re-exported so callers compare against a single symbol.
type (
	RemoteError         = apierrors.RemoteError
	AuthenticationError = apierrors.AuthenticationError
	NetworkError        = apierrors.NetworkError
	DecodeError         = apierrors.DecodeError
	ErrorCategory       = apierrors.ErrorCategory
)

const (
	Recoverable   = apierrors.Recoverable
	Irrecoverable = apierrors.Irrecoverable
)

var (
	// ErrNotAuthenticated is returned by authenticated calls made without a session.
	ErrNotAuthenticated = apierrors.ErrNotAuthenticated
	ErrNotFound         = apierrors.ErrNotFound
	ErrInvalidArgument  = apierrors.ErrInvalidArgument
)

// IsNotFound reports whether err is a 404 or an empty lookup.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsBadRequest reports whether the server rejected the request with a 400.
func IsBadRequest(err error) bool { return apierrors.StatusCode(err) == http.StatusBadRequest }

// IsServerError reports whether the server answered with a 5xx.
func IsServerError(err error) bool {
	code := apierrors.StatusCode(err)
	return code >= 500 && code < 600
}

// IsRecoverable reports whether repeating the call may succeed.
func IsRecoverable(err error) bool { return apierrors.IsRecoverable(err) }
