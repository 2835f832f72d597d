package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// maxBodyInError bounds how much of a non-JSON body ends up in an error message.
const maxBodyInError = 512

// NewHTTPError builds a RemoteError for a non-2xx response, extracting the
// server's "message" field when the body is JSON.
func NewHTTPError(op, method, path string, statusCode int, body []byte) *RemoteError {
	return &RemoteError{
		Op:         op,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    messageFromBody(statusCode, body),
		Body:       string(body),
		Category:   getHTTPErrorCategory(statusCode),
	}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// NewDecodeError wraps a schema or syntax failure while decoding a response.
func NewDecodeError(op string, err error) *DecodeError {
	return &DecodeError{Op: op, Err: err}
}

// InvalidArgument returns an ErrInvalidArgument-wrapping error naming field.
func InvalidArgument(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, reason)
}

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		switch statusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return Recoverable
		default:
			// 500 is a server bug; repeating the request will not fix it.
			return Irrecoverable
		}
	default:
		return Irrecoverable
	}
}

func messageFromBody(statusCode int, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	} else if len(trimmed) > 0 && !bytes.HasPrefix(trimmed, []byte("<")) {
		msg := string(trimmed)
		if len(msg) > maxBodyInError {
			msg = msg[:maxBodyInError] + "..."
		}
		return strings.TrimSpace(msg)
	}
	if statusCode == http.StatusInternalServerError {
		return "internal server error, check the QUADS server logs"
	}
	return ""
}
