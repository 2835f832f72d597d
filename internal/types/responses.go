package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse is the body returned by the login endpoint.
type LoginResponse struct {
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
	Token      string `json:"token,omitempty"`
	AuthToken  string `json:"auth_token,omitempty"`
}

// SessionToken returns whichever token field the server populated.
func (r LoginResponse) SessionToken() string {
	if r.AuthToken != "" {
		return r.AuthToken
	}
	return r.Token
}

// HostModels groups hosts by hardware model.
type HostModels map[string][]Host

// ParseAvailability decodes the availability endpoint, which answers with a
// JSON boolean or the strings "true"/"false".
func ParseAvailability(raw []byte) (bool, error) {
	raw = bytes.TrimSpace(raw)
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, fmt.Errorf("availability: expected boolean, got %q", truncate(raw))
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("availability: unexpected value %q", s)
	}
}

func truncate(b []byte) string {
	const maxLen = 64
	if len(b) > maxLen {
		return string(b[:maxLen]) + "..."
	}
	return string(b)
}
