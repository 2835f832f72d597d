package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
)

// Validator is implemented by records that check the fields the server
// always sends.
type Validator interface {
	Validate() error
}

var errMissingName = errors.New("name is required")

// ValidateIDPresent checks that a path argument is non-empty.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return apierrors.InvalidArgument(field, "is required")
	}
	return nil
}

// ValidatePositive checks that a numeric path argument is set.
func ValidatePositive(id int, field string) error {
	if id <= 0 {
		return apierrors.InvalidArgument(field, "must be positive")
	}
	return nil
}

// ValidateBaseURL checks that raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return apierrors.InvalidArgument("base URL", "is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return apierrors.InvalidArgument("base URL", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apierrors.InvalidArgument("base URL", fmt.Sprintf("has unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return apierrors.InvalidArgument("base URL", "has no host")
	}
	return nil
}

// Validate implements Validator.
func (h Host) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("host: %w", errMissingName)
	}
	for i, iface := range h.Interfaces {
		if err := iface.Validate(); err != nil {
			return fmt.Errorf("host %s: interfaces[%d]: %w", h.Name, i, err)
		}
	}
	return nil
}

// Validate implements Validator.
func (c Cloud) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("cloud: %w", errMissingName)
	}
	return nil
}

// Validate implements Validator.
func (s CloudSummary) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("cloud summary: %w", errMissingName)
	}
	if s.Count < 0 {
		return fmt.Errorf("cloud summary %s: negative count %d", s.Name, s.Count)
	}
	return nil
}

// Validate implements Validator.
func (a Assignment) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("assignment: id is required")
	}
	return nil
}

// Validate implements Validator.
func (s Schedule) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("schedule: id is required")
	}
	if s.Start == "" || s.End == "" {
		return fmt.Errorf("schedule %d: start and end are required", s.ID)
	}
	return nil
}

// Validate implements Validator.
func (i Interface) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("interface: %w", errMissingName)
	}
	return nil
}

// Validate implements Validator.
func (v Vlan) Validate() error {
	if v.VlanID <= 0 {
		return fmt.Errorf("vlan: vlan_id is required")
	}
	return nil
}

// Validate implements Validator.
func (m Move) Validate() error {
	if m.Host == "" {
		return fmt.Errorf("move: host is required")
	}
	return nil
}

// Validate implements Validator.
func (v Version) Validate() error {
	if v.Version == "" && v.APIVersion == "" && v.Result == "" {
		return fmt.Errorf("version: empty response")
	}
	return nil
}

// Validate implements Validator.
func (m HostModels) Validate() error {
	for model, hosts := range m {
		for i, h := range hosts {
			if err := h.Validate(); err != nil {
				return fmt.Errorf("model %s[%d]: %w", model, i, err)
			}
		}
	}
	return nil
}
