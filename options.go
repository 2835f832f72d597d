package quads

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options only record settings. The transport chain is assembled after all
// options have run, so their order does not matter.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout bounds a
// whole call including connection, TLS handshake, retries and reading the
// response. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		c.timeoutSet = true
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the base client. Its Transport, when
// set, becomes the innermost RoundTripper; its Timeout is kept unless
// WithHTTPTimeout is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		if !c.timeoutSet {
			c.timeout = hc.Timeout
		}
		return nil
	}
}

// WithDebugLogging logs each request and response at debug level when
// enabled is true. Authorization headers and cookies are redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithRetry retries idempotent requests up to n more times with exponential
// backoff on 502, 503, 504 and network errors. n == 0 disables retries.
func WithRetry(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("retry count must be >= 0")
		}
		c.retries = n
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification, for lab
// deployments with self-signed certificates. It has no effect together with
// WithHTTPClient when that client already carries a Transport.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) error {
		c.insecure = skip
		return nil
	}
}

func insecureTLSConfig() *tls.Config {
	return &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed lab certificates
}
