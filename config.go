package quads

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds connection settings for a Client.
// Environment variables are parsed from the QUADS_ prefix,
// e.g. QUADS_API_URL, QUADS_API_USERNAME, QUADS_TIMEOUT.
type Config struct {
	URL      string `envconfig:"API_URL"`
	Username string `envconfig:"API_USERNAME"`
	Password string `envconfig:"API_PASSWORD"`

	// Timeout bounds each call, retries included.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// Retries is the number of extra attempts for idempotent requests. 0 disables retries.
	Retries int `envconfig:"RETRIES" default:"0"`

	// VerifyTLS is false for lab servers with self-signed certificates.
	VerifyTLS bool `envconfig:"VERIFY_TLS" default:"true"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads the configuration from QUADS_* environment variables.
// Values are not validated until the config is used to build a Client.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("QUADS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("url", cfg.URL).
		Str("username", cfg.Username).
		Bool("password_present", cfg.Password != "").
		Dur("timeout", cfg.Timeout).
		Int("retries", cfg.Retries).
		Bool("verify_tls", cfg.VerifyTLS).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks the settings New would otherwise reject.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("QUADS_API_URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("QUADS_API_USERNAME is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must be >= 0, got %d", c.Retries)
	}
	return nil
}

// Options translates the config into client options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Timeout > 0 {
		opts = append(opts, WithHTTPTimeout(c.Timeout))
	}
	if c.Retries > 0 {
		opts = append(opts, WithRetry(c.Retries))
	}
	if !c.VerifyTLS {
		opts = append(opts, WithInsecureSkipVerify(true))
	}
	if c.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}

// NewFromConfig validates cfg and builds a Client. opts are applied after the
// options derived from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.URL, cfg.Username, cfg.Password, append(cfg.Options(), opts...)...)
}
