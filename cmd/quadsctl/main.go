package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	quads "github.com/quadsproject/go-quads-lib"
)

var (
	apiURL   string
	username string
	password string
	timeout  time.Duration
	retries  int
	insecure bool
	debug    bool
)

func main() {
	// A missing .env is fine; the environment alone may be enough.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quadsctl",
		Short:         "Query and manage a QUADS server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cfg, err := quads.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid QUADS_* environment")
		cfg = &quads.Config{Timeout: 30 * time.Second, VerifyTLS: true}
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&apiURL, "url", cfg.URL, "QUADS API base URL, e.g. https://quads.example.com/api/v3 (QUADS_API_URL)")
	flags.StringVarP(&username, "username", "u", cfg.Username, "API username (QUADS_API_USERNAME)")
	flags.StringVarP(&password, "password", "p", cfg.Password, "API password (QUADS_API_PASSWORD)")
	flags.DurationVar(&timeout, "timeout", cfg.Timeout, "Per-call timeout (QUADS_TIMEOUT)")
	flags.IntVar(&retries, "retries", cfg.Retries, "Retries for idempotent requests on gateway errors (QUADS_RETRIES)")
	flags.BoolVarP(&insecure, "insecure", "k", !cfg.VerifyTLS, "Skip TLS certificate verification (QUADS_VERIFY_TLS=false)")
	flags.BoolVarP(&debug, "debug", "d", cfg.Debug, "Enable verbose debug output including HTTP dumps")

	rootCmd.AddCommand(newHostsCmd())
	rootCmd.AddCommand(newCloudsCmd())
	rootCmd.AddCommand(newSchedulesCmd())
	rootCmd.AddCommand(newAvailableCmd())
	rootCmd.AddCommand(newAssignmentsCmd())
	rootCmd.AddCommand(newVlansCmd())
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runInSession logs in, runs fn, logs out and prints fn's result as JSON.
func runInSession(cmd *cobra.Command, fn func(ctx context.Context, c *quads.Client) (any, error)) error {
	c, err := quads.NewFromConfig(&quads.Config{
		URL:       apiURL,
		Username:  username,
		Password:  password,
		Timeout:   timeout,
		Retries:   retries,
		VerifyTLS: !insecure,
		Debug:     debug,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	var out any
	err = quads.WithSession(cmd.Context(), c, func(ctx context.Context, c *quads.Client) error {
		var err error
		out, err = fn(ctx, c)
		return err
	})
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Err(err).Msg("command finished")
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseFilters turns repeated key=value flags into query parameters.
func parseFilters(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	q := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid filter %q, want key=value", p)
		}
		q.Add(strings.TrimSpace(k), strings.TrimSpace(v))
	}
	return q, nil
}
