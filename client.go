// Package quads is a client for the QUADS REST API.
//
// A Client holds credentials and a base URL. Login obtains a Session which
// the client keeps as an explicit field and attaches to every authenticated
// request; Logout discards it. A Client is not safe for concurrent use.
package quads

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quadsproject/go-quads-lib/internal/api"
	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

const (
	defaultTimeout = 30 * time.Second
	logoutTimeout  = 10 * time.Second
)

// --------------------------------------------------------------------
// Session
// --------------------------------------------------------------------

// Session is the authenticated context returned by Login.
type Session struct {
	BaseURL       string
	Username      string
	Token         string
	Cookies       []*http.Cookie
	EstablishedAt time.Time
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	username string
	password string

	http       *http.Client
	timeout    time.Duration
	timeoutSet bool
	insecure   bool
	debug      bool
	retries    int

	session *Session

	closedOnce uint32 // set by Close, cleared by Login
}

// New constructs a Client for the API rooted at baseURL, for example
// https://quads.example.com/api/v3. No request is made until Login.
func New(baseURL, username, password string, opts ...Option) (*Client, error) {
	if err := types.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, apierrors.InvalidArgument("username", "is required")
	}

	c := &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		timeout:  defaultTimeout,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.installTransport()
	return c, nil
}

// installTransport builds the transport chain, innermost first:
// base -> metrics -> debug -> retry.
func (c *Client) installTransport() {
	if c.http == nil {
		c.http = &http.Client{}
	}
	base := c.http.Transport
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if c.insecure {
			t.TLSClientConfig = insecureTLSConfig()
		}
		base = t
	}
	var rt http.RoundTripper = &metricsTransport{base: base}
	if c.debug {
		rt = &debugTransport{base: rt}
	}
	if c.retries > 0 {
		rt = newRetryTransport(rt, c.retries)
	}
	c.http.Transport = rt
	c.http.Timeout = c.timeout
}

// Session returns the active session, or nil.
func (c *Client) Session() *Session { return c.session }

// Authenticated reports whether Login succeeded and the session is still held.
func (c *Client) Authenticated() bool { return c.session != nil }

// Login authenticates with basic credentials and stores the returned session.
// A session already held is logged out first. Every failure is an
// *AuthenticationError; its Err field holds the underlying *RemoteError,
// *NetworkError or *DecodeError.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	if c.session != nil {
		if err := c.Logout(ctx); err != nil {
			log.Debug().Err(err).Str("base_url", c.baseURL).Msg("previous quads session not closed cleanly")
		}
	}
	res, err := api.Login(ctx, c.anonymous(), c.username, c.password)
	if err != nil {
		log.Debug().Err(err).Str("base_url", c.baseURL).Str("username", c.username).Msg("quads login failed")
		return nil, authFailure(err)
	}
	c.session = &Session{
		BaseURL:       c.baseURL,
		Username:      c.username,
		Token:         res.Token,
		Cookies:       res.Cookies,
		EstablishedAt: time.Now(),
	}
	atomic.StoreUint32(&c.closedOnce, 0)
	log.Debug().Str("base_url", c.baseURL).Str("username", c.username).Msg("quads session established")
	return c.session, nil
}

// Logout ends the session on the server. The local session is discarded
// whatever the outcome. Without a session it does nothing.
func (c *Client) Logout(ctx context.Context) error {
	if c.session == nil {
		return nil
	}
	conn := c.sessionConn()
	c.session = nil
	if err := api.Logout(ctx, conn); err != nil {
		log.Debug().Err(err).Str("base_url", c.baseURL).Msg("quads logout failed")
		return err
	}
	log.Debug().Str("base_url", c.baseURL).Msg("quads session closed")
	return nil
}

// Close logs out the current session. Calling it again returns nil until the
// next successful Login.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
	defer cancel()
	return c.Logout(ctx)
}

// WithSession logs in, runs fn and logs out exactly once on every exit path,
// including a panic in fn. Logout runs on a context detached from ctx's
// cancellation so an aborted caller still releases the session. An error from
// fn is returned joined with any logout error.
func WithSession(ctx context.Context, c *Client, fn func(context.Context, *Client) error) (err error) {
	if c == nil {
		return apierrors.InvalidArgument("client", "is required")
	}
	if _, err := c.Login(ctx); err != nil {
		return err
	}
	defer func() {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
		defer cancel()
		if lerr := c.Logout(lctx); lerr != nil {
			err = errors.Join(err, fmt.Errorf("logout: %w", lerr))
		}
	}()
	return fn(ctx, c)
}

func (c *Client) anonymous() api.Conn {
	return api.Conn{HTTP: c.http, BaseURL: c.baseURL}
}

func (c *Client) sessionConn() api.Conn {
	conn := c.anonymous()
	if c.session != nil {
		conn.Token = c.session.Token
		conn.Cookies = c.session.Cookies
	}
	return conn
}

// conn returns the connection for an authenticated call.
func (c *Client) conn() (api.Conn, error) {
	if c.session == nil {
		return api.Conn{}, ErrNotAuthenticated
	}
	return c.sessionConn(), nil
}

// check turns a 401 on an authenticated call into an AuthenticationError and
// drops the session the server no longer honours.
func (c *Client) check(err error) error {
	var re *RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusUnauthorized {
		c.session = nil
		return &AuthenticationError{StatusCode: re.StatusCode, Message: re.Message, Err: err}
	}
	return err
}

func authFailure(err error) error {
	ae := &AuthenticationError{Err: err}
	var re *RemoteError
	if errors.As(err, &re) {
		ae.StatusCode = re.StatusCode
		ae.Message = re.Message
	}
	return ae
}

// call runs fn against the session connection.
func call[T any](c *Client, fn func(api.Conn) (T, error)) (T, error) {
	conn, err := c.conn()
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := fn(conn)
	return out, c.check(err)
}

// exec runs fn against the session connection for calls with no result.
func (c *Client) exec(fn func(api.Conn) error) error {
	conn, err := c.conn()
	if err != nil {
		return err
	}
	return c.check(fn(conn))
}
