package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newConn starts srv and returns an authenticated Conn pointing at it.
func newConn(t *testing.T, h http.HandlerFunc) Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return Conn{HTTP: srv.Client(), BaseURL: srv.URL, Token: "tok"}
}

// jsonReply answers every request with status and body.
func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
