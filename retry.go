package quads

import (
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const (
	retryBaseBackoff = time.Second
	retryMaxInterval = 20 * time.Second
)

// retryTransport repeats idempotent requests that failed with a gateway
// status (502, 503, 504) or a transport error. Requests with a body are only
// repeated when GetBody can replay it.
type retryTransport struct {
	base        http.RoundTripper
	maxRetries  int
	newBackOff  func() backoff.BackOff
	statusRetry map[int]bool
}

func newRetryTransport(base http.RoundTripper, maxRetries int) *retryTransport {
	return &retryTransport{
		base:       base,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = retryBaseBackoff
			exp.Multiplier = 2
			exp.MaxInterval = retryMaxInterval
			exp.MaxElapsedTime = 0
			exp.Reset()
			return exp
		},
		statusRetry: map[int]bool{
			http.StatusBadGateway:         true,
			http.StatusServiceUnavailable: true,
			http.StatusGatewayTimeout:     true,
		},
	}
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (rt *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !idempotent(req.Method) || (req.Body != nil && req.Body != http.NoBody && req.GetBody == nil) {
		return rt.base.RoundTrip(req)
	}

	exp := rt.newBackOff()
	attempts := 0
	for {
		resp, err := rt.base.RoundTrip(req)

		retryable := err != nil || rt.statusRetry[resp.StatusCode]
		if !retryable || attempts >= rt.maxRetries {
			return resp, err
		}
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return resp, err
		}

		attempts++
		wait := exp.NextBackOff()
		ev := log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("attempt", attempts).Dur("wait", wait)
		if err != nil {
			ev = ev.Err(err)
		} else {
			ev = ev.Int("status_code", resp.StatusCode)
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		ev.Msg("retrying QUADS request")

		timer := time.NewTimer(wait)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}

		if req.GetBody != nil {
			body, gerr := req.GetBody()
			if gerr != nil {
				return nil, gerr
			}
			req = req.Clone(req.Context())
			req.Body = body
		}
	}
}
