package quads

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quads_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent to the QUADS API by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quads_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests to the QUADS API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// metricsTransport records one observation per attempt.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mt.base.RoundTrip(req)
	requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(req.Method, code).Inc()
	return resp, err
}
