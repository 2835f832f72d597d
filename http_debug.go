package quads

import (
	"bytes"
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response at debug level.
//
// Enable it with WithDebugLogging(true), QUADS_DEBUG=true or DEBUG=true.
// Dumps include bodies, which may carry host inventory and owner names;
// Authorization, Cookie and Set-Cookie values and token fields in JSON
// bodies are replaced before logging.
// Leave it off in production.
type debugTransport struct{ base http.RoundTripper }

var (
	sensitiveHeader = regexp.MustCompile(`(?mi)^(Authorization|Cookie|Set-Cookie):.*$`)
	// Login responses carry the session token in the body.
	sensitiveField = regexp.MustCompile(`("(?:auth_token|token)"\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

func redact(dump []byte) string {
	out := sensitiveHeader.ReplaceAllFunc(dump, func(line []byte) []byte {
		name, _, _ := bytes.Cut(line, []byte(":"))
		return []byte(string(name) + ": [REDACTED]")
	})
	return string(sensitiveField.ReplaceAll(out, []byte(`$1"[REDACTED]"`)))
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", redact(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether QUADS_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("QUADS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
