package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Conn carries everything a call needs: the transport, the base URL and the
// session credentials to attach. A zero Token sends the request anonymously.
type Conn struct {
	HTTP    HTTPClient
	BaseURL string
	Token   string
	Cookies []*http.Cookie
}

// response is a fully read HTTP response.
type response struct {
	StatusCode int
	Header     http.Header
	Cookies    []*http.Cookie
	Body       []byte
}

// Endpoint joins escaped path segments.
func Endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

func (c Conn) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	// Session credentials are attached here, per request; there is no cookie jar.
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	for _, ck := range c.Cookies {
		req.AddCookie(ck)
	}
	return req, nil
}

// send performs the request and maps transport failures and non-2xx statuses
// to typed errors. prepare, when non-nil, may adjust the request before it is sent.
func (c Conn) send(ctx context.Context, op, method, path string, query url.Values, body any, prepare func(*http.Request)) (*response, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewHTTPError(op, method, path, resp.StatusCode, data)
	}
	return &response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Cookies:    resp.Cookies(),
		Body:       data,
	}, nil
}

// getOne fetches path and decodes a single validated record.
func getOne[T any](ctx context.Context, c Conn, op, path string, query url.Values) (*T, error) {
	resp, err := c.send(ctx, op, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeInto(op, resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getList fetches path and decodes a list of validated records.
func getList[T any](ctx context.Context, c Conn, op, path, key string, query url.Values) ([]T, error) {
	resp, err := c.send(ctx, op, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](op, resp.Body, key)
}

// create posts body and decodes the created record. A 2xx with an empty body
// yields a nil record.
func create[T any](ctx context.Context, c Conn, op, path string, body any) (*T, error) {
	resp, err := c.send(ctx, op, http.MethodPost, path, nil, body, nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, nil
	}
	var out T
	if err := decodeInto(op, resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// mutate sends a request whose response body is not needed.
func mutate(ctx context.Context, c Conn, op, method, path string, body any) error {
	_, err := c.send(ctx, op, method, path, nil, body, nil)
	return err
}

func decodeInto[T any](op string, data []byte, out *T) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return apierrors.NewDecodeError(op, errors.New("empty response body"))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apierrors.NewDecodeError(op, err)
	}
	if v, ok := any(*out).(types.Validator); ok {
		if err := v.Validate(); err != nil {
			return apierrors.NewDecodeError(op, err)
		}
	}
	return nil
}

// decodeList accepts either a bare JSON array or an object whose key field
// holds the array.
func decodeList[T any](op string, data []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, apierrors.NewDecodeError(op, errors.New("empty response body"))
	}

	var items []T
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, apierrors.NewDecodeError(op, err)
		}
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, apierrors.NewDecodeError(op, err)
		}
		raw, ok := envelope[key]
		if !ok {
			return nil, apierrors.NewDecodeError(op, fmt.Errorf("missing %q field", key))
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, apierrors.NewDecodeError(op, err)
		}
	default:
		return nil, apierrors.NewDecodeError(op, fmt.Errorf("expected JSON array or object, got %q", trimmed[:1]))
	}

	for i := range items {
		if v, ok := any(items[i]).(types.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, apierrors.NewDecodeError(op, fmt.Errorf("%s[%d]: %w", key, i, err))
			}
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decodeOne accepts a single object or a list, returning the first element of
// the list. An empty list is ErrNotFound.
func decodeOne[T any](op string, data []byte, key string) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err == nil {
			if _, isEnvelope := probe[key]; !isEnvelope {
				var out T
				if err := decodeInto(op, trimmed, &out); err != nil {
					return nil, err
				}
				return &out, nil
			}
		}
	}
	items, err := decodeList[T](op, trimmed, key)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apierrors.ErrNotFound)
	}
	return &items[0], nil
}
