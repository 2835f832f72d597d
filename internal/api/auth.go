package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token   string
	Cookies []*http.Cookie
	Message string
}

// Login exchanges basic credentials for a session token. The returned errors
// are the raw RemoteError / NetworkError / DecodeError; the caller decides how
// to present them.
func Login(ctx context.Context, c Conn, username, password string) (*LoginResult, error) {
	const op = "login"
	anon := c
	anon.Token = ""
	anon.Cookies = nil

	resp, err := anon.send(ctx, op, http.MethodPost, "login/", nil, nil, func(r *http.Request) {
		r.SetBasicAuth(username, password)
	})
	if err != nil {
		return nil, err
	}

	var lr types.LoginResponse
	if body := bytes.TrimSpace(resp.Body); len(body) > 0 {
		if err := json.Unmarshal(body, &lr); err != nil {
			return nil, apierrors.NewDecodeError(op, err)
		}
	}
	res := &LoginResult{
		Token:   lr.SessionToken(),
		Cookies: resp.Cookies,
		Message: lr.Message,
	}
	if res.Token == "" && len(res.Cookies) == 0 {
		return nil, apierrors.NewDecodeError(op, errors.New("response carried neither a token nor a session cookie"))
	}
	return res, nil
}

// Logout invalidates the session on the server. A 401 means the server has
// already forgotten the session, which is the desired end state.
func Logout(ctx context.Context, c Conn) error {
	err := mutate(ctx, c, "logout", http.MethodPost, "logout/", nil)
	var re *apierrors.RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusUnauthorized {
		return nil
	}
	return err
}
