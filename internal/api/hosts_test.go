package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

func TestListHosts_Filter(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hosts" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.RawQuery != "cloud=cloud1&model=model1&name=test+host+%26+more" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"hosts":[{"name":"host1","model":"model1"}]}`))
	})
	filter := url.Values{"model": {"model1"}, "cloud": {"cloud1"}, "name": {"test host & more"}}
	hosts, err := ListHosts(context.Background(), c, filter)
	if err != nil || len(hosts) != 1 || hosts[0].Model != "model1" {
		t.Fatalf("ListHosts unexpected: got=%+v err=%v", hosts, err)
	}
}

func TestListHosts_NoFilterHasNoQuery(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	})
	hosts, err := ListHosts(context.Background(), c, url.Values{})
	if err != nil || hosts == nil || len(hosts) != 0 {
		t.Fatalf("ListHosts unexpected: got=%#v err=%v", hosts, err)
	}
}

func TestListHostModels(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("group_by") != "model" {
			t.Errorf("group_by missing: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"model1":[{"name":"host1"},{"name":"host2"}],"model2":[{"name":"host3"}]}`))
	})
	models, err := ListHostModels(context.Background(), c)
	if err != nil || len(models["model1"]) != 2 || len(models["model2"]) != 1 {
		t.Fatalf("ListHostModels unexpected: got=%+v err=%v", models, err)
	}
}

func TestGetHost(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hosts/host.1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"name":"host.1","model":"r640","cloud":{"id":2,"name":"cloud02"},"interfaces":[]}`))
	})
	h, err := GetHost(context.Background(), c, "host.1")
	if err != nil || h.Name != "host.1" || h.Cloud == nil || h.Cloud.Name != "cloud02" {
		t.Fatalf("GetHost unexpected: got=%+v err=%v", h, err)
	}
}

func TestGetHost_EmptyName(t *testing.T) {
	t.Parallel()
	c := Conn{HTTP: &http.Client{Transport: &errRT{}}, BaseURL: "http://example.com"}
	if _, err := GetHost(context.Background(), c, ""); !errors.Is(err, apierrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCreateHost_Body(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/hosts" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		var got types.CreateHostRequest
		if err := json.Unmarshal(raw, &got); err != nil || got.Name != "new-host" || got.HostType != "scalelab" {
			t.Errorf("body = %s", raw)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"new-host","model":"r640"}`))
	})
	h, err := CreateHost(context.Background(), c, types.CreateHostRequest{Name: "new-host", Model: "r640", HostType: "scalelab"})
	if err != nil || h == nil || h.ID != 9 {
		t.Fatalf("CreateHost unexpected: got=%+v err=%v", h, err)
	}
}

func TestCreateHost_EmptyBody(t *testing.T) {
	t.Parallel()
	c := newConn(t, jsonReply(http.StatusCreated, ""))
	h, err := CreateHost(context.Background(), c, types.CreateHostRequest{Name: "new-host"})
	if err != nil || h != nil {
		t.Fatalf("expected nil record and nil error, got=%+v err=%v", h, err)
	}
}

func TestUpdateAndRemoveHost(t *testing.T) {
	t.Parallel()
	var calls []string
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			raw, _ := io.ReadAll(r.Body)
			if string(raw) != `{"broken":true}` {
				t.Errorf("patch body = %s", raw)
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	broken := true
	if err := UpdateHost(context.Background(), c, "host1", types.UpdateHostRequest{Broken: &broken}); err != nil {
		t.Fatalf("UpdateHost: %v", err)
	}
	if err := RemoveHost(context.Background(), c, "host1"); err != nil {
		t.Fatalf("RemoveHost: %v", err)
	}
	if len(calls) != 2 || calls[0] != "PATCH /hosts/host1" || calls[1] != "DELETE /hosts/host1" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestIsAvailable(t *testing.T) {
	t.Parallel()
	for body, want := range map[string]bool{`true`: true, `"true"`: true, `false`: false, `"false"`: false} {
		c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/available/test-host" || r.URL.Query().Get("start") != "2024-03-20" {
				t.Errorf("unexpected request %s", r.URL)
			}
			_, _ = w.Write([]byte(body))
		})
		got, err := IsAvailable(context.Background(), c, "test-host", url.Values{"start": {"2024-03-20"}, "end": {"2024-03-21"}})
		if err != nil || got != want {
			t.Fatalf("IsAvailable(%s) = %v, %v", body, got, err)
		}
	}
}

func TestIsAvailable_BadBody(t *testing.T) {
	t.Parallel()
	c := newConn(t, jsonReply(http.StatusOK, `{"available":"maybe"}`))
	_, err := IsAvailable(context.Background(), c, "h1", nil)
	var de *apierrors.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestHosts_NonOKStatuses(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			jsonReply(http.StatusBadRequest, `{"message":"Invalid host data"}`)(w, r)
		case http.MethodGet:
			w.WriteHeader(http.StatusInternalServerError)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()
	if _, err := CreateHost(ctx, c, types.CreateHostRequest{Name: "x"}); apierrors.StatusCode(err) != 400 {
		t.Fatalf("CreateHost: %v", err)
	}
	if _, err := ListHosts(ctx, c, nil); apierrors.StatusCode(err) != 500 {
		t.Fatalf("ListHosts: %v", err)
	}
	if err := RemoveHost(ctx, c, "x"); !errors.Is(err, apierrors.ErrNotFound) {
		t.Fatalf("RemoveHost: %v", err)
	}
}

func TestListAvailable(t *testing.T) {
	t.Parallel()
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/available" || r.URL.Query().Get("model") != "model1" {
			t.Errorf("unexpected request %s", r.URL)
		}
		_, _ = w.Write([]byte(`{"hosts":[{"name":"host1"}]}`))
	})
	hosts, err := ListAvailable(context.Background(), c, url.Values{"model": {"model1"}})
	if err != nil || len(hosts) != 1 {
		t.Fatalf("ListAvailable unexpected: got=%+v err=%v", hosts, err)
	}
}
