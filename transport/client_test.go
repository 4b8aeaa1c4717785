package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T, cfg Config, opts ...Option) *Client {
	t.Helper()
	c, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestDoJoinsBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users" {
			t.Errorf("expected path /v1/users, got %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL + "/v1/"})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/users"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestDoPerRequestBaseURLOverride(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("other"))
	}))
	defer other.Close()

	c := newTestClient(t, Config{BaseURL: "http://base.invalid"})
	resp, err := c.Do(context.Background(), Request{Path: "/x", BaseURL: other.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != "other" {
		t.Errorf("expected override server response, got %q", resp.Body)
	}
}

func TestDoEncodesJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "Alice" {
			t.Errorf("expected name Alice, got %v", body)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/users",
		Body:   map[string]string{"name": "Alice"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoMergesHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Default"); got != "kit" {
			t.Errorf("expected default header, got %q", got)
		}
		if got := r.Header.Get("X-Shared"); got != "request" {
			t.Errorf("expected request header to win, got %q", got)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"X-Default": "kit", "X-Shared": "client"},
	})
	_, err := c.Do(context.Background(), Request{
		Path:    "/",
		Headers: map[string]string{"X-Shared": "request"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoQueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{Path: "/", Query: map[string]string{"page": "2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoNonSuccessStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{Path: "/missing"})
	if err != nil {
		t.Fatalf("non-2xx must not be an error, got %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDoConnectionError(t *testing.T) {
	c := newTestClient(t, Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Do(context.Background(), Request{Path: "/"})
	if !IsConnection(err) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestDoContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(t, Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Do(ctx, Request{Path: "/"})
	if !IsTimeout(err) {
		t.Fatalf("expected timeout classification for cancelled context, got %v", err)
	}
}

func TestDoRedirectPolicy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.Write([]byte("landed"))
	}))
	defer srv.Close()

	follow := newTestClient(t, Config{BaseURL: srv.URL})
	resp, err := follow.Do(context.Background(), Request{Path: "/old"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || string(resp.Body) != "landed" {
		t.Errorf("expected followed redirect, got %d %q", resp.StatusCode, resp.Body)
	}

	noFollow := false
	stay := newTestClient(t, Config{BaseURL: srv.URL, FollowRedirects: &noFollow})
	resp, err = stay.Do(context.Background(), Request{Path: "/old"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected 302 with redirects disabled, got %d", resp.StatusCode)
	}
}

func TestResponseMap(t *testing.T) {
	resp := &Response{Body: []byte(`{"status":200,"data":{"id":1}}`)}
	raw, err := resp.Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{"status": float64(200), "data": map[string]any{"id": float64(1)}}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestResponseMapEmptyBody(t *testing.T) {
	raw, err := (&Response{}).Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("expected empty map, got %v", raw)
	}
}

func TestResponseJSONDecodeError(t *testing.T) {
	resp := &Response{Body: []byte(`{"broken`)}
	var v map[string]any
	if err := resp.JSON(&v); !IsDecode(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestVerbs(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	ctx := context.Background()

	calls := []struct {
		want string
		do   func() (*Response, error)
	}{
		{http.MethodGet, func() (*Response, error) { return c.Get(ctx, "/x") }},
		{http.MethodPost, func() (*Response, error) { return c.Post(ctx, "/x", nil) }},
		{http.MethodPut, func() (*Response, error) { return c.Put(ctx, "/x", nil) }},
		{http.MethodPatch, func() (*Response, error) { return c.Patch(ctx, "/x", nil) }},
		{http.MethodDelete, func() (*Response, error) { return c.Delete(ctx, "/x") }},
	}

	for _, call := range calls {
		if _, err := call.do(); err != nil {
			t.Fatalf("%s: unexpected error: %v", call.want, err)
		}
		if gotMethod != call.want {
			t.Errorf("expected method %s, got %s", call.want, gotMethod)
		}
	}
}

func TestVerbOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("expand"); got != "roles" {
			t.Errorf("expected expand=roles, got %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Errorf("expected X-Extra header, got %q", got)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.Get(context.Background(), "/users",
		WithQuery(map[string]string{"expand": "roles"}),
		WithHeaders(map[string]string{"X-Extra": "1"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRepeatedVerbOptionsMerge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("expand"); got != "roles" {
			t.Errorf("expected expand=roles, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Errorf("expected X-Extra header, got %q", got)
		}
		if got := r.Header.Get("X-Tenant"); got != "acme" {
			t.Errorf("expected X-Tenant header, got %q", got)
		}
	}))
	defer srv.Close()

	query := map[string]string{"expand": "roles"}
	headers := map[string]string{"X-Extra": "1"}

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.Get(context.Background(), "/users",
		WithQuery(query),
		WithHeaders(headers),
		WithQuery(map[string]string{"page": "2"}),
		WithHeaders(map[string]string{"X-Tenant": "acme"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(query) != 1 || len(headers) != 1 {
		t.Error("options must not mutate the caller's maps")
	}
}
