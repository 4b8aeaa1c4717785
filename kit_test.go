package apikit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ASHISH1317/apikit/apicall"
	"github.com/ASHISH1317/apikit/config"
	"github.com/ASHISH1317/apikit/logger"
	"github.com/ASHISH1317/apikit/transport"
)

func quietOptions(baseURL string) Options {
	return Options{
		BaseURL:  baseURL,
		Resolver: apicall.DefaultResolver,
		Logging:  logger.Config{Level: "error"},
	}
}

func resetDefault() {
	defaultMu.Lock()
	defaultKit = nil
	defaultMu.Unlock()
}

func TestNewRequiresResolver(t *testing.T) {
	_, err := New(Options{BaseURL: "https://api.example.com"})
	if err == nil {
		t.Fatal("expected error without resolver")
	}
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "::not-a-url", Resolver: apicall.DefaultResolver})
	if err == nil {
		t.Fatal("expected error for invalid base URL")
	}
}

func TestInitSetsDefaultLastCallWins(t *testing.T) {
	t.Cleanup(resetDefault)

	first, err := Init(quietOptions("https://first.example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Default() != first {
		t.Error("expected first kit to be the default")
	}

	second, err := Init(quietOptions("https://second.example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Default() != second {
		t.Error("expected repeated Init to replace the default")
	}
	if second.Transport().BaseURL() != "https://second.example.com" {
		t.Errorf("unexpected base URL %q", second.Transport().BaseURL())
	}
}

func TestNewDoesNotTouchDefault(t *testing.T) {
	t.Cleanup(resetDefault)

	if _, err := New(quietOptions("https://aside.example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Default() != nil {
		t.Error("New must not install a default kit")
	}
}

func TestKitVerbForwarding(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	k, err := New(quietOptions(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	calls := []struct {
		method string
		do     func() (*transport.Response, error)
	}{
		{http.MethodGet, func() (*transport.Response, error) { return k.Get(ctx, "/a") }},
		{http.MethodPost, func() (*transport.Response, error) { return k.Post(ctx, "/a", map[string]int{"n": 1}) }},
		{http.MethodPut, func() (*transport.Response, error) { return k.Put(ctx, "/a", nil) }},
		{http.MethodPatch, func() (*transport.Response, error) { return k.Patch(ctx, "/a", nil) }},
		{http.MethodDelete, func() (*transport.Response, error) { return k.Delete(ctx, "/a") }},
	}

	for _, call := range calls {
		if _, err := call.do(); err != nil {
			t.Fatalf("%s: unexpected error: %v", call.method, err)
		}
		if gotMethod != call.method {
			t.Errorf("expected method %s, got %s", call.method, gotMethod)
		}
		if gotPath != "/a" {
			t.Errorf("expected path /a, got %s", gotPath)
		}
	}
}

func TestInitWiresInterceptors(t *testing.T) {
	t.Cleanup(resetDefault)

	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(transport.RequestIDHeader)
	}))
	defer srv.Close()

	opts := quietOptions(srv.URL)
	opts.Interceptors = []transport.Interceptor{transport.RequestID()}
	k, err := Init(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := k.Get(context.Background(), "/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRequestID == "" {
		t.Error("expected interceptor to stamp a request ID")
	}
}

func TestOptionsFromFile(t *testing.T) {
	noFollow := false
	f := &config.File{
		Transport: transport.Config{
			BaseURL:         "https://file.example.com",
			Timeout:         12 * time.Second,
			Headers:         map[string]string{"Accept": "application/json"},
			FollowRedirects: &noFollow,
		},
		Logging: logger.Config{Level: "warn"},
	}

	opts := OptionsFromFile(f, apicall.DefaultResolver)
	if err := opts.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.BaseURL != "https://file.example.com" {
		t.Errorf("unexpected base URL %q", opts.BaseURL)
	}
	if opts.Timeout != 12*time.Second {
		t.Errorf("unexpected timeout %v", opts.Timeout)
	}
	if opts.FollowRedirects == nil || *opts.FollowRedirects {
		t.Error("expected redirects disabled")
	}
	if opts.Logging.Level != "warn" {
		t.Errorf("unexpected logging level %q", opts.Logging.Level)
	}
}
