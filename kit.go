package apikit

import (
	"context"
	"sync"

	"github.com/ASHISH1317/apikit/apicall"
	"github.com/ASHISH1317/apikit/logger"
	"github.com/ASHISH1317/apikit/transport"
)

// Kit bundles the transport client and the call configuration produced by
// Init. A Kit is immutable and safe for concurrent use.
type Kit struct {
	transport *transport.Client
	calls     *apicall.Config
	log       *logger.Logger
}

var (
	defaultMu  sync.RWMutex
	defaultKit *Kit
)

// New builds a Kit without touching the process-wide default.
func New(opts Options) (*Kit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(opts.Logging).WithComponent("apikit")

	client, err := transport.New(transport.Config{
		BaseURL:         opts.BaseURL,
		Timeout:         opts.Timeout,
		Headers:         opts.Headers,
		FollowRedirects: opts.FollowRedirects,
		Auth:            opts.Auth,
		Retry:           opts.Retry,
	}, transport.WithInterceptors(opts.Interceptors...))
	if err != nil {
		return nil, err
	}

	return &Kit{
		transport: client,
		calls:     apicall.NewConfig(opts.Resolver),
		log:       log,
	}, nil
}

// Init builds a Kit and installs it as the process-wide default. Repeated
// calls replace the default; the last call wins.
func Init(opts Options) (*Kit, error) {
	k, err := New(opts)
	if err != nil {
		return nil, err
	}

	defaultMu.Lock()
	defaultKit = k
	defaultMu.Unlock()

	k.log.WithFields(map[string]any{"base_url": opts.BaseURL}).Info("kit initialized")
	return k, nil
}

// Default returns the process-wide Kit, or nil before Init.
func Default() *Kit {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultKit
}

// Transport returns the underlying transport client.
func (k *Kit) Transport() *transport.Client {
	return k.transport
}

// callConfig is nil-receiver safe so dispatching through an uninitialized
// kit surfaces apicall.ErrNotConfigured instead of crashing.
func (k *Kit) callConfig() *apicall.Config {
	if k == nil {
		return nil
	}
	return k.calls
}

// Get forwards to the transport client.
func (k *Kit) Get(ctx context.Context, path string, opts ...transport.RequestOption) (*transport.Response, error) {
	return k.transport.Get(ctx, path, opts...)
}

// Post forwards to the transport client.
func (k *Kit) Post(ctx context.Context, path string, body any, opts ...transport.RequestOption) (*transport.Response, error) {
	return k.transport.Post(ctx, path, body, opts...)
}

// Put forwards to the transport client.
func (k *Kit) Put(ctx context.Context, path string, body any, opts ...transport.RequestOption) (*transport.Response, error) {
	return k.transport.Put(ctx, path, body, opts...)
}

// Patch forwards to the transport client.
func (k *Kit) Patch(ctx context.Context, path string, body any, opts ...transport.RequestOption) (*transport.Response, error) {
	return k.transport.Patch(ctx, path, body, opts...)
}

// Delete forwards to the transport client.
func (k *Kit) Delete(ctx context.Context, path string, opts ...transport.RequestOption) (*transport.Response, error) {
	return k.transport.Delete(ctx, path, opts...)
}
