package transport

import (
	"context"
	"net/http"
)

// RequestOption configures a single request issued through a verb helper.
type RequestOption func(*Request)

// WithQuery adds query parameters to the request, merging with any set by
// earlier options. A repeated key wins over the earlier value.
func WithQuery(params map[string]string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string, len(params))
		}
		for k, v := range params {
			r.Query[k] = v
		}
	}
}

// WithHeaders adds headers to the request, merging with any set by earlier
// options. A repeated key wins over the earlier value.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			r.Headers[k] = v
		}
	}
}

// WithBaseURL forces a different base URL for this request only.
func WithBaseURL(baseURL string) RequestOption {
	return func(r *Request) {
		r.BaseURL = baseURL
	}
}

// WithAuth overrides authentication for the request.
func WithAuth(auth *AuthConfig) RequestOption {
	return func(r *Request) {
		r.Auth = auth
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.verb(ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with the given body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.verb(ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.verb(ctx, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.verb(ctx, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.verb(ctx, http.MethodDelete, path, nil, opts...)
}

// verb builds a request from a method, path, and options, and executes it.
func (c *Client) verb(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}
