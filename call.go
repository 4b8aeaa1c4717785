package apikit

import (
	"context"

	"github.com/ASHISH1317/apikit/apicall"
	"github.com/ASHISH1317/apikit/transport"
)

// Call dispatches a request through the kit and normalizes its outcome
// against the kit's resolver. See apicall.Call for the full contract:
// success returns the payload, business failures report through onError and
// return no value, operational failures report the generic message and
// return the original error.
//
// A nil or uninitialized kit yields apicall.ErrNotConfigured.
func Call[T any](ctx context.Context, k *Kit, request apicall.RequestFunc[T], onError apicall.ErrorCallback) (*T, error) {
	return apicall.Call(ctx, k.callConfig(), request, onError)
}

// CallDefault dispatches through the process-wide Kit installed by Init.
func CallDefault[T any](ctx context.Context, request apicall.RequestFunc[T], onError apicall.ErrorCallback) (*T, error) {
	return Call(ctx, Default(), request, onError)
}

// JSONRequest builds a RequestFunc that performs an HTTP exchange through
// the kit's transport, decodes the body as a JSON object, and feeds it to
// the envelope factory with the caller's extractors. Use it for backends
// that follow the status/message/data envelope convention; for anything
// more exotic, write the RequestFunc by hand and construct the envelope
// with apicall.NewResponse.
func JSONRequest[T any](k *Kit, method, path string, statusOf apicall.StatusExtractor, messageOf apicall.MessageExtractor, parse apicall.DataParser[T], opts ...transport.RequestOption) apicall.RequestFunc[T] {
	return func(ctx context.Context) (*apicall.Response[T], error) {
		if k == nil || k.transport == nil {
			return nil, apicall.ErrNotConfigured
		}

		req := transport.Request{Method: method, Path: path}
		for _, opt := range opts {
			opt(&req)
		}

		resp, err := k.transport.Do(ctx, req)
		if err != nil {
			return nil, err
		}
		raw, err := resp.Map()
		if err != nil {
			return nil, err
		}
		return apicall.ResponseFrom(raw, statusOf, messageOf, parse)
	}
}

// StatusCodeRequest builds a RequestFunc whose envelope status is the HTTP
// status code itself, for backends that carry no envelope in the body. The
// whole decoded body is handed to parse whatever its JSON shape (object,
// array, or scalar); a body that is not valid JSON is handed over as raw
// []byte, and an empty body as nil. The message comes from the body's
// "message" field when it decodes to a JSON object.
func StatusCodeRequest[T any](k *Kit, method, path string, parse apicall.DataParser[T], opts ...transport.RequestOption) apicall.RequestFunc[T] {
	return func(ctx context.Context) (*apicall.Response[T], error) {
		if k == nil || k.transport == nil {
			return nil, apicall.ErrNotConfigured
		}

		req := transport.Request{Method: method, Path: path}
		for _, opt := range opts {
			opt(&req)
		}

		resp, err := k.transport.Do(ctx, req)
		if err != nil {
			return nil, err
		}

		var message string
		var payload any
		if len(resp.Body) > 0 {
			var decoded any
			if err := resp.JSON(&decoded); err == nil {
				if obj, ok := decoded.(map[string]any); ok {
					message, _ = obj["message"].(string)
				}
				payload = decoded
			} else {
				payload = resp.Body
			}
		}

		data, err := parse(payload)
		if err != nil {
			return nil, err
		}
		return apicall.NewResponse(resp.StatusCode, message, data), nil
	}
}
