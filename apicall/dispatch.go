package apicall

import (
	"context"
	"errors"
)

// RequestFunc produces one response envelope, typically by performing an
// HTTP exchange through the transport client and feeding the decoded body
// to ResponseFrom.
type RequestFunc[T any] func(ctx context.Context) (*Response[T], error)

// ErrorCallback receives a human-readable message when a call fails. It is
// a notification side channel, not an error handler: operational failures
// are still returned to the caller after the callback runs.
type ErrorCallback func(message string)

// ErrNotConfigured is returned when a call is dispatched without an
// initialized configuration. This signals a programming error, not a
// runtime condition.
var ErrNotConfigured = errors.New("apicall: no configuration: initialize the kit before dispatching calls")

// GenericErrorMessage is the fixed message handed to error callbacks when a
// call fails without a usable message. Operational failures deliberately
// report this instead of the underlying error text, so callbacks wired to
// user-facing surfaces never leak internals; the real error is still
// returned to the caller.
const GenericErrorMessage = "Something went wrong. Please try again."

// Call runs a request and normalizes its outcome against cfg's resolver.
//
// The resolver decides what the envelope's status means. On success the
// payload is returned, which may be nil: success does not guarantee a
// payload. On a business failure onError receives the envelope's message
// (or GenericErrorMessage when absent) and Call returns (nil, nil). On an
// operational failure onError receives GenericErrorMessage and the original
// error is returned unchanged.
//
// Dispatching against a nil or resolver-less Config returns
// ErrNotConfigured.
func Call[T any](ctx context.Context, cfg *Config, request RequestFunc[T], onError ErrorCallback) (*T, error) {
	resp, err := request(ctx)
	if err != nil {
		if onError != nil {
			onError(GenericErrorMessage)
		}
		return nil, err
	}
	if resp == nil {
		err = errors.New("apicall: request produced no response")
		if onError != nil {
			onError(GenericErrorMessage)
		}
		return nil, err
	}

	if !cfg.configured() {
		return nil, ErrNotConfigured
	}

	if cfg.IsSuccess(resp.Status) {
		return resp.Data, nil
	}

	if onError != nil {
		msg := resp.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		onError(msg)
	}
	return nil, nil
}
