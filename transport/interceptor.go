package transport

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ASHISH1317/apikit/logger"
)

// DoFunc executes a single request/response exchange.
type DoFunc func(ctx context.Context, req Request) (*Response, error)

// Interceptor wraps a DoFunc with cross-cutting behavior. Interceptors run
// in registration order: the first registered is the outermost.
type Interceptor func(next DoFunc) DoFunc

// Chain composes interceptors around a DoFunc.
func Chain(do DoFunc, interceptors ...Interceptor) DoFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		do = interceptors[i](do)
	}
	return do
}

// RequestIDHeader is the header stamped by the RequestID interceptor.
const RequestIDHeader = "X-Request-ID"

// RequestID returns an interceptor that stamps each request with a unique
// X-Request-ID header unless one is already present.
func RequestID() Interceptor {
	return func(next DoFunc) DoFunc {
		return func(ctx context.Context, req Request) (*Response, error) {
			if req.Headers[RequestIDHeader] == "" {
				req.Headers = withHeader(req.Headers, RequestIDHeader, uuid.NewString())
			}
			return next(ctx, req)
		}
	}
}

// Logging returns an interceptor that logs the outcome of every request.
// Completed exchanges log at debug level with the status code; operational
// failures log at error level.
func Logging(log *logger.Logger) Interceptor {
	log = log.WithComponent("transport")
	return func(next DoFunc) DoFunc {
		return func(ctx context.Context, req Request) (*Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			fields := map[string]any{
				"method":      req.Method,
				"path":        req.Path,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if err != nil {
				log.WithFields(fields).WithError(err).Error("request failed")
				return nil, err
			}
			fields["status"] = resp.StatusCode
			log.WithFields(fields).Debug("request completed")
			return resp, nil
		}
	}
}

// withHeader returns a copy of headers with one entry set, leaving the
// caller's map untouched.
func withHeader(headers map[string]string, key, value string) map[string]string {
	merged := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		merged[k] = v
	}
	merged[key] = value
	return merged
}
