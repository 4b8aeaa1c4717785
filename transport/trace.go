package transport

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ASHISH1317/apikit/transport"

// Tracing returns an interceptor that records a client span per request.
// Spans are named "<method> <path>" and carry the method, path, and
// response status code; operational failures are recorded on the span.
// Exporter wiring is the host application's concern — without an SDK the
// spans are no-ops.
func Tracing() Interceptor {
	tracer := otel.Tracer(tracerName)
	return func(next DoFunc) DoFunc {
		return func(ctx context.Context, req Request) (*Response, error) {
			ctx, span := tracer.Start(ctx, req.Method+" "+req.Path,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("url.path", req.Path),
				),
			)
			defer span.End()

			resp, err := next(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			return resp, nil
		}
	}
}
