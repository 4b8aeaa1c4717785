package apicall

import "fmt"

// DataKey is the conventional key the payload is read from when building an
// envelope out of a decoded response body.
const DataKey = "data"

// StatusExtractor pulls the raw status value out of a decoded response body.
type StatusExtractor func(raw map[string]any) any

// MessageExtractor pulls a human-readable message out of a decoded response
// body.
type MessageExtractor func(raw map[string]any) string

// DataParser converts the raw payload found under DataKey into the caller's
// typed model. The raw value may be nil when the backend sent no payload;
// parsers decide whether that is acceptable.
type DataParser[T any] func(raw any) (*T, error)

// Response normalizes a backend reply into a raw status, an optional
// message, and a typed payload. The status is never interpreted here;
// classification belongs entirely to the resolver.
type Response[T any] struct {
	// Status is the raw status value in whatever shape the backend uses.
	Status any
	// Message is the backend's human-readable message, empty when absent.
	Message string
	// Data is the parsed payload, nil when absent.
	Data *T
}

// NewResponse constructs an envelope directly. Use this when the backend
// shape needs custom unwrapping before an envelope exists, for example a
// payload nested several levels deep or a status derived from transport
// metadata.
func NewResponse[T any](status any, message string, data *T) *Response[T] {
	return &Response[T]{Status: status, Message: message, Data: data}
}

// ResponseFrom builds an envelope from a decoded response body by applying
// the caller's extractors. statusOf and parse are required; messageOf may be
// nil, leaving the message absent. parse receives the value under DataKey,
// which may be nil. A parse failure is returned to the caller.
func ResponseFrom[T any](raw map[string]any, statusOf StatusExtractor, messageOf MessageExtractor, parse DataParser[T]) (*Response[T], error) {
	if statusOf == nil {
		return nil, fmt.Errorf("apicall: status extractor is required")
	}
	if parse == nil {
		return nil, fmt.Errorf("apicall: data parser is required")
	}

	resp := &Response[T]{Status: statusOf(raw)}
	if messageOf != nil {
		resp.Message = messageOf(raw)
	}

	data, err := parse(raw[DataKey])
	if err != nil {
		return nil, fmt.Errorf("apicall: parse data: %w", err)
	}
	resp.Data = data
	return resp, nil
}
