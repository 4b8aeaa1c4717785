package transport

import "encoding/json"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	// Defaults to GET.
	Method string
	// Path is appended to the base URL. Can be a full URL if no base URL
	// applies.
	Path string
	// BaseURL overrides the client's base URL for this request.
	BaseURL string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Response is the result of an HTTP request. The transport never judges the
// status code; every well-formed response comes back as a Response, 2xx or
// not.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// JSON decodes the response body into v. An empty body leaves v untouched.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return NewDecodeError(err)
	}
	return nil
}

// Map decodes the response body into a generic JSON object, the shape the
// envelope factory consumes. An empty body yields an empty map.
func (r *Response) Map() (map[string]any, error) {
	raw := make(map[string]any)
	if len(r.Body) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(r.Body, &raw); err != nil {
		return nil, NewDecodeError(err)
	}
	return raw, nil
}
