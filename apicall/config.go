package apicall

import (
	"math"
	"strings"
)

// Resolver classifies a raw backend status value as success or failure.
// Implementations must be pure and must not panic for shapes they can
// reasonably encounter; unrecognized shapes should resolve to false.
type Resolver func(status any) bool

// Config carries the resolver consulted on every dispatched call.
// It is immutable once constructed.
type Config struct {
	resolver Resolver
}

// NewConfig creates a Config with the given resolver.
func NewConfig(resolver Resolver) *Config {
	return &Config{resolver: resolver}
}

// IsSuccess applies the configured resolver to a raw status value.
func (c *Config) IsSuccess(status any) bool {
	return c.resolver(status)
}

// configured reports whether the config holds a usable resolver.
func (c *Config) configured() bool {
	return c != nil && c.resolver != nil
}

// DefaultResolver implements the conventional status classification:
// booleans are taken as-is, integers succeed in [200, 300), and strings
// succeed when case-insensitively equal to "success". JSON decoding yields
// float64 for numbers, so integral floats are treated as integers. Any
// other shape resolves to false.
func DefaultResolver(status any) bool {
	switch s := status.(type) {
	case bool:
		return s
	case int:
		return s >= 200 && s < 300
	case int32:
		return s >= 200 && s < 300
	case int64:
		return s >= 200 && s < 300
	case float64:
		return s == math.Trunc(s) && s >= 200 && s < 300
	case string:
		return strings.EqualFold(s, "success")
	default:
		return false
	}
}
