package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryConfig configures transport-level retries with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	// Defaults to 3.
	MaxAttempts int
	// InitialInterval is the delay before the first retry. Defaults to 200ms.
	InitialInterval time.Duration
	// MaxInterval caps the delay between retries. Defaults to 5s.
	MaxInterval time.Duration
	// Multiplier grows the delay between retries. Defaults to 2.0.
	Multiplier float64
	// RetryIf decides whether an error is worth retrying. Defaults to
	// DefaultRetryIf.
	RetryIf func(error) bool
}

// Validate checks that the retry configuration is valid.
func (c *RetryConfig) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("transport: retry max attempts must not be negative")
	}
	return nil
}

// applyDefaults fills in zero-value fields.
func (c *RetryConfig) applyDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 200 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
	if c.RetryIf == nil {
		c.RetryIf = DefaultRetryIf
	}
}

// DefaultRetryIf retries timeouts and connection failures. Everything else
// (encode and decode errors) is deterministic and not worth repeating.
func DefaultRetryIf(err error) bool {
	return IsTimeout(err) || IsConnection(err)
}

// doWithRetry runs do under cfg's backoff policy until it succeeds, the
// error is classified as permanent, or the attempt budget runs out.
func doWithRetry(ctx context.Context, cfg RetryConfig, do func() (*Response, error)) (*Response, error) {
	cfg.applyDefaults()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.Multiplier = cfg.Multiplier

	operation := func() (*Response, error) {
		resp, err := do()
		if err != nil && !cfg.RetryIf(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(cfg.MaxAttempts)),
	)
}
