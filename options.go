package apikit

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ASHISH1317/apikit/apicall"
	"github.com/ASHISH1317/apikit/config"
	"github.com/ASHISH1317/apikit/logger"
	"github.com/ASHISH1317/apikit/transport"
)

// Options configures kit initialization.
type Options struct {
	// BaseURL is prepended to all request paths.
	BaseURL string `validate:"omitempty,url"`

	// Resolver classifies raw status values as success or failure. Required.
	Resolver apicall.Resolver `validate:"-"`

	// Interceptors run around every transport request, in order.
	Interceptors []transport.Interceptor `validate:"-"`

	// Timeout is the transport request timeout. Defaults to 30s.
	Timeout time.Duration `validate:"min=0"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `validate:"-"`

	// Auth configures default request authentication.
	Auth *transport.AuthConfig `validate:"-"`

	// Retry configures transport-level retries. Nil disables retry.
	Retry *transport.RetryConfig `validate:"-"`

	// FollowRedirects controls redirect following. Nil means true.
	FollowRedirects *bool `validate:"-"`

	// Logging configures the kit logger. The zero value uses defaults.
	Logging logger.Config `validate:"-"`
}

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// Validate checks that the options are usable. The resolver is checked
// explicitly since function fields are outside struct tag validation.
func (o *Options) Validate() error {
	if o.Resolver == nil {
		return fmt.Errorf("apikit: options: resolver is required")
	}
	if err := getValidator().Struct(o); err != nil {
		return fmt.Errorf("apikit: options: %w", err)
	}
	return nil
}

// OptionsFromFile builds Options from a loaded configuration file and a
// resolver. Interceptors and auth are code-level concerns and stay out of
// configuration files; set them on the returned Options.
func OptionsFromFile(f *config.File, resolver apicall.Resolver) Options {
	return Options{
		BaseURL:         f.Transport.BaseURL,
		Resolver:        resolver,
		Timeout:         f.Transport.Timeout,
		Headers:         f.Transport.Headers,
		FollowRedirects: f.Transport.FollowRedirects,
		Logging:         f.Logging,
	}
}
