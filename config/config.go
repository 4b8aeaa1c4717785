// Package config loads kit configuration from a YAML file with environment
// overrides, so applications can describe the transport and logging setup
// next to the rest of their deployment configuration.
//
//	transport:
//	  base_url: https://api.example.com
//	  timeout: 10s
//	logging:
//	  level: debug
//
// Any value can be overridden with an APIKIT_-prefixed environment variable,
// e.g. APIKIT_TRANSPORT_BASE_URL. A .env file in the working directory is
// loaded first when present.
package config

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ASHISH1317/apikit/logger"
	"github.com/ASHISH1317/apikit/transport"
)

// File is the on-disk configuration for an application using the kit.
type File struct {
	Transport transport.Config `yaml:"transport" mapstructure:"transport"`
	Logging   logger.Config    `yaml:"logging" mapstructure:"logging"`
}

// envKeys are the settings that can be overridden from the environment.
var envKeys = []string{
	"transport.base_url",
	"transport.timeout",
	"transport.follow_redirects",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
}

// Load reads a YAML configuration file, applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*File, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	// Viper lowercases map keys during unmarshal; restore the canonical
	// header form so the loaded config matches what callers wrote.
	if len(f.Transport.Headers) > 0 {
		headers := make(map[string]string, len(f.Transport.Headers))
		for k, val := range f.Transport.Headers {
			headers[http.CanonicalHeaderKey(k)] = val
		}
		f.Transport.Headers = headers
	}

	f.Transport.ApplyDefaults()
	f.Logging.ApplyDefaults()

	if err := f.Transport.Validate(); err != nil {
		return nil, err
	}
	if err := f.Logging.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
