package cliconfig

import (
	"time"

	apibridge "github.com/apibridge/client-go"
)

// DefaultLogLevel is the default CLI log level.
const DefaultLogLevel = "warn"

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		APIURL:   apibridge.DefaultBaseURL,
		LogLevel: DefaultLogLevel,
		Timeout:  DefaultTimeout,
		Output:   OutputTable,
		Sources:  make(map[string]string),
	}

	cfg.Sources[FieldAPIURL] = SourceDefault
	cfg.Sources[FieldLogLevel] = SourceDefault
	cfg.Sources[FieldTimeout] = SourceDefault
	cfg.Sources[FieldOutput] = SourceDefault

	return cfg
}
