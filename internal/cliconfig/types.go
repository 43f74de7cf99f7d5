// Package cliconfig provides configuration types and loading for bridgectl.
package cliconfig

import "time"

// Config is the bridgectl profile. Values come from several sources with
// the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. .env file in the current directory
// 4. Profile file ($XDG_CONFIG_HOME/apibridge/config.yaml)
// 5. Default values (lowest priority)
type Config struct {
	APIURL string `yaml:"api_url,omitempty" json:"api_url,omitempty"`

	// APIKey is the plain key. APIKeySealed holds a key sealed with the
	// vault passphrase; only one of the two is written to the file.
	APIKey       string `yaml:"api_key,omitempty" json:"-"`
	APIKeySealed string `yaml:"api_key_sealed,omitempty" json:"-"`

	LogLevel string        `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Output   string        `yaml:"output,omitempty" json:"output,omitempty"`

	// VaultPassphrase is never persisted.
	VaultPassphrase string `yaml:"-" json:"-"`

	// Sources tracks where each value came from
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceDotenv  = "dotenv"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Field keys used in Sources.
const (
	FieldAPIURL          = "api_url"
	FieldAPIKey          = "api_key"
	FieldLogLevel        = "log_level"
	FieldTimeout         = "timeout"
	FieldOutput          = "output"
	FieldVaultPassphrase = "vault_passphrase"
)
