package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIURL          = "BRIDGE_API_URL"
	EnvAPIKey          = "BRIDGE_API_KEY"
	EnvLogLevel        = "BRIDGE_LOG_LEVEL"
	EnvTimeout         = "BRIDGE_TIMEOUT"
	EnvOutput          = "BRIDGE_OUTPUT"
	EnvVaultPassphrase = "BRIDGE_VAULT_PASSPHRASE"
)

// FromEnv builds a Config from a variable lookup. Only variables that are
// set and non-empty are applied. A timeout is either a Go duration ("45s")
// or a number of seconds.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	cfg.APIURL = get(EnvAPIURL)
	cfg.APIKey = get(EnvAPIKey)
	cfg.LogLevel = get(EnvLogLevel)
	cfg.Output = get(EnvOutput)
	cfg.VaultPassphrase = get(EnvVaultPassphrase)

	if v := get(EnvTimeout); v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return nil, &ConfigError{Path: EnvTimeout, Message: err.Error()}
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// LoadEnvConfig applies BRIDGE_* variables from the process environment.
func LoadEnvConfig(cfg *Config) error {
	envCfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	MergeConfig(cfg, envCfg, SourceEnv)
	return nil
}

// LoadDotenv applies BRIDGE_* variables from a .env file. A missing file is
// not an error. The process environment is left untouched.
func LoadDotenv(cfg *Config, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Path: path, Message: err.Error()}
	}

	dotCfg, err := FromEnv(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
	if err != nil {
		return err
	}
	MergeConfig(cfg, dotCfg, SourceDotenv)
	return nil
}

// ParseTimeout parses a Go duration or a plain number of seconds.
func ParseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return secs, nil
}
