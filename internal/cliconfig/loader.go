package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for the profile under the user config dir
	GlobalConfigDir = "apibridge"

	// ConfigFileName is the profile file name.
	ConfigFileName = "config.yaml"

	// DotenvFileName is the .env file read from the current directory.
	DotenvFileName = ".env"
)

// DefaultPath returns the profile path. os.UserConfigDir honours
// $XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GlobalConfigDir, ConfigFileName), nil
}

// LoadConfigFile loads a Config from a YAML file. A missing file yields an
// empty config.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{Sources: make(map[string]string)}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cerr := &ConfigError{Path: path, Message: err.Error()}
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			cerr.Line = yamlErrorLine(err)
		}
		return nil, cerr
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

// yamlErrorLine extracts the line from a yaml.v3 syntax error
// ("yaml: line 3: ...").
func yamlErrorLine(err error) int {
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}

// LoadOptions selects the files Load reads. Empty paths use the defaults.
type LoadOptions struct {
	ConfigPath string
	DotenvPath string
	SkipEnv    bool
}

// Load loads configuration from all sources and merges them.
// Precedence: env > .env > profile file > defaults. Flags are applied by the
// caller with MergeConfig(cfg, flags, SourceFlag).
func Load(opts LoadOptions) (*Config, error) {
	cfg := NewDefault()

	path := opts.ConfigPath
	if path == "" {
		path, _ = DefaultPath()
	}
	if path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, fileCfg, SourceFile)
	}

	dotenv := opts.DotenvPath
	if dotenv == "" {
		dotenv = DotenvFileName
	}
	if err := LoadDotenv(cfg, dotenv); err != nil {
		return nil, err
	}

	if !opts.SkipEnv {
		if err := LoadEnvConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the persistent fields of cfg to path, creating the directory
// if needed. The file may hold a key, so it is private to the user.
func Save(path string, cfg *Config) error {
	out := Config{
		APIURL:       cfg.APIURL,
		APIKey:       cfg.APIKey,
		APIKeySealed: cfg.APIKeySealed,
		LogLevel:     cfg.LogLevel,
		Timeout:      cfg.Timeout,
		Output:       cfg.Output,
	}
	if out.APIKeySealed != "" {
		out.APIKey = ""
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
