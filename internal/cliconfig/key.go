package cliconfig

import (
	"errors"
	"fmt"

	"github.com/apibridge/client-go/internal/vault"
)

// ErrPassphraseRequired is returned when the profile holds a sealed key and
// no passphrase is available.
var ErrPassphraseRequired = errors.New("api key is sealed: set " + EnvVaultPassphrase)

// ResolveAPIKey returns the plain API key, opening the sealed key when
// needed. An empty result means no key is configured.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	if c.APIKeySealed == "" {
		return "", nil
	}
	if c.VaultPassphrase == "" {
		return "", ErrPassphraseRequired
	}
	key, err := vault.Open(c.VaultPassphrase, c.APIKeySealed)
	if err != nil {
		return "", fmt.Errorf("failed to open api key: %w", err)
	}
	return string(key), nil
}

// SetAPIKey stores key in cfg, sealed when passphrase is non-empty.
func (c *Config) SetAPIKey(key, passphrase string) error {
	if passphrase == "" {
		c.APIKey = key
		c.APIKeySealed = ""
		return nil
	}
	sealed, err := vault.Seal(passphrase, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal api key: %w", err)
	}
	c.APIKey = ""
	c.APIKeySealed = sealed
	return nil
}

// MaskedKey returns the key with all but the last four characters hidden,
// "(sealed)" for a sealed key, or "" when none is set.
func (c *Config) MaskedKey() string {
	switch {
	case c.APIKey != "":
		const visible = 4
		if len(c.APIKey) <= visible {
			return "****"
		}
		return "****" + c.APIKey[len(c.APIKey)-visible:]
	case c.APIKeySealed != "":
		return "(sealed)"
	}
	return ""
}
