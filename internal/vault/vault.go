package vault

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// randReader is the source of salts and nonces.
var randReader io.Reader = rand.Reader

// Seal encrypts plaintext under passphrase. Every call uses a fresh salt and
// nonce, so sealing the same value twice gives different output.
func Seal(passphrase string, plaintext []byte) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	buf := make([]byte, SaltSize+AESNonceSize)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	salt, nonce := buf[:SaltSize], buf[SaltSize:]

	key, err := passphraseKey(passphrase, salt)
	if err != nil {
		return "", err
	}

	ciphertext, err := EncryptAES(key, nonce, []byte(Version), plaintext)
	if err != nil {
		return "", err
	}

	payload := append(append([]byte{}, salt...), ciphertext...)
	return Version + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// Open decrypts a value produced by Seal.
func Open(passphrase, sealed string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	version, encoded, ok := strings.Cut(strings.TrimSpace(sealed), ".")
	if !ok {
		return nil, ErrInvalidFormat
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(payload) < SaltSize+AESNonceSize+AESTagSize {
		return nil, fmt.Errorf("%w: payload too short", ErrInvalidFormat)
	}

	salt := payload[:SaltSize]
	key, err := passphraseKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	return DecryptAES(key, []byte(version), payload[SaltSize:])
}

// IsSealed reports whether s looks like a value produced by Seal.
func IsSealed(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), Version+".")
}
