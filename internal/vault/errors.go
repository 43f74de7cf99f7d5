package vault

import "errors"

var (
	// ErrEmptyPassphrase is returned when sealing or opening without a passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrDecryptionFailed is returned when decryption fails. A wrong
	// passphrase and a tampered value are indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidFormat is returned when a sealed value is malformed.
	ErrInvalidFormat = errors.New("invalid sealed value")

	// ErrUnsupportedVersion is returned for a sealed value from an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported sealed value version")
)
