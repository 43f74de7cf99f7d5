package vault

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// passphraseKey stretches passphrase with Argon2id and derives the AES key
// for salt.
func passphraseKey(passphrase string, salt []byte) ([]byte, error) {
	master := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, AESKeySize)
	return DeriveKey(master, salt, []byte(HKDFContext), AESKeySize)
}
