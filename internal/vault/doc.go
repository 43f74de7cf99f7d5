// Package vault seals secrets, such as the API key kept in the CLI profile,
// under a user passphrase.
//
// # Algorithm Suite
//
//   - Argon2id (RFC 9106): stretches the passphrase into a master secret
//     with a per-seal random salt.
//
//   - HKDF-SHA-512 (RFC 5869): derives the AES key from the master secret
//     with domain separation.
//
//   - AES-256-GCM: authenticated encryption. Tampering with a sealed value
//     or using the wrong passphrase makes [Open] fail with
//     [ErrDecryptionFailed].
//
// # Format
//
// A sealed value is a single printable token:
//
//	v1.<base64url(salt || nonce || ciphertext || tag)>
//
// The version prefix is authenticated as associated data.
//
//	sealed, err := vault.Seal(passphrase, []byte(apiKey))
//	...
//	key, err := vault.Open(passphrase, sealed)
package vault
