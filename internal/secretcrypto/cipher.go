package secretcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// NonceSize and TagSize match AES-GCM's standard parameters.
const (
	NonceSize = 12
	TagSize   = 16

	// BootKeyLength is the fixed Boot Key length this module requires;
	// mismatches are rejected before any database work (spec.md §3 Invariants).
	BootKeyLength = 16
	// pekKeySize is the nominal width of an individual PEK. EncodePEKList
	// and DecodePEKList do not enforce it.
	pekKeySize = 16
)

// ErrInvalidCiphertext is returned when a sealed blob is too short to
// contain a nonce and auth tag.
var ErrInvalidCiphertext = errors.New("secretcrypto: ciphertext too short")

// ErrDecryptFailed is returned when AES-GCM authentication fails.
var ErrDecryptFailed = errors.New("secretcrypto: decryption failed")

// ErrInvalidBootKeyLength is returned when a Boot Key is neither empty/zero
// nor exactly BootKeyLength bytes.
var ErrInvalidBootKeyLength = errors.New("secretcrypto: boot key must be 16 bytes")

// seal encrypts plaintext under key (which must be exactly 32 bytes, an
// AES-256 key derived from the caller's symmetric key material) and returns
// nonce‖ciphertext‖tag.
func seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// open decrypts a nonce‖ciphertext‖tag blob sealed by seal.
func open(key, blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, ErrInvalidCiphertext
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

// aesKeyFrom widens/narrows arbitrary symmetric key material to the 32
// bytes AES-256-GCM requires: shorter input is zero-padded, longer input is
// truncated. Boot Keys are BootKeyLength bytes; PEK widths are not checked,
// so a PEK may be narrower or wider than 32 bytes. The seal/open helpers are
// always fed through this first.
func aesKeyFrom(key []byte) []byte {
	out := make([]byte, 32)
	copy(out, key)
	return out
}
