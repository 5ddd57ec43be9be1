// Package cryptox provides passphrase-based authenticated encryption for
// secrets persisted to the local cache.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the sealing key from a passphrase.
const (
	saltLength  = 16
	iterations  = 2
	memory      = 64 * 1024
	parallelism = 2
	keyLength   = 32
)

var ErrInvalidCiphertext = errors.New("cryptox: invalid ciphertext")

// deriveKey stretches a passphrase into a 32-byte AES-256 key.
func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
}

// Seal encrypts plaintext with a key derived from the passphrase using
// AES-256-GCM. The output format is:
// [16-byte salt][12-byte nonce][encrypted data][16-byte auth tag]
// A fresh salt and nonce are generated per call.
func Seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate nonce: %w", err)
	}

	// gcm.Seal appends the ciphertext and auth tag to salt+nonce.
	out := append(salt, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal. A wrong passphrase fails the GCM
// authentication check and returns an error.
func Open(passphrase string, sealed []byte) ([]byte, error) {
	if len(sealed) < saltLength {
		return nil, ErrInvalidCiphertext
	}
	salt, rest := sealed[:saltLength], sealed[saltLength:]

	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to create GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, ErrInvalidCiphertext
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("cryptox: decryption failed: %w", err)
	}

	return plaintext, nil
}
