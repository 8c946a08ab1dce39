package passcrypt

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Option tunes a single Encrypt or Decrypt call.
type Option func(*options)

type options struct {
	workload int
}

// WithWorkload overrides the PBKDF2 iteration count. Decryption must use
// the same workload the blob was encrypted with. Non-positive values are
// ignored.
func WithWorkload(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workload = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{workload: DefaultWorkload}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encrypt encrypts plaintext under the master key and returns an
// authenticated blob: tag || salt || ciphertext.
//
// A fresh random salt is generated per call and stretched together with
// the key into independent cipher key, authentication key and IV. The
// plaintext is encrypted with AES in CBC mode with PKCS#7 padding, and an
// HMAC-SHA256 tag over salt and ciphertext seals the result.
//
// The key must be 16, 24 or 32 bytes; the plaintext must be non-empty
// ASCII.
func Encrypt(key, plaintext []byte, opts ...Option) (blob []byte, err error) {
	defer func() { recordEncrypt(len(plaintext), err) }()

	if err := validateEncryptInputs(key, plaintext); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("passcrypt: failed to generate salt: %w", err)
	}

	keys := deriveKeys(key, salt, o.workload)
	defer keys.destroy()

	ciphertext := encryptCBC(newBlockCipher(keys.cipherKey()), plaintext, keys.iv())
	tag := computeTag(keys.authKey(), salt, ciphertext)

	blob = make([]byte, 0, headerSize+len(ciphertext))
	blob = append(blob, tag...)
	blob = append(blob, salt...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// validateEncryptInputs rejects bad inputs before any cryptographic work.
func validateEncryptInputs(key, plaintext []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if len(plaintext) == 0 {
		return ErrEmptyMessage
	}
	if _, ok := roundsByKeySize[len(key)]; !ok {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	for i, b := range plaintext {
		if b > 0x7f {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnsupportedMessage, b, i)
		}
	}
	return nil
}
