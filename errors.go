package passcrypt

import "errors"

var (
	// ErrEmptyKey is returned when the master key is nil or zero-length.
	ErrEmptyKey = errors.New("passcrypt: key is empty")

	// ErrEmptyMessage is returned when the plaintext or blob is nil or zero-length.
	ErrEmptyMessage = errors.New("passcrypt: message is empty")

	// ErrInvalidKeyLength is returned when the master key is not 16, 24 or 32 bytes.
	ErrInvalidKeyLength = errors.New("passcrypt: invalid key length, must be 16, 24 or 32 bytes")

	// ErrUnsupportedMessage is returned when the plaintext contains a byte
	// outside the ASCII range.
	ErrUnsupportedMessage = errors.New("passcrypt: unsupported message, plaintext must be ASCII")

	// ErrInvalidFormat is returned when a blob is structurally malformed:
	// too short to hold the tag, salt and one ciphertext block, or with a
	// misaligned ciphertext segment.
	ErrInvalidFormat = errors.New("passcrypt: invalid blob format")

	// ErrIntegrityFailure is returned when the authentication tag does not
	// match. Tampering and a wrong key are intentionally indistinguishable.
	ErrIntegrityFailure = errors.New("passcrypt: ciphertext corrupted or tampered")

	// ErrInvalidPadding is returned when the padding uncovered after
	// authenticated decryption is structurally invalid.
	ErrInvalidPadding = errors.New("passcrypt: invalid padding")
)

// IsEmptyKey returns true if the error is or wraps ErrEmptyKey.
func IsEmptyKey(err error) bool {
	return errors.Is(err, ErrEmptyKey)
}

// IsEmptyMessage returns true if the error is or wraps ErrEmptyMessage.
func IsEmptyMessage(err error) bool {
	return errors.Is(err, ErrEmptyMessage)
}

// IsInvalidKeyLength returns true if the error is or wraps ErrInvalidKeyLength.
func IsInvalidKeyLength(err error) bool {
	return errors.Is(err, ErrInvalidKeyLength)
}

// IsUnsupportedMessage returns true if the error is or wraps ErrUnsupportedMessage.
func IsUnsupportedMessage(err error) bool {
	return errors.Is(err, ErrUnsupportedMessage)
}

// IsInvalidFormat returns true if the error is or wraps ErrInvalidFormat.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsIntegrityFailure returns true if the error is or wraps ErrIntegrityFailure.
func IsIntegrityFailure(err error) bool {
	return errors.Is(err, ErrIntegrityFailure)
}

// IsInvalidPadding returns true if the error is or wraps ErrInvalidPadding.
func IsInvalidPadding(err error) bool {
	return errors.Is(err, ErrInvalidPadding)
}
