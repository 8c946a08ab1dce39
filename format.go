package passcrypt

import "fmt"

// Wire format constants. A blob is the concatenation
// tag(32) || salt(16) || ciphertext(N*16, N >= 1), with no length prefixes:
// every field is either fixed-size or determined by the total length.
const (
	// tagSize is the HMAC-SHA256 authentication tag size.
	tagSize = 32

	// saltSize is the random per-encryption salt size.
	saltSize = 16

	// headerSize is the fixed prefix before the ciphertext: tag + salt.
	headerSize = tagSize + saltSize

	// minBlobSize is the smallest well-formed blob: header plus one block.
	minBlobSize = headerSize + blockSize
)

// splitBlob parses a blob into its tag, salt and ciphertext fields.
// The ciphertext segment is validated directly: it must be a positive
// multiple of the block size, independent of the header happening to be
// block-aligned. All returned slices are defensive copies, safe from
// caller mutation.
func splitBlob(blob []byte) (tag, salt, ciphertext []byte, err error) {
	if len(blob) < minBlobSize {
		return nil, nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidFormat, len(blob), minBlobSize)
	}
	if (len(blob)-headerSize)%blockSize != 0 {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext is not a multiple of %d bytes", ErrInvalidFormat, blockSize)
	}

	tag = append([]byte(nil), blob[:tagSize]...)
	salt = append([]byte(nil), blob[tagSize:headerSize]...)
	ciphertext = append([]byte(nil), blob[headerSize:]...)
	return tag, salt, ciphertext, nil
}
