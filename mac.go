package passcrypt

import (
	"crypto/hmac"
	"crypto/sha256"
)

// computeTag returns the HMAC-SHA256 tag over salt || ciphertext, binding
// the salt (and through it the derived keys) to the ciphertext.
func computeTag(authKey, salt, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, authKey)
	mac.Write(salt)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// verifyTag recomputes the tag and compares it to candidate in constant
// time, so the comparison leaks nothing about where the tags diverge.
func verifyTag(authKey, salt, ciphertext, candidate []byte) bool {
	expected := computeTag(authKey, salt, ciphertext)
	return hmac.Equal(expected, candidate)
}
