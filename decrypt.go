package passcrypt

import "fmt"

// Decrypt authenticates and decrypts a blob produced by Encrypt, returning
// the original plaintext.
//
// The authentication tag is verified in constant time before any block is
// decrypted; a mismatch (tampering or a wrong key, indistinguishably)
// yields ErrIntegrityFailure. The workload must match the one used to
// encrypt.
func Decrypt(key, blob []byte, opts ...Option) (plaintext []byte, err error) {
	defer func() { recordDecrypt(err) }()

	if err := validateDecryptInputs(key, blob); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	tag, salt, ciphertext, err := splitBlob(blob)
	if err != nil {
		return nil, err
	}

	keys := deriveKeys(key, salt, o.workload)
	defer keys.destroy()

	if !verifyTag(keys.authKey(), salt, ciphertext, tag) {
		return nil, ErrIntegrityFailure
	}

	return decryptCBC(newBlockCipher(keys.cipherKey()), ciphertext, keys.iv())
}

// validateDecryptInputs rejects bad inputs before any cryptographic work.
// Blob structure is checked separately by splitBlob.
func validateDecryptInputs(key, blob []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if len(blob) == 0 {
		return ErrEmptyMessage
	}
	if _, ok := roundsByKeySize[len(key)]; !ok {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	return nil
}
