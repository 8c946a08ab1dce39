package passcrypt

import "fmt"

// encryptCBC encrypts plaintext in CBC mode with PKCS#7 padding. The iv
// must be one block long; it is a precondition, the caller derives it.
func encryptCBC(bc *blockCipher, plaintext, iv []byte) []byte {
	if len(iv) != blockSize {
		panic(fmt.Sprintf("passcrypt: CBC iv must be %d bytes, got %d", blockSize, len(iv)))
	}

	padded := pad(plaintext)
	out := make([]byte, 0, len(padded))

	chain := iv
	for i := 0; i < len(padded); i += blockSize {
		block := make([]byte, blockSize)
		for j := 0; j < blockSize; j++ {
			block[j] = padded[i+j] ^ chain[j]
		}
		block = bc.encryptBlock(block)
		out = append(out, block...)
		chain = block
	}
	return out
}

// decryptCBC decrypts ciphertext in CBC mode and strips PKCS#7 padding.
// The ciphertext must be a positive multiple of the block size; the caller
// validates that before any key derivation happens.
func decryptCBC(bc *blockCipher, ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != blockSize {
		panic(fmt.Sprintf("passcrypt: CBC iv must be %d bytes, got %d", blockSize, len(iv)))
	}
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		panic(fmt.Sprintf("passcrypt: CBC ciphertext must be a positive multiple of %d bytes, got %d", blockSize, len(ciphertext)))
	}

	out := make([]byte, 0, len(ciphertext))
	chain := iv
	for i := 0; i < len(ciphertext); i += blockSize {
		block := ciphertext[i : i+blockSize]
		plain := bc.decryptBlock(block)
		for j := 0; j < blockSize; j++ {
			plain[j] ^= chain[j]
		}
		out = append(out, plain...)
		chain = block
	}
	return unpad(out)
}

// pad appends PKCS#7 padding: n bytes of value n, where n is the distance
// to the next block boundary. Block-aligned input gains a full block.
func pad(data []byte) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// unpad validates and strips PKCS#7 padding. The declared pad length must
// be in [1, blockSize] and every pad byte must equal it.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPadding)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: declared length %d", ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if b != byte(n) {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}
