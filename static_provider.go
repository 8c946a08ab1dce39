package passcrypt

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// StaticKeyProvider is a KeyProvider backed by a single in-memory master
// key, sealed in a memguard enclave between uses. It is safe for
// concurrent use.
type StaticKeyProvider struct {
	enclave *memguard.Enclave
}

// NewStaticKeyProvider creates a KeyProvider holding the given master key.
// The key must be 16, 24 or 32 bytes. Key bytes are copied internally; the
// caller may safely zero the original after construction.
func NewStaticKeyProvider(key []byte) (*StaticKeyProvider, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if _, ok := roundsByKeySize[len(key)]; !ok {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	b := make([]byte, len(key))
	copy(b, key)
	// NewEnclave wipes b after sealing; the caller's slice is untouched.
	return &StaticKeyProvider{enclave: memguard.NewEnclave(b)}, nil
}

// MasterKey opens the enclave and returns the key in a locked buffer.
func (p *StaticKeyProvider) MasterKey() (*memguard.LockedBuffer, error) {
	return p.enclave.Open()
}

// Compile-time interface check.
var _ KeyProvider = (*StaticKeyProvider)(nil)
