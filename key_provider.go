package passcrypt

import "github.com/awnumar/memguard"

// KeyProvider abstracts master key retrieval for the Codec.
// Implementations must be safe for concurrent use. StaticKeyProvider
// satisfies this requirement.
type KeyProvider interface {
	// MasterKey returns the master key as a locked buffer. The caller owns
	// the buffer and must Destroy it when finished with the key.
	MasterKey() (*memguard.LockedBuffer, error)
}
