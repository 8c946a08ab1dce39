package passcrypt

import (
	"crypto/sha256"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// cipherKeySize is the AES-128 key extracted from the stretched output.
	cipherKeySize = 16

	// authKeySize is the HMAC key extracted from the stretched output.
	authKeySize = 16

	// ivSize is the CBC initialization vector extracted from the stretched output.
	ivSize = 16

	// derivedSize is the total PBKDF2 output consumed per call.
	derivedSize = cipherKeySize + authKeySize + ivSize

	// DefaultWorkload is the default PBKDF2 iteration count. Override it
	// per call with WithWorkload.
	DefaultWorkload = 100000
)

// derivedKeys is one call's worth of stretched key material, held in a
// locked buffer so it can be wiped as soon as the call completes. Never
// persisted, never reused across salts.
type derivedKeys struct {
	buf *memguard.LockedBuffer
}

// deriveKeys stretches the password and salt with PBKDF2-HMAC-SHA256 into
// cipher key, authentication key and IV, in that order. The workload is
// the caller-tunable cost factor.
func deriveKeys(password, salt []byte, workload int) *derivedKeys {
	material := pbkdf2.Key(password, salt, workload, derivedSize, sha256.New)
	// NewBufferFromBytes wipes the intermediate slice after copying.
	return &derivedKeys{buf: memguard.NewBufferFromBytes(material)}
}

func (d *derivedKeys) cipherKey() []byte {
	return d.buf.Bytes()[:cipherKeySize]
}

func (d *derivedKeys) authKey() []byte {
	return d.buf.Bytes()[cipherKeySize : cipherKeySize+authKeySize]
}

func (d *derivedKeys) iv() []byte {
	return d.buf.Bytes()[cipherKeySize+authKeySize:]
}

// destroy wipes and releases the key material.
func (d *derivedKeys) destroy() {
	d.buf.Destroy()
}
