package passcrypt

import (
	"fmt"

	"github.com/rbaliyan/config/codec"
)

// Codec wraps an inner codec with passphrase-based authenticated
// encryption. On Encode, the inner codec serializes the value, then the
// result is sealed with Encrypt. On Decode, the data is opened with
// Decrypt, then the inner codec deserializes the plaintext.
//
// The sealed payload inherits Encrypt's ASCII constraint, so the inner
// codec must produce ASCII output (encoding/json does for ASCII values).
//
// Codec is safe for concurrent use if the underlying KeyProvider and inner
// codec are safe for concurrent use.
type Codec struct {
	inner    codec.Codec
	provider KeyProvider
	workload int
	name     string
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithCodecWorkload sets the PBKDF2 iteration count the codec uses for
// both sealing and opening. Non-positive values are ignored.
func WithCodecWorkload(n int) CodecOption {
	return func(c *Codec) {
		if n > 0 {
			c.workload = n
		}
	}
}

// NewCodec creates a sealing codec that wraps the given inner codec.
// The codec name is "sealed:<inner>", e.g. "sealed:json".
// Returns an error if inner or provider is nil.
func NewCodec(inner codec.Codec, provider KeyProvider, opts ...CodecOption) (*Codec, error) {
	if inner == nil {
		return nil, fmt.Errorf("passcrypt: NewCodec inner codec is nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("passcrypt: NewCodec provider is nil")
	}
	c := &Codec{
		inner:    inner,
		provider: provider,
		workload: DefaultWorkload,
		name:     "sealed:" + inner.Name(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name returns the codec name, e.g. "sealed:json".
func (c *Codec) Name() string {
	return c.name
}

// Encode serializes the value using the inner codec, then seals the result.
func (c *Codec) Encode(v any) ([]byte, error) {
	plaintext, err := c.inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("passcrypt: inner encode failed: %w", err)
	}

	key, err := c.provider.MasterKey()
	if err != nil {
		return nil, fmt.Errorf("passcrypt: failed to get master key: %w", err)
	}
	defer key.Destroy()

	return Encrypt(key.Bytes(), plaintext, WithWorkload(c.workload))
}

// Decode opens the blob, then deserializes the plaintext using the inner
// codec.
func (c *Codec) Decode(data []byte, v any) error {
	key, err := c.provider.MasterKey()
	if err != nil {
		return fmt.Errorf("passcrypt: failed to get master key: %w", err)
	}
	defer key.Destroy()

	plaintext, err := Decrypt(key.Bytes(), data, WithWorkload(c.workload))
	if err != nil {
		return fmt.Errorf("passcrypt: decrypt failed: %w", err)
	}

	if err := c.inner.Decode(plaintext, v); err != nil {
		return fmt.Errorf("passcrypt: inner decode failed: %w", err)
	}
	return nil
}
