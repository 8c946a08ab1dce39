/*
Package passcrypt implements passphrase-based authenticated encryption
built on a from-scratch AES implementation.

Each call to Encrypt generates a fresh random 16-byte salt and stretches
the master key with PBKDF2-HMAC-SHA256 into three independent 16-byte
values: an AES-128 cipher key, an HMAC key and a CBC initialization
vector. The plaintext is encrypted with AES in CBC mode with PKCS#7
padding, and an HMAC-SHA256 tag over the salt and ciphertext seals the
result. The output blob is:

	tag (32 bytes) || salt (16 bytes) || ciphertext (N x 16 bytes)

Decrypt verifies the tag in constant time before touching the ciphertext,
so tampered blobs and wrong keys are rejected uniformly with
ErrIntegrityFailure.

Master keys must be 16, 24 or 32 bytes (the AES cipher runs 10, 12 or 14
rounds accordingly), and plaintexts must be non-empty ASCII.

Basic usage:

	key := []byte("0123456789abcdef")

	blob, err := passcrypt.Encrypt(key, []byte("hello world"))
	if err != nil {
		panic(err)
	}

	plaintext, err := passcrypt.Decrypt(key, blob)
	if err != nil {
		panic(err)
	}

The PBKDF2 iteration count defaults to DefaultWorkload and can be tuned
per call with WithWorkload; both sides of a blob must agree on it.

For use with the config framework, Codec wraps any inner codec.Codec with
this scheme, keeping the master key sealed in a memguard enclave between
operations:

	provider, err := passcrypt.NewStaticKeyProvider(key)
	sealed, err := passcrypt.NewCodec(codec.JSON(), provider)
*/
package passcrypt
