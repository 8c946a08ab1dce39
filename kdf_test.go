package passcrypt

import (
	"bytes"
	"testing"
)

// RFC 7914 section 11 PBKDF2-HMAC-SHA256 vectors. PBKDF2 output is a
// prefix-stable stream, so the first 32 derived bytes (cipher key plus
// auth key) must match the published 32-byte outputs.
func TestDeriveKeysKnownAnswers(t *testing.T) {
	cases := []struct {
		workload int
		want     string
	}{
		{1, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{4096, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}
	for _, tc := range cases {
		keys := deriveKeys([]byte("password"), []byte("salt"), tc.workload)
		got := append(append([]byte(nil), keys.cipherKey()...), keys.authKey()...)
		keys.destroy()

		want := fromHex(t, tc.want)
		if !bytes.Equal(got, want) {
			t.Errorf("workload %d: got %x, want %x", tc.workload, got, want)
		}
	}
}

func TestDeriveKeysPartition(t *testing.T) {
	keys := deriveKeys([]byte("password"), []byte("salt"), 1)
	defer keys.destroy()

	if len(keys.cipherKey()) != cipherKeySize {
		t.Errorf("cipher key length %d, want %d", len(keys.cipherKey()), cipherKeySize)
	}
	if len(keys.authKey()) != authKeySize {
		t.Errorf("auth key length %d, want %d", len(keys.authKey()), authKeySize)
	}
	if len(keys.iv()) != ivSize {
		t.Errorf("iv length %d, want %d", len(keys.iv()), ivSize)
	}

	// The three segments partition the 48-byte output in order.
	full := keys.buf.Bytes()
	if !bytes.Equal(keys.cipherKey(), full[:16]) ||
		!bytes.Equal(keys.authKey(), full[16:32]) ||
		!bytes.Equal(keys.iv(), full[32:]) {
		t.Error("derived segments are not an in-order partition")
	}
}

func TestDeriveKeysSaltChangesOutput(t *testing.T) {
	a := deriveKeys([]byte("password"), []byte("salt-a"), 1)
	defer a.destroy()
	b := deriveKeys([]byte("password"), []byte("salt-b"), 1)
	defer b.destroy()

	if bytes.Equal(a.cipherKey(), b.cipherKey()) {
		t.Error("different salts produced identical cipher keys")
	}
	if bytes.Equal(a.iv(), b.iv()) {
		t.Error("different salts produced identical IVs")
	}
}

func TestDeriveKeysWorkloadChangesOutput(t *testing.T) {
	a := deriveKeys([]byte("password"), []byte("salt"), 1)
	defer a.destroy()
	b := deriveKeys([]byte("password"), []byte("salt"), 2)
	defer b.destroy()

	if bytes.Equal(a.cipherKey(), b.cipherKey()) {
		t.Error("different workloads produced identical cipher keys")
	}
}
