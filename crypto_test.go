package passcrypt

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rbaliyan/config/codec/json"
)

// testWorkload keeps the KDF cheap in tests; correctness does not depend
// on the iteration count.
const testWorkload = 16

func testEncrypt(t *testing.T, key, plaintext []byte) []byte {
	t.Helper()
	blob, err := Encrypt(key, plaintext, WithWorkload(testWorkload))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	return blob
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("attack at dawn -- bring the ledger")
	for _, size := range []int{16, 24, 32} {
		key := makeKey(size)
		blob := testEncrypt(t, key, plaintext)

		got, err := Decrypt(key, blob, WithWorkload(testWorkload))
		if err != nil {
			t.Fatalf("key size %d: Decrypt: %v", size, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("key size %d: got %q, want %q", size, got, plaintext)
		}
	}
}

func TestEncryptBlobShape(t *testing.T) {
	key := []byte("0123456789abcdef")
	blob, err := Encrypt(key, []byte("hello world"), WithWorkload(1))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	// 32-byte tag + 16-byte salt + one padded block.
	if len(blob) != 64 {
		t.Errorf("blob length %d, want 64", len(blob))
	}

	got, err := Decrypt(key, blob, WithWorkload(1))
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestEncryptBlockAlignedPlaintext(t *testing.T) {
	key := makeKey(16)
	plaintext := []byte("exactly 16 bytes") // forces a full extra padding block

	blob := testEncrypt(t, key, plaintext)
	if got, want := len(blob), headerSize+2*blockSize; got != want {
		t.Errorf("blob length %d, want %d", got, want)
	}

	decrypted, err := Decrypt(key, blob, WithWorkload(testWorkload))
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("got %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptSaltUniqueness(t *testing.T) {
	key := makeKey(16)
	plaintext := []byte("same input")

	blob1 := testEncrypt(t, key, plaintext)
	blob2 := testEncrypt(t, key, plaintext)

	if bytes.Equal(blob1, blob2) {
		t.Error("two encryptions of the same input produced identical blobs")
	}
	if bytes.Equal(blob1[tagSize:headerSize], blob2[tagSize:headerSize]) {
		t.Error("two encryptions reused the same salt")
	}
}

func TestDecryptTamperDetection(t *testing.T) {
	key := makeKey(16)
	blob := testEncrypt(t, key, []byte("integrity matters"))

	// One flipped bit in each region of the blob: tag, salt, ciphertext.
	for _, offset := range []int{0, tagSize - 1, tagSize, headerSize - 1, headerSize, len(blob) - 1} {
		tampered := append([]byte(nil), blob...)
		tampered[offset] ^= 0x01

		_, err := Decrypt(key, tampered, WithWorkload(testWorkload))
		if !IsIntegrityFailure(err) {
			t.Errorf("offset %d: expected ErrIntegrityFailure, got %v", offset, err)
		}
	}
}

func TestDecryptWrongKey(t *testing.T) {
	blob := testEncrypt(t, makeKey(16), []byte("secret"))

	wrongKey := makeKey(16)
	wrongKey[0] ^= 0xff
	_, err := Decrypt(wrongKey, blob, WithWorkload(testWorkload))
	if !IsIntegrityFailure(err) {
		t.Errorf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestDecryptWorkloadMismatch(t *testing.T) {
	key := makeKey(16)
	blob := testEncrypt(t, key, []byte("secret"))

	_, err := Decrypt(key, blob, WithWorkload(testWorkload+1))
	if !IsIntegrityFailure(err) {
		t.Errorf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestKeyLengthValidation(t *testing.T) {
	plaintext := []byte("hi")
	blob := testEncrypt(t, makeKey(16), plaintext)

	for _, size := range []int{8, 15, 17, 33} {
		key := makeKey(size)
		if _, err := Encrypt(key, plaintext); !IsInvalidKeyLength(err) {
			t.Errorf("Encrypt with %d-byte key: expected ErrInvalidKeyLength, got %v", size, err)
		}
		if _, err := Decrypt(key, blob); !IsInvalidKeyLength(err) {
			t.Errorf("Decrypt with %d-byte key: expected ErrInvalidKeyLength, got %v", size, err)
		}
	}

	if _, err := Encrypt(nil, plaintext); !IsEmptyKey(err) {
		t.Errorf("Encrypt with nil key: expected ErrEmptyKey, got %v", err)
	}
	if _, err := Decrypt([]byte{}, blob); !IsEmptyKey(err) {
		t.Errorf("Decrypt with empty key: expected ErrEmptyKey, got %v", err)
	}
}

func TestEncryptEmptyMessage(t *testing.T) {
	if _, err := Encrypt(makeKey(16), nil); !IsEmptyMessage(err) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestDecryptEmptyBlob(t *testing.T) {
	if _, err := Decrypt(makeKey(16), nil); !IsEmptyMessage(err) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestEncryptRejectsNonASCII(t *testing.T) {
	for _, plaintext := range []string{"héllo", "naïve", "日本語", "ok until \x80"} {
		_, err := Encrypt(makeKey(16), []byte(plaintext))
		if !IsUnsupportedMessage(err) {
			t.Errorf("%q: expected ErrUnsupportedMessage, got %v", plaintext, err)
		}
	}
}

func TestDecryptMalformedBlob(t *testing.T) {
	key := makeKey(16)

	// Header alone, no ciphertext block.
	if _, err := Decrypt(key, make([]byte, headerSize)); !IsInvalidFormat(err) {
		t.Errorf("header-only blob: expected ErrInvalidFormat, got %v", err)
	}

	// Misaligned ciphertext segment.
	if _, err := Decrypt(key, make([]byte, minBlobSize+5)); !IsInvalidFormat(err) {
		t.Errorf("misaligned blob: expected ErrInvalidFormat, got %v", err)
	}

	// Truncated mid-ciphertext.
	blob := testEncrypt(t, key, bytes.Repeat([]byte{0x41}, 40))
	if _, err := Decrypt(key, blob[:len(blob)-3], WithWorkload(testWorkload)); !IsInvalidFormat(err) {
		t.Errorf("truncated blob: expected ErrInvalidFormat, got %v", err)
	}
}

func TestEncryptDecryptConcurrent(t *testing.T) {
	key := makeKey(32)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			plaintext := []byte(strings.Repeat("x", n+1))
			blob, err := Encrypt(key, plaintext, WithWorkload(testWorkload))
			if err != nil {
				t.Errorf("Encrypt(%d): %v", n, err)
				return
			}
			got, err := Decrypt(key, blob, WithWorkload(testWorkload))
			if err != nil {
				t.Errorf("Decrypt(%d): %v", n, err)
				return
			}
			if !bytes.Equal(got, plaintext) {
				t.Errorf("round trip %d: got %q", n, got)
			}
		}(i)
	}
	wg.Wait()
}

func TestEncryptedBlobHidesPlaintext(t *testing.T) {
	plaintext := []byte("top secret payload")
	blob := testEncrypt(t, makeKey(16), plaintext)
	if bytes.Contains(blob, plaintext) {
		t.Error("blob contains the plaintext")
	}
}

// --- Codec adapter ---

func testProvider(t *testing.T) *StaticKeyProvider {
	t.Helper()
	p, err := NewStaticKeyProvider(makeKey(32))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(json.New(), testProvider(t), WithCodecWorkload(testWorkload))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestCodecName(t *testing.T) {
	c := testCodec(t)
	if c.Name() != "sealed:json" {
		t.Errorf("Name(): got %q, want %q", c.Name(), "sealed:json")
	}
}

func TestCodecRoundTripString(t *testing.T) {
	c := testCodec(t)

	data, err := c.Encode("hello world")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if bytes.Contains(data, []byte("hello world")) {
		t.Error("sealed data contains plaintext")
	}

	var got string
	if err := c.Decode(data, &got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Decode: got %q, want %q", got, "hello world")
	}
}

func TestCodecRoundTripStruct(t *testing.T) {
	type Credentials struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}

	c := testCodec(t)
	original := Credentials{User: "svc-backup", Pass: "hunter2"}

	data, err := c.Encode(original)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got Credentials
	if err := c.Decode(data, &got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != original {
		t.Errorf("Decode: got %+v, want %+v", got, original)
	}
}

func TestCodecTamperedData(t *testing.T) {
	c := testCodec(t)

	data, err := c.Encode("secret")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data[len(data)-1] ^= 0xff

	var got string
	err = c.Decode(data, &got)
	if !IsIntegrityFailure(err) {
		t.Errorf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestNewCodecValidation(t *testing.T) {
	if _, err := NewCodec(nil, testProvider(t)); err == nil {
		t.Error("expected error for nil inner codec")
	}
	if _, err := NewCodec(json.New(), nil); err == nil {
		t.Error("expected error for nil provider")
	}
}
