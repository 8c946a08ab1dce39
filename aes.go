package passcrypt

import "fmt"

// blockSize is the AES block size in bytes, and the atomic unit of the
// chained mode and the wire format.
const blockSize = 16

// roundsByKeySize maps a master key length to the number of cipher rounds.
var roundsByKeySize = map[int]int{16: 10, 24: 12, 32: 14}

// blockCipher encrypts and decrypts single 16-byte blocks with an expanded
// key schedule. The schedule is immutable after construction, so a single
// blockCipher may be shared by concurrent block operations; each call works
// on its own stack-allocated state.
type blockCipher struct {
	rounds    int
	roundKeys [][blockSize]byte // rounds+1 entries, one per round
}

// newBlockCipher expands key into a full key schedule. The key must be
// 16, 24 or 32 bytes; anything else is a caller bug and panics.
func newBlockCipher(key []byte) *blockCipher {
	rounds, ok := roundsByKeySize[len(key)]
	if !ok {
		panic(fmt.Sprintf("passcrypt: block cipher key must be 16, 24 or 32 bytes, got %d", len(key)))
	}
	return &blockCipher{
		rounds:    rounds,
		roundKeys: expandKey(key, rounds),
	}
}

// expandKey derives rounds+1 round keys from the master key. The schedule
// is built word by word: every nk-th word is rotated, substituted and mixed
// with a round constant; 32-byte keys additionally substitute the word at
// offset 4 within each group of nk.
func expandKey(key []byte, rounds int) [][blockSize]byte {
	nk := len(key) / 4
	totalWords := 4 * (rounds + 1)

	w := make([][4]byte, totalWords)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[i*4:(i+1)*4])
	}

	for i := nk; i < totalWords; i++ {
		word := w[i-1]

		if i%nk == 0 {
			// Rotate left one byte, substitute, fold in the round constant.
			word = [4]byte{word[1], word[2], word[3], word[0]}
			for j := range word {
				word[j] = sbox[word[j]]
			}
			word[0] ^= rcon[i/nk]
		} else if nk == 8 && i%nk == 4 {
			for j := range word {
				word[j] = sbox[word[j]]
			}
		}

		for j := range word {
			word[j] ^= w[i-nk][j]
		}
		w[i] = word
	}

	// Group every four consecutive words into one round key. Word c of
	// round r lands on state column c, so the flat layout is simply the
	// words concatenated.
	roundKeys := make([][blockSize]byte, rounds+1)
	for r := range roundKeys {
		for c := 0; c < 4; c++ {
			copy(roundKeys[r][c*4:c*4+4], w[r*4+c][:])
		}
	}
	return roundKeys
}

// encryptBlock encrypts exactly one 16-byte block. The block length is a
// documented precondition; violating it panics.
func (bc *blockCipher) encryptBlock(plaintext []byte) []byte {
	if len(plaintext) != blockSize {
		panic(fmt.Sprintf("passcrypt: encryptBlock requires a 16-byte block, got %d bytes", len(plaintext)))
	}
	var s [blockSize]byte
	copy(s[:], plaintext)

	addRoundKey(&s, &bc.roundKeys[0])
	for r := 1; r < bc.rounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &bc.roundKeys[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &bc.roundKeys[bc.rounds])

	out := make([]byte, blockSize)
	copy(out, s[:])
	return out
}

// decryptBlock inverts encryptBlock, applying the inverse primitives in
// reverse round-key order. Same 16-byte precondition.
func (bc *blockCipher) decryptBlock(ciphertext []byte) []byte {
	if len(ciphertext) != blockSize {
		panic(fmt.Sprintf("passcrypt: decryptBlock requires a 16-byte block, got %d bytes", len(ciphertext)))
	}
	var s [blockSize]byte
	copy(s[:], ciphertext)

	addRoundKey(&s, &bc.roundKeys[bc.rounds])
	invShiftRows(&s)
	invSubBytes(&s)
	for r := bc.rounds - 1; r > 0; r-- {
		addRoundKey(&s, &bc.roundKeys[r])
		invMixColumns(&s)
		invShiftRows(&s)
		invSubBytes(&s)
	}
	addRoundKey(&s, &bc.roundKeys[0])

	out := make([]byte, blockSize)
	copy(out, s[:])
	return out
}

// The state is a flat 16-byte array in column-major order: state row r,
// column c lives at index 4*c+r. Round keys use the same layout, so
// addRoundKey is a plain byte-wise XOR.

func addRoundKey(s, rk *[blockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

func subBytes(s *[blockSize]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[blockSize]byte) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions. Row r occupies indices
// r, r+4, r+8, r+12 in the column-major layout.
func shiftRows(s *[blockSize]byte) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func invShiftRows(s *[blockSize]byte) {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

func mixColumns(s *[blockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 0x02) ^ gmul(a1, 0x03) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gmul(a1, 0x02) ^ gmul(a2, 0x03) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gmul(a2, 0x02) ^ gmul(a3, 0x03)
		s[4*c+3] = gmul(a0, 0x03) ^ a1 ^ a2 ^ gmul(a3, 0x02)
	}
}

func invMixColumns(s *[blockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		s[4*c+1] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		s[4*c+2] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		s[4*c+3] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// gmul multiplies two elements of GF(2^8) modulo the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}
