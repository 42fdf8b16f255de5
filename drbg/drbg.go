// Package drbg implements the deterministic AES-256-CTR random bit
// generator used by Saber's test vectors and by callers that want
// reproducible key material. It follows the no-derivation-function,
// no-prediction-resistance CTR_DRBG shape from NIST SP 800-90A, seeded via
// Reseed rather than any entropy source of its own.
package drbg

import (
	"crypto/aes"
	"encoding/binary"
)

// DRBG is an AES-256-CTR deterministic random bit generator. The zero value
// is usable, but until Reseed is called it produces the fixed keystream of
// an all-zero key and counter, the same for every zero-valued DRBG.
type DRBG struct {
	key           [32]byte
	v             [16]byte
	reseedCounter int32
}

// New returns a DRBG seeded with entropy, a 48-byte CTR_DRBG
// "entropy_input" value.
func New(entropy [48]byte) *DRBG {
	d := new(DRBG)
	d.Reseed(entropy)
	return d
}

// Reseed resets the generator's internal state and re-derives key and v
// from entropy, a 48-byte seed.
func (d *DRBG) Reseed(entropy [48]byte) {
	d.key = [32]byte{}
	d.v = [16]byte{}
	d.reseedCounter = 1

	ctrUpdate(&entropy, &d.key, &d.v)
	d.reseedCounter = 1
}

// Read fills x with pseudo-random bytes derived from the generator's
// current state, advancing that state. It never returns an error.
func (d *DRBG) Read(x []byte) (int, error) {
	n := len(x)
	for off := 0; off < n; off += 16 {
		incrementCounter(&d.v)

		var block [16]byte
		aes256ECB(&d.key, &d.v, &block)

		end := off + 16
		if end > n {
			end = n
		}
		copy(x[off:end], block[:end-off])
	}

	ctrUpdate(nil, &d.key, &d.v)
	d.reseedCounter++

	return n, nil
}

// aes256ECB encrypts the single 16-byte block ctr under key, writing the
// result into buffer. This is AES used as a single-block permutation, not
// the CTR construction itself -- the counter-mode bookkeeping lives in
// incrementCounter/ctrUpdate/Read.
func aes256ECB(key *[32]byte, ctr *[16]byte, buffer *[16]byte) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// key is always exactly 32 bytes; aes.NewCipher only fails on bad
		// key length.
		panic(err)
	}
	block.Encrypt(buffer[:], ctr[:])
}

// incrementCounter treats v as a 128-bit big-endian counter and adds one.
func incrementCounter(v *[16]byte) {
	hi := binary.BigEndian.Uint64(v[:8])
	lo := binary.BigEndian.Uint64(v[8:])
	lo++
	if lo == 0 {
		hi++
	}
	binary.BigEndian.PutUint64(v[:8], hi)
	binary.BigEndian.PutUint64(v[8:], lo)
}

// ctrUpdate advances key and v by running three rounds of AES in counter
// mode and, if providedData is non-nil, XORing it into the result -- the
// CTR_DRBG "update" primitive, used both to fold in fresh entropy
// (Reseed) and for backtracking resistance after every Read.
func ctrUpdate(providedData *[48]byte, key *[32]byte, v *[16]byte) {
	var temp [3][16]byte

	for i := 0; i < 3; i++ {
		incrementCounter(v)
		aes256ECB(key, v, &temp[i])
	}

	if providedData != nil {
		for j := 0; j < 3; j++ {
			for i := 0; i < 16; i++ {
				temp[j][i] ^= providedData[16*j+i]
			}
		}
	}

	copy(key[0:16], temp[0][:])
	copy(key[16:32], temp[1][:])
	copy(v[:], temp[2][:])
}
