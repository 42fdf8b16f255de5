// kem_vectors_test.go - Deterministic-RNG regression test: seeding the
// reference DRBG with entropy = [0, 1, ..., 47] and running a full KEM
// round trip must produce matching encapsulated/decapsulated shared
// secrets (the NIST KAT contract), for every parameter set.

package saber

import (
	"bytes"
	"testing"

	"github.com/oscuro-labs/saber/drbg"
)

func increasingEntropy() [48]byte {
	var e [48]byte
	for i := range e {
		e[i] = byte(i)
	}
	return e
}

func TestKATDeterminism(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			rng := drbg.New(increasingEntropy())

			pk, sk, err := p.GenerateKeyPair(rng)
			if err != nil {
				t.Fatalf("GenerateKeyPair(): %v", err)
			}

			ct, kEnc, err := pk.Encapsulate(rng)
			if err != nil {
				t.Fatalf("Encapsulate(): %v", err)
			}

			kDec, err := sk.Decapsulate(ct)
			if err != nil {
				t.Fatalf("Decapsulate(): %v", err)
			}

			if !bytes.Equal(kEnc, kDec) {
				t.Fatalf("k_enc != k_dec: %x != %x", kEnc, kDec)
			}

			// Re-running with an identically-seeded DRBG must reproduce the
			// exact same public and private keys.
			rng2 := drbg.New(increasingEntropy())
			pk2, sk2, err := p.GenerateKeyPair(rng2)
			if err != nil {
				t.Fatalf("GenerateKeyPair(): %v", err)
			}
			if !bytes.Equal(pk.Bytes(), pk2.Bytes()) {
				t.Fatalf("public key not reproducible from identical seed")
			}
			if !bytes.Equal(sk.Bytes(), sk2.Bytes()) {
				t.Fatalf("private key not reproducible from identical seed")
			}
		})
	}
}
