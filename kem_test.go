// kem_test.go - Saber KEM round-trip and negative tests.

package saber

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSk(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
		t.Run(p.Name()+"_Invalid_CipherTextSize", func(t *testing.T) { doTestKEMInvalidCipherTextSize(t, p) })
	}
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())

	for i := 0; i < nTests; i++ {
		pk, sk, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := p.PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := p.PublicKeyFromBytes(b)
		require.NoError(err, "PublicKeyFromBytes(b)")
		requirePublicKeyEqual(require, pk, pk2)

		ct, ss, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")
		require.Len(ct, p.CipherTextSize(), "Encapsulate(): ct Length")
		require.Len(ss, SymSize, "Encapsulate(): ss Length")

		ss2, err := sk.Decapsulate(ct)
		require.NoError(err, "Decapsulate()")
		require.Equal(ss, ss2, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidSk(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")

		_, err = rand.Read(skA.sk)
		require.NoError(err, "rand.Read()")

		keyA, err := skA.Decapsulate(sendB)
		require.NoError(err, "Decapsulate()")
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")

		sendB[pos%ciphertextSize] ^= 23

		keyA, err := skA.Decapsulate(sendB)
		require.NoError(err, "Decapsulate()")
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidCipherTextSize(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	_, skA, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair()")

	_, err = skA.Decapsulate(make([]byte, p.CipherTextSize()-1))
	require.ErrorIs(err, ErrInvalidCipherTextSize)
}

func requirePrivateKeyEqual(require *require.Assertions, a, b *PrivateKey) {
	require.Equal(a.sk, b.sk, "sk (indcpa secret key)")
	require.Equal(a.z, b.z, "z (fallback key)")
	requirePublicKeyEqual(require, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(require *require.Assertions, a, b *PublicKey) {
	require.Equal(a.packed, b.packed, "packed (indcpa public key)")
	require.Equal(a.p, b.p, "p (ParameterSet)")
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_Encapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_Decapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	for i := 0; i < b.N; i++ {
		_, _, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		if err != nil {
			b.Fatalf("Encapsulate(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		keyA, err := skA.Decapsulate(sendB)
		if err != nil {
			b.Fatalf("Decapsulate(): %v", err)
		}
		if !isEnc {
			b.StopTimer()
		}

		if !bytes.Equal(keyA, keyB) {
			b.Fatalf("Decapsulate(): key mismatch")
		}
	}
}
