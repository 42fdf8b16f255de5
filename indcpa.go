// indcpa.go - Saber IND-CPA public-key encryption (the base scheme the
// KEM's Fujisaki-Okamoto transform builds on).

package saber

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// shake128Sum returns the first outLen bytes of SHAKE128(data).
func shake128Sum(data []byte, outLen int) []byte {
	h := sha3.NewShake128()
	h.Write(data)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// indcpaKeyPair generates a public/secret keypair for the CPA-secure
// encryption scheme underlying Saber, reading randomness from rng.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (pk, sk []byte, err error) {
	seedA := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, seedA); err != nil {
		return nil, nil, err
	}
	seedA = shake128Sum(seedA, SymSize) // don't reveal the RNG's raw output

	seedS := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, seedS); err != nil {
		return nil, nil, err
	}

	a := genMatrix(p, seedA)
	s := genSecret(p, seedS)

	b := make([]poly, p.l)
	matrixVectorMul(p, a, s, b, true)
	for i := range b {
		for j := range b[i].coeffs {
			b[i].coeffs[j] = (b[i].coeffs[j] + p.h1) >> (saberEQ - saberEP)
		}
	}

	sk = make([]byte, p.indcpaSecretKeySize)
	polVecQ2BS(p, sk, s)

	pk = make([]byte, p.indcpaPublicKeySize)
	polVecP2BS(p, pk[:p.polyVecCompressedBytes], b)
	copy(pk[p.polyVecCompressedBytes:], seedA)

	return pk, sk, nil
}

// indcpaEncrypt encrypts the SymSize-byte message m under public key pk,
// using seedSP as the source of randomization (the caller derives it
// deterministically as part of the KEM's Fujisaki-Okamoto transform).
// ciphertext must have length p.cipherTextSize.
func (p *ParameterSet) indcpaEncrypt(ciphertext, m, seedSP, pk []byte) {
	seedA := pk[p.polyVecCompressedBytes : p.polyVecCompressedBytes+SymSize]

	a := genMatrix(p, seedA)
	sp := genSecret(p, seedSP)

	bp := make([]poly, p.l)
	matrixVectorMul(p, a, sp, bp, false)
	for i := range bp {
		for j := range bp[i].coeffs {
			bp[i].coeffs[j] = (bp[i].coeffs[j] + p.h1) >> (saberEQ - saberEP)
		}
	}
	polVecP2BS(p, ciphertext[:p.polyVecCompressedBytes], bp)

	b := make([]poly, p.l)
	bs2polVecP(p, b, pk[:p.polyVecCompressedBytes])

	var vp poly
	innerProd(p, b, sp, &vp)

	var mp poly
	bs2polMsg(&mp, m)

	for j := range vp.coeffs {
		vp.coeffs[j] = (vp.coeffs[j] - (mp.coeffs[j] << (saberEP - 1)) + p.h1) >> (saberEP - p.et)
	}

	polT2BS(p, ciphertext[p.polyVecCompressedBytes:], &vp)
}

// indcpaDecrypt decrypts ciphertext under secret key sk, writing the
// recovered SymSize-byte message into m.
func (p *ParameterSet) indcpaDecrypt(m, sk, ciphertext []byte) {
	s := make([]poly, p.l)
	bs2polVecQ(p, s, sk)

	b := make([]poly, p.l)
	bs2polVecP(p, b, ciphertext[:p.polyVecCompressedBytes])

	var v poly
	innerProd(p, b, s, &v)

	var cm poly
	bs2polT(p, &cm, ciphertext[p.polyVecCompressedBytes:])

	for i := range v.coeffs {
		v.coeffs[i] = (v.coeffs[i] + (p.h2 - (cm.coeffs[i] << (saberEP - p.et)))) >> (saberEP - 1)
	}

	polMsg2BS(m, &v)
}
