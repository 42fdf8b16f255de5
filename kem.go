// kem.go - Saber key encapsulation mechanism: the Fujisaki-Okamoto
// transform over the IND-CPA scheme in indcpa.go.

package saber

import (
	"bytes"
	"io"

	"golang.org/x/crypto/sha3"
)

// PublicKey is a Saber public key.
type PublicKey struct {
	p      *ParameterSet
	packed []byte
	h      [SymSize]byte // sha3-256(packed), cached for encapsulation/decapsulation
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.packed
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, ErrInvalidKeySize
	}

	pk := &PublicKey{
		p:      p,
		packed: make([]byte, len(b)),
		h:      sha3.Sum256(b),
	}
	copy(pk.packed, b)

	return pk, nil
}

// PrivateKey is a Saber private key.
type PrivateKey struct {
	PublicKey
	sk []byte
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey, laid out as
// indcpa-secret-key || public-key || hash(public-key) || z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk...)
	b = append(b, sk.PublicKey.packed...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = make([]byte, p.indcpaSecretKeySize)
	copy(sk.sk, b[:p.indcpaSecretKeySize])

	off := p.indcpaSecretKeySize
	pub, err := p.PublicKeyFromBytes(b[off : off+p.publicKeySize])
	if err != nil {
		return nil, err
	}
	sk.PublicKey = *pub
	off += p.publicKeySize

	if !bytes.Equal(sk.PublicKey.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize

	sk.z = make([]byte, SymSize)
	copy(sk.z, b[off:])

	return sk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet, reading randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	pkBytes, skBytes, err := p.indcpaKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	kp := new(PrivateKey)
	kp.PublicKey.p = p
	kp.PublicKey.packed = pkBytes
	kp.PublicKey.h = sha3.Sum256(pkBytes)
	kp.sk = skBytes

	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a ciphertext and shared secret via the CCA-secure
// key encapsulation mechanism, reading randomness from rng.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var buf [2 * SymSize]byte

	if _, err = io.ReadFull(rng, buf[:SymSize]); err != nil {
		return nil, nil, err
	}
	m := sha3.Sum256(buf[:SymSize]) // don't release raw RNG output
	copy(buf[:SymSize], m[:])
	copy(buf[SymSize:], pk.h[:])

	kr := sha3.Sum512(buf[:])

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, buf[:SymSize], kr[SymSize:], pk.packed)

	hc := sha3.Sum256(cipherText)
	copy(kr[SymSize:], hc[:]) // overwrite coins in kr with H(c)

	ss := sha3.Sum256(kr[:])
	sharedSecret = ss[:]

	return cipherText, sharedSecret, nil
}

// Decapsulate recovers the shared secret for the given ciphertext.
//
// On a malformed (re-encryption mismatch) ciphertext, sharedSecret is a
// value derived from the private key's fallback key z rather than an
// error: implicit rejection is part of Saber's CCA security argument, not
// a failure path.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.cipherTextSize {
		return nil, ErrInvalidCipherTextSize
	}

	var buf [2 * SymSize]byte
	p.indcpaDecrypt(buf[:SymSize], sk.sk, cipherText)
	copy(buf[SymSize:], sk.PublicKey.h[:]) // multitarget countermeasure for coins + contributory KEM

	kr := sha3.Sum512(buf[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, buf[:SymSize], kr[SymSize:], sk.PublicKey.packed)

	fail := verify(cipherText, cmp)

	hc := sha3.Sum256(cipherText)
	copy(kr[SymSize:], hc[:]) // overwrite coins in kr with H(c)

	cmov(kr[:SymSize], sk.z, fail) // overwrite pre-k with z on re-encryption failure

	ss := sha3.Sum256(kr[:])
	return ss[:], nil
}
