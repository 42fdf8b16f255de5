// params.go - Saber parameterization.

package saber

const (
	// SymSize is the size of the shared secret (and the internal seeds,
	// hashes, and fallback keys derived alongside it) in bytes.
	SymSize = 32

	saberN  = 256
	saberEQ = 13
	saberEP = 10
)

var (
	// LightSaber is the L=2 Saber parameter set, the lowest-rank variant.
	//
	// This parameter set has a 1568 byte private key, 672 byte public key,
	// and a 736 byte cipher text.
	LightSaber = newParameterSet("LightSaber", 2)

	// Saber is the L=3 Saber parameter set, the middle-rank variant. No
	// parameter set is selected implicitly: callers name one of the three
	// package values.
	//
	// This parameter set has a 2304 byte private key, 992 byte public key,
	// and a 1088 byte cipher text.
	Saber = newParameterSet("Saber", 3)

	// FireSaber is the L=4 Saber parameter set, the highest-rank variant.
	//
	// This parameter set has a 3040 byte private key, 1312 byte public key,
	// and a 1472 byte cipher text.
	FireSaber = newParameterSet("FireSaber", 4)

	allParams = []*ParameterSet{LightSaber, Saber, FireSaber}
)

// ParameterSet is a Saber parameter set, selected by module rank L.
type ParameterSet struct {
	name string

	l  int
	et int
	mu int

	polyBytes              int
	polyCompressedBytes    int
	scaleBytesKEM          int
	polyVecBytes           int
	polyVecCompressedBytes int
	polyCoinBytes          int

	indcpaPublicKeySize int
	indcpaSecretKeySize int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int

	h1 uint16
	h2 uint16
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// Rank returns the module rank L of a given ParameterSet.
func (p *ParameterSet) Rank() int {
	return p.l
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

// SharedSecretSize returns the size of a shared secret in bytes. This is
// always SymSize regardless of parameter set.
func (p *ParameterSet) SharedSecretSize() int {
	return SymSize
}

func newParameterSet(name string, l int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.l = l
	switch l {
	case 2:
		p.mu = 10
		p.et = 3
	case 3:
		p.mu = 8
		p.et = 4
	case 4:
		p.mu = 6
		p.et = 6
	default:
		panic("saber: l must be in {2,3,4}")
	}

	p.polyBytes = saberEQ * saberN / 8
	p.polyCompressedBytes = saberEP * saberN / 8
	p.scaleBytesKEM = p.et * saberN / 8
	p.polyVecBytes = l * p.polyBytes
	p.polyVecCompressedBytes = l * p.polyCompressedBytes
	p.polyCoinBytes = p.mu * saberN / 8

	p.indcpaPublicKeySize = p.polyVecCompressedBytes + SymSize
	p.indcpaSecretKeySize = p.polyVecBytes

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + SymSize + SymSize
	p.cipherTextSize = p.polyVecCompressedBytes + p.scaleBytesKEM

	p.h1 = uint16(1) << (saberEQ - saberEP - 1)
	p.h2 = (uint16(1) << (saberEP - 2)) - (uint16(1) << (saberEP - p.et - 1)) + (uint16(1) << (saberEQ - saberEP - 1))

	return &p
}
