// polyvec.go - Module vectors: matrix/vector generation and products.

package saber

import "golang.org/x/crypto/sha3"

// polVecQ2BS serializes an L-length vector of polynomials into dst (one
// polyBytes chunk per entry), which must have length polyVecBytes.
func polVecQ2BS(ps *ParameterSet, dst []byte, vec []poly) {
	for i := 0; i < ps.l; i++ {
		polQ2BS(dst[i*ps.polyBytes:(i+1)*ps.polyBytes], &vec[i])
	}
}

// bs2polVecQ is the inverse of polVecQ2BS.
func bs2polVecQ(ps *ParameterSet, vec []poly, src []byte) {
	for i := 0; i < ps.l; i++ {
		bs2polQ(&vec[i], src[i*ps.polyBytes:(i+1)*ps.polyBytes])
	}
}

// polVecP2BS serializes an L-length vector of polynomials into dst (one
// polyCompressedBytes chunk per entry), which must have length
// polyVecCompressedBytes.
func polVecP2BS(ps *ParameterSet, dst []byte, vec []poly) {
	for i := 0; i < ps.l; i++ {
		polP2BS(dst[i*ps.polyCompressedBytes:(i+1)*ps.polyCompressedBytes], &vec[i])
	}
}

// bs2polVecP is the inverse of polVecP2BS.
func bs2polVecP(ps *ParameterSet, vec []poly, src []byte) {
	for i := 0; i < ps.l; i++ {
		bs2polP(&vec[i], src[i*ps.polyCompressedBytes:(i+1)*ps.polyCompressedBytes])
	}
}

// matrixVectorMul computes a*s (or a^t*s if transpose is set), where a is
// an L-by-L matrix of polynomials stored row-major (a[i*l+j] is row i,
// column j) and s is a length-L vector. The product accumulates into res,
// which must already be zeroed.
func matrixVectorMul(ps *ParameterSet, a []poly, s []poly, res []poly, transpose bool) {
	l := ps.l
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			if transpose {
				polyMulAcc(&a[j*l+i], &s[j], &res[i])
			} else {
				polyMulAcc(&a[i*l+j], &s[j], &res[i])
			}
		}
	}
}

// innerProd computes the scalar product of length-L vectors b and s,
// accumulating into res, which must already be zeroed.
func innerProd(ps *ParameterSet, b []poly, s []poly, res *poly) {
	for j := 0; j < ps.l; j++ {
		polyMulAcc(&b[j], &s[j], res)
	}
}

// genMatrix expands seed (SymSize bytes) via SHAKE128 into the public L-by-L
// matrix A used by both key generation and encryption, returned row-major.
func genMatrix(ps *ParameterSet, seed []byte) []poly {
	buf := make([]byte, ps.l*ps.polyVecBytes)
	h := sha3.NewShake128()
	h.Write(seed)
	h.Read(buf)

	a := make([]poly, ps.l*ps.l)
	row := make([]poly, ps.l)
	for i := 0; i < ps.l; i++ {
		bs2polVecQ(ps, row, buf[i*ps.polyVecBytes:(i+1)*ps.polyVecBytes])
		copy(a[i*ps.l:(i+1)*ps.l], row)
	}
	return a
}

// genSecret expands seed (SymSize bytes) via SHAKE128 into a length-L
// vector of centered-binomial secret polynomials.
func genSecret(ps *ParameterSet, seed []byte) []poly {
	buf := make([]byte, ps.l*ps.polyCoinBytes)
	h := sha3.NewShake128()
	h.Write(seed)
	h.Read(buf)

	s := make([]poly, ps.l)
	for i := 0; i < ps.l; i++ {
		cbd(ps, &s[i], buf[i*ps.polyCoinBytes:(i+1)*ps.polyCoinBytes])
	}
	return s
}
