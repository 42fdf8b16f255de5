// toomcook.go - Polynomial multiplication: Toom-Cook-4 composed with a
// 2-level Karatsuba, over Z/2^16, with negacyclic reduction.

package saber

const (
	nSB    = saberN >> 2   // 64
	nSBRes = 2*nSB - 1     // 127
	kn     = 64            // karatsuba split width
)

// karatsubaSimple multiplies two length-64 polynomials a1, b1 and writes
// the length-127 product into resultFinal, which must be zeroed on entry:
// the combine stages read resultFinal back, so prior contents do not simply
// accumulate with the product. It is a nested
// 2-level Karatsuba split: four half-products, three sums-of-sums, and the
// classic subtraction-based combine at each level.
func karatsubaSimple(a1, b1 [nSB]uint16, resultFinal []uint16) {
	var d01 [kn/2 - 1]uint16
	var d0123 [kn/2 - 1]uint16
	var d23 [kn/2 - 1]uint16
	var resultD01 [kn - 1]uint16

	for i := 0; i < kn/4; i++ {
		acc1 := a1[i]             // a0
		acc2 := a1[i+kn/4]        // a1
		acc3 := a1[i+2*kn/4]      // a2
		acc4 := a1[i+3*kn/4]      // a3

		for j := 0; j < kn/4; j++ {
			acc5 := b1[j]      // b0
			acc6 := b1[j+kn/4] // b1

			resultFinal[i+j] += acc1 * acc5
			resultFinal[i+j+2*kn/4] += acc2 * acc6

			acc7 := acc5 + acc6 // b01
			acc8 := acc1 + acc2 // a01
			d01[i+j] += acc7 * acc8

			acc7 = b1[j+2*kn/4] // b2
			acc8 = b1[j+3*kn/4] // b3
			resultFinal[i+j+kn] += acc7 * acc3
			resultFinal[i+j+6*kn/4] += acc8 * acc4

			acc9 := acc3 + acc4
			acc10 := acc7 + acc8
			d23[i+j] += acc9 * acc10

			acc5 += acc7 // b02
			acc7 = acc1 + acc3
			resultD01[i+j] += acc5 * acc7

			acc6 += acc8 // b13
			acc8 = acc2 + acc4
			resultD01[i+j+2*kn/4] += acc6 * acc8

			acc5 += acc6
			acc7 += acc8
			d0123[i+j] += acc5 * acc7
		}
	}

	// 2nd last stage
	for i := 0; i < kn/2-1; i++ {
		d0123[i] = d0123[i] - resultD01[i] - resultD01[i+2*kn/4]
		d01[i] = d01[i] - resultFinal[i] - resultFinal[i+2*kn/4]
		d23[i] = d23[i] - resultFinal[i+kn] - resultFinal[i+6*kn/4]
	}

	for i := 0; i < kn/2-1; i++ {
		resultD01[i+kn/4] += d0123[i]
		resultFinal[i+kn/4] += d01[i]
		resultFinal[i+5*kn/4] += d23[i]
	}

	// Last stage
	for i := 0; i < kn-1; i++ {
		resultD01[i] = resultD01[i] - resultFinal[i] - resultFinal[i+kn]
	}

	for i := 0; i < kn-1; i++ {
		resultFinal[i+kn/2] += resultD01[i]
	}
}

// toomCook4Way adds the length-511 convolution of length-256 polynomials a
// and b into result (length 512, zeroed by the caller; the last element,
// index 511, is never written), via the k=4 Toom-Cook split: seven
// evaluation points, seven Karatsuba products, one interpolation.
func toomCook4Way(a, b [saberN]uint16, result []uint16) {
	const (
		inv3  = uint16(43691)
		inv9  = uint16(36409)
		inv15 = uint16(61167)
	)

	var aw1, aw2, aw3, aw4, aw5, aw6, aw7 [nSB]uint16
	var bw1, bw2, bw3, bw4, bw5, bw6, bw7 [nSB]uint16
	var w1, w2, w3, w4, w5, w6, w7 [nSBRes]uint16

	a0 := a[0:nSB]
	a1 := a[nSB : 2*nSB]
	a2 := a[2*nSB : 3*nSB]
	a3 := a[3*nSB : 4*nSB]
	b0 := b[0:nSB]
	b1 := b[nSB : 2*nSB]
	b2 := b[2*nSB : 3*nSB]
	b3 := b[3*nSB : 4*nSB]

	for j := 0; j < nSB; j++ {
		r0 := a0[j]
		r1 := a1[j]
		r2 := a2[j]
		r3 := a3[j]
		r4 := r0 + r2
		r5 := r1 + r3
		r6 := r4 + r5
		r7 := r4 - r5
		aw3[j] = r6
		aw4[j] = r7
		r4 = (r0<<2 + r2) << 1
		r5 = r1<<2 + r3
		r6 = r4 + r5
		r7 = r4 - r5
		aw5[j] = r6
		aw6[j] = r7
		r4 = (r3 << 3) + (r2 << 2) + (r1 << 1) + r0
		aw2[j] = r4
		aw7[j] = r0
		aw1[j] = r3
	}

	for j := 0; j < nSB; j++ {
		r0 := b0[j]
		r1 := b1[j]
		r2 := b2[j]
		r3 := b3[j]
		r4 := r0 + r2
		r5 := r1 + r3
		r6 := r4 + r5
		r7 := r4 - r5
		bw3[j] = r6
		bw4[j] = r7
		r4 = (r0<<2 + r2) << 1
		r5 = r1<<2 + r3
		r6 = r4 + r5
		r7 = r4 - r5
		bw5[j] = r6
		bw6[j] = r7
		r4 = (r3 << 3) + (r2 << 2) + (r1 << 1) + r0
		bw2[j] = r4
		bw7[j] = r0
		bw1[j] = r3
	}

	karatsubaSimple(aw1, bw1, w1[:])
	karatsubaSimple(aw2, bw2, w2[:])
	karatsubaSimple(aw3, bw3, w3[:])
	karatsubaSimple(aw4, bw4, w4[:])
	karatsubaSimple(aw5, bw5, w5[:])
	karatsubaSimple(aw6, bw6, w6[:])
	karatsubaSimple(aw7, bw7, w7[:])

	for i := 0; i < nSBRes; i++ {
		r0 := w1[i]
		r1 := w2[i]
		r2 := w3[i]
		r3 := w4[i]
		r4 := w5[i]
		r5 := w6[i]
		r6 := w7[i]

		r1 += r4
		r5 -= r4

		r3 = uint16((int32(r3) - int32(r2)) >> 1)
		r4 -= r0
		r4 -= r6 << 6
		r4 = (r4 << 1) + r5
		r2 += r3
		r1 -= (r2 << 6) + r2

		r2 -= r6
		r2 -= r0
		r1 += 45 * r2

		r4 = uint16(((int32(r4) - (int32(r2) << 3)) * int32(inv3)) >> 3)

		r5 += r1

		r1 = uint16(((int32(r1) + (int32(r3) << 4)) * int32(inv9)) >> 1)

		r3 = -(r3 + r1)

		r5 = uint16(((30*int32(r1) - int32(r5)) * int32(inv15)) >> 2)
		r2 -= r4
		r1 -= r5

		result[i] += r6
		result[i+64] += r5
		result[i+128] += r4
		result[i+192] += r3
		result[i+256] += r2
		result[i+320] += r1
		result[i+384] += r0
	}
}

// polyMulAcc computes the negacyclic convolution of a and b over
// Z[X]/(X^N+1), all arithmetic mod 2^16, and accumulates the result into
// res (res[i] += conv(a,b)[i]). This is the only polynomial multiplication
// primitive in the package; everything above it (matrix/vector products,
// inner products) is built by repeated accumulation through this one
// function.
func polyMulAcc(a, b *poly, res *poly) {
	var c [2 * saberN]uint16
	toomCook4Way(a.coeffs, b.coeffs, c[:])

	for i := saberN; i < 2*saberN; i++ {
		res.coeffs[i-saberN] = res.coeffs[i-saberN] + c[i-saberN] - c[i]
	}
}
