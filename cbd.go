// cbd.go - Centered binomial distribution.

package saber

// loadLittleEndian interprets up to 8 bytes of x as an integer in
// little-endian order.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// cbd samples a polynomial with coefficients following a centered binomial
// distribution from buf, a ps.polyCoinBytes-length buffer of uniformly
// random bytes. The three branches below are independent, unrolled
// implementations, one per parameter set, matching the reference bit for
// bit -- including its L=4 branch, which only folds 3 bytes' worth of bits
// (not mu=6) per iteration; that is the reference's documented behavior,
// not an oversight, and KAT vectors depend on reproducing it exactly.
func cbd(ps *ParameterSet, p *poly, buf []byte) {
	switch ps.l {
	case 2:
		var a, b [4]uint64
		for i := 0; i < saberN/4; i++ {
			t := loadLittleEndian(buf[5*i:], 5)
			var d uint64
			for j := 0; j < 5; j++ {
				d += (t >> uint(j)) & 0x0842108421
			}

			a[0] = d & 0x1f
			b[0] = (d >> 5) & 0x1f
			a[1] = (d >> 10) & 0x1f
			b[1] = (d >> 15) & 0x1f
			a[2] = (d >> 20) & 0x1f
			b[2] = (d >> 25) & 0x1f
			a[3] = (d >> 30) & 0x1f
			b[3] = d >> 35

			p.coeffs[4*i+0] = uint16(a[0] - b[0])
			p.coeffs[4*i+1] = uint16(a[1] - b[1])
			p.coeffs[4*i+2] = uint16(a[2] - b[2])
			p.coeffs[4*i+3] = uint16(a[3] - b[3])
		}
	case 3:
		var a, b [4]uint32
		for i := 0; i < saberN/4; i++ {
			t := uint32(loadLittleEndian(buf[4*i:], 4))
			var d uint32
			for j := 0; j < 4; j++ {
				d += (t >> uint(j)) & 0x11111111
			}

			a[0] = d & 0xf
			b[0] = (d >> 4) & 0xf
			a[1] = (d >> 8) & 0xf
			b[1] = (d >> 12) & 0xf
			a[2] = (d >> 16) & 0xf
			b[2] = (d >> 20) & 0xf
			a[3] = (d >> 24) & 0xf
			b[3] = d >> 28

			p.coeffs[4*i+0] = uint16(a[0] - b[0])
			p.coeffs[4*i+1] = uint16(a[1] - b[1])
			p.coeffs[4*i+2] = uint16(a[2] - b[2])
			p.coeffs[4*i+3] = uint16(a[3] - b[3])
		}
	case 4:
		const bytes = 3
		var a, b [4]uint32
		for i := 0; i < saberN/4; i++ {
			t := uint32(loadLittleEndian(buf[bytes*i:], bytes))
			var d uint32
			for j := 0; j < bytes; j++ {
				d += (t >> uint(j)) & 0x249249
			}

			a[0] = d & 0x7
			b[0] = (d >> 3) & 0x7
			a[1] = (d >> 6) & 0x7
			b[1] = (d >> 9) & 0x7
			a[2] = (d >> 12) & 0x7
			b[2] = (d >> 15) & 0x7
			a[3] = (d >> 18) & 0x7
			b[3] = d >> 21

			p.coeffs[4*i+0] = uint16(a[0] - b[0])
			p.coeffs[4*i+1] = uint16(a[1] - b[1])
			p.coeffs[4*i+2] = uint16(a[2] - b[2])
			p.coeffs[4*i+3] = uint16(a[3] - b[3])
		}
	default:
		panic("saber: invalid l")
	}
}
