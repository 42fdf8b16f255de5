// poly.go - Saber polynomial and its packed serializations.

package saber

// A polynomial in Z[X]/(X^N+1): coeffs[0] + X*coeffs[1] + ... +
// X^(N-1)*coeffs[N-1]. Every arithmetic operation on coeffs is performed
// modulo 2^16 (ordinary uint16 wraparound); the bit-width a given
// coefficient is meant to carry (q, p, t, or a single message bit) is a
// property of the packer that serializes it, never of the value itself.
type poly struct {
	coeffs [saberN]uint16
}

// polQ2BS serializes p's low 13 bits per coefficient into dst, which must
// have length polyBytes (416).
func polQ2BS(dst []byte, p *poly) {
	data := &p.coeffs
	for j := 0; j < saberN/8; j++ {
		ob := 13 * j
		od := 8 * j

		dst[ob+0] = byte(data[od+0] & 0xff)
		dst[ob+1] = byte(((data[od+0] >> 8) & 0x1f) | ((data[od+1] & 0x07) << 5))
		dst[ob+2] = byte((data[od+1] >> 3) & 0xff)
		dst[ob+3] = byte(((data[od+1] >> 11) & 0x03) | ((data[od+2] & 0x3f) << 2))
		dst[ob+4] = byte(((data[od+2] >> 6) & 0x7f) | ((data[od+3] & 0x01) << 7))
		dst[ob+5] = byte((data[od+3] >> 1) & 0xff)
		dst[ob+6] = byte(((data[od+3] >> 9) & 0x0f) | ((data[od+4] & 0x0f) << 4))
		dst[ob+7] = byte((data[od+4] >> 4) & 0xff)
		dst[ob+8] = byte(((data[od+4] >> 12) & 0x01) | ((data[od+5] & 0x7f) << 1))
		dst[ob+9] = byte(((data[od+5] >> 7) & 0x3f) | ((data[od+6] & 0x03) << 6))
		dst[ob+10] = byte((data[od+6] >> 2) & 0xff)
		dst[ob+11] = byte(((data[od+6] >> 10) & 0x07) | ((data[od+7] & 0x1f) << 3))
		dst[ob+12] = byte((data[od+7] >> 5) & 0xff)
	}
}

// bs2polQ is the inverse of polQ2BS: src must have length polyBytes (416).
func bs2polQ(p *poly, src []byte) {
	data := &p.coeffs
	for j := 0; j < saberN/8; j++ {
		ob := 13 * j
		od := 8 * j

		data[od+0] = uint16(src[ob+0]&0xff) | (uint16(src[ob+1]&0x1f) << 8)
		data[od+1] = (uint16(src[ob+1]>>5) & 0x07) | (uint16(src[ob+2]&0xff) << 3) | (uint16(src[ob+3]&0x03) << 11)
		data[od+2] = (uint16(src[ob+3]>>2) & 0x3f) | (uint16(src[ob+4]&0x7f) << 6)
		data[od+3] = (uint16(src[ob+4]>>7) & 0x01) | (uint16(src[ob+5]&0xff) << 1) | (uint16(src[ob+6]&0x0f) << 9)
		data[od+4] = (uint16(src[ob+6]>>4) & 0x0f) | (uint16(src[ob+7]&0xff) << 4) | (uint16(src[ob+8]&0x01) << 12)
		data[od+5] = (uint16(src[ob+8]>>1) & 0x7f) | (uint16(src[ob+9]&0x3f) << 7)
		data[od+6] = (uint16(src[ob+9]>>6) & 0x03) | (uint16(src[ob+10]&0xff) << 2) | (uint16(src[ob+11]&0x07) << 10)
		data[od+7] = (uint16(src[ob+11]>>3) & 0x1f) | (uint16(src[ob+12]&0xff) << 5)
	}
}

// polP2BS serializes p's low 10 bits per coefficient into dst, which must
// have length polyCompressedBytes (320).
func polP2BS(dst []byte, p *poly) {
	data := &p.coeffs
	for j := 0; j < saberN/4; j++ {
		ob := 5 * j
		od := 4 * j

		dst[ob+0] = byte(data[od+0] & 0xff)
		dst[ob+1] = byte(((data[od+0] >> 8) & 0x03) | ((data[od+1] & 0x3f) << 2))
		dst[ob+2] = byte(((data[od+1] >> 6) & 0x0f) | ((data[od+2] & 0x0f) << 4))
		dst[ob+3] = byte(((data[od+2] >> 4) & 0x3f) | ((data[od+3] & 0x03) << 6))
		dst[ob+4] = byte((data[od+3] >> 2) & 0xff)
	}
}

// bs2polP is the inverse of polP2BS: src must have length polyCompressedBytes
// (320).
func bs2polP(p *poly, src []byte) {
	data := &p.coeffs
	for j := 0; j < saberN/4; j++ {
		ob := 5 * j
		od := 4 * j

		data[od+0] = uint16(src[ob+0]&0xff) | (uint16(src[ob+1]&0x03) << 8)
		data[od+1] = (uint16(src[ob+1]>>2) & 0x3f) | (uint16(src[ob+2]&0x0f) << 6)
		data[od+2] = (uint16(src[ob+2]>>4) & 0x0f) | (uint16(src[ob+3]&0x3f) << 4)
		data[od+3] = (uint16(src[ob+3]>>6) & 0x03) | (uint16(src[ob+4]&0xff) << 2)
	}
}

// polT2BS serializes p's low et bits per coefficient (et is 3, 4, or 6,
// depending on the parameter set) into dst, which must have length
// scaleBytesKEM. The three branches are independent, unrolled packers --
// not one parameterized loop -- since that is how the reference keeps each
// one a fixed, branch-free stride.
func polT2BS(ps *ParameterSet, dst []byte, p *poly) {
	data := &p.coeffs
	switch ps.et {
	case 3:
		for j := 0; j < saberN/8; j++ {
			ob := 3 * j
			od := 8 * j

			dst[ob+0] = byte((data[od+0] & 0x7) | ((data[od+1] & 0x7) << 3) | ((data[od+2] & 0x3) << 6))
			dst[ob+1] = byte(((data[od+2] >> 2) & 0x01) | ((data[od+3] & 0x7) << 1) | ((data[od+4] & 0x7) << 4) | ((data[od+5] & 0x01) << 7))
			dst[ob+2] = byte(((data[od+5] >> 1) & 0x03) | ((data[od+6] & 0x7) << 2) | ((data[od+7] & 0x7) << 5))
		}
	case 4:
		for j := 0; j < saberN/2; j++ {
			dst[j] = byte((data[2*j] & 0x0f) | ((data[2*j+1] & 0x0f) << 4))
		}
	case 6:
		for j := 0; j < saberN/4; j++ {
			ob := 3 * j
			od := 4 * j

			dst[ob+0] = byte((data[od+0] & 0x3f) | ((data[od+1] & 0x03) << 6))
			dst[ob+1] = byte(((data[od+1] >> 2) & 0x0f) | ((data[od+2] & 0x0f) << 4))
			dst[ob+2] = byte(((data[od+2] >> 4) & 0x03) | ((data[od+3] & 0x3f) << 2))
		}
	default:
		panic("saber: invalid et")
	}
}

// bs2polT is the inverse of polT2BS.
func bs2polT(ps *ParameterSet, p *poly, src []byte) {
	data := &p.coeffs
	switch ps.et {
	case 3:
		for j := 0; j < saberN/8; j++ {
			ob := 3 * j
			od := 8 * j

			data[od+0] = uint16(src[ob+0]) & 0x07
			data[od+1] = (uint16(src[ob+0]) >> 3) & 0x07
			data[od+2] = ((uint16(src[ob+0]) >> 6) & 0x03) | ((uint16(src[ob+1]) & 0x01) << 2)
			data[od+3] = (uint16(src[ob+1]) >> 1) & 0x07
			data[od+4] = (uint16(src[ob+1]) >> 4) & 0x07
			data[od+5] = ((uint16(src[ob+1]) >> 7) & 0x01) | ((uint16(src[ob+2]) & 0x03) << 1)
			data[od+6] = (uint16(src[ob+2]) >> 2) & 0x07
			data[od+7] = (uint16(src[ob+2]) >> 5) & 0x07
		}
	case 4:
		for j := 0; j < saberN/2; j++ {
			data[2*j] = uint16(src[j]) & 0x0f
			data[2*j+1] = (uint16(src[j]) >> 4) & 0x0f
		}
	case 6:
		for j := 0; j < saberN/4; j++ {
			ob := 3 * j
			od := 4 * j

			data[od+0] = uint16(src[ob+0]) & 0x3f
			data[od+1] = (uint16(src[ob+0])>>6)&0x03 | ((uint16(src[ob+1]) & 0x0f) << 2)
			data[od+2] = (uint16(src[ob+1]) >> 4) | ((uint16(src[ob+2]) & 0x03) << 4)
			data[od+3] = uint16(src[ob+2]) >> 2
		}
	default:
		panic("saber: invalid et")
	}
}

// polMsg2BS packs the low bit of each of the first 256 coefficients of p
// into dst (32 bytes), LSB first within each byte.
func polMsg2BS(dst []byte, p *poly) {
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < SymSize; j++ {
		for i := 0; i < 8; i++ {
			dst[j] |= byte((p.coeffs[j*8+i] & 0x01) << uint(i))
		}
	}
}

// bs2polMsg is the inverse of polMsg2BS.
func bs2polMsg(p *poly, src []byte) {
	for j := 0; j < SymSize; j++ {
		for i := 0; i < 8; i++ {
			p.coeffs[j*8+i] = uint16(src[j]>>uint(i)) & 0x01
		}
	}
}
