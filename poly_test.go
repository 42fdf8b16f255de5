package saber

import (
	"crypto/rand"
	"testing"
)

func TestPolQRoundTrip(t *testing.T) {
	var p poly
	for i := range p.coeffs {
		p.coeffs[i] = uint16(i+1) & 0x1fff // mask to 13 bits, per E4
	}

	buf := make([]byte, (saberEQ*saberN)/8)
	polQ2BS(buf, &p)

	var got poly
	bs2polQ(&got, buf)

	if got != p {
		t.Fatalf("bs2polQ(polQ2BS(p)) != p")
	}
}

func TestPolQRoundTripRandom(t *testing.T) {
	buf := make([]byte, (saberEQ*saberN)/8)
	if _, err := rand.Read(buf); err != nil {
		t.Fatalf("rand.Read(): %v", err)
	}

	var p poly
	bs2polQ(&p, buf)

	got := make([]byte, len(buf))
	polQ2BS(got, &p)

	if string(got) != string(buf) {
		t.Fatalf("polQ2BS(bs2polQ(bytes)) != bytes")
	}
}

func TestPolPRoundTrip(t *testing.T) {
	var p poly
	for i := range p.coeffs {
		p.coeffs[i] = uint16(i*7+3) & 0x3ff // 10 bits
	}

	buf := make([]byte, (saberEP*saberN)/8)
	polP2BS(buf, &p)

	var got poly
	bs2polP(&got, buf)

	if got != p {
		t.Fatalf("bs2polP(polP2BS(p)) != p")
	}
}

func TestPolTRoundTrip(t *testing.T) {
	for _, p := range allParams {
		var src poly
		mask := uint16(1)<<p.et - 1
		for i := range src.coeffs {
			src.coeffs[i] = uint16(i*3+1) & mask
		}

		buf := make([]byte, p.scaleBytesKEM)
		polT2BS(p, buf, &src)

		var got poly
		bs2polT(p, &got, buf)

		if got != src {
			t.Fatalf("%s: bs2polT(polT2BS(p)) != p", p.Name())
		}
	}
}

func TestPolMsgRoundTrip(t *testing.T) {
	msg := make([]byte, SymSize)
	if _, err := rand.Read(msg); err != nil {
		t.Fatalf("rand.Read(): %v", err)
	}

	var p poly
	bs2polMsg(&p, msg)

	got := make([]byte, SymSize)
	polMsg2BS(got, &p)

	if string(got) != string(msg) {
		t.Fatalf("polMsg2BS(bs2polMsg(m)) != m")
	}

	for _, c := range p.coeffs {
		if c > 1 {
			t.Fatalf("bs2polMsg produced a coefficient %d outside {0,1}", c)
		}
	}
}
