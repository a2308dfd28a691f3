// compress.go - Lossy compression/decompression of ring elements, mod q
// coefficients rounded to d bits (component G).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// compressFq rounds x to the nearest multiple of q/2^d, scaled down to a
// d-bit integer: round(2^d/q * x) mod 2^d. The rounding is half-away-from-
// zero, implemented on integers by adding q/2 before the truncating divide.
func compressFq(x Fq, d int) uint16 {
	num := uint64(x) << uint(d)
	num += fieldQ / 2
	return uint16((num / fieldQ) & ((1 << uint(d)) - 1))
}

// decompressFq is the approximate inverse of compressFq: round(q/2^d * y).
func decompressFq(y uint16, d int) Fq {
	num := uint64(y) * fieldQ
	num += 1 << uint(d-1)
	return Fq(num >> uint(d))
}

// compressPoly applies compressFq coefficientwise, returning a polynomial
// whose coefficients are already in [0, 2^d) (still held in an Fq, which
// is only ever canonical mod q -- callers encode the d-bit values with
// encodeL, never re-reduce them mod q).
func compressPoly(p poly, d int) poly {
	var r poly
	for i, c := range p.coeffs {
		r.coeffs[i] = Fq(compressFq(c, d))
	}
	return r
}

// decompressPoly applies decompressFq coefficientwise.
func decompressPoly(p poly, d int) poly {
	var r poly
	for i, c := range p.coeffs {
		r.coeffs[i] = decompressFq(uint16(c), d)
	}
	return r
}

func compressVec(v polyVec, d int) polyVec {
	r := newPolyVec(v.k())
	for i, p := range v.vec {
		r.vec[i] = compressPoly(p, d)
	}
	return r
}

func decompressVec(v polyVec, d int) polyVec {
	r := newPolyVec(v.k())
	for i, p := range v.vec {
		r.vec[i] = decompressPoly(p, d)
	}
	return r
}
