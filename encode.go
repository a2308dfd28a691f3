// encode.go - Bit-packed serialization of ring elements (component G).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// encodeL packs the N coefficients of p, each taken mod 2^l, into a
// ceil(N*l/8)-byte slice, l consecutive bits per coefficient starting at
// the least-significant bit of the first free byte. This is encode_l from
// the data format.
func encodeL(p poly, l int) []byte {
	out := make([]byte, paramN*l/8)
	buf := newByteBuf(out)
	for i, c := range p.coeffs {
		v := uint16(c)
		for b := 0; b < l; b++ {
			buf.setBit(i*l+b, (v>>uint(b))&1 != 0)
		}
	}
	return out
}

// decodeL is the inverse of encodeL: it unpacks N l-bit groups from in
// into polynomial coefficients, each reduced into [0, q). For l < 12 every
// l-bit value is already below q; only 12-bit groups >= q are changed.
func decodeL(in []byte, l int) poly {
	var p poly
	buf := newByteBuf(in)
	for i := range p.coeffs {
		var v uint16
		for b := 0; b < l; b++ {
			if buf.getBit(i*l + b) {
				v |= 1 << uint(b)
			}
		}
		p.coeffs[i] = NewFq(int32(v))
	}
	return p
}

// encodeVecL packs each polynomial of v with encodeL and concatenates the
// results.
func encodeVecL(v polyVec, l int) []byte {
	out := make([]byte, 0, v.k()*paramN*l/8)
	for _, p := range v.vec {
		out = append(out, encodeL(p, l)...)
	}
	return out
}

// decodeVecL is the inverse of encodeVecL for a vector of rank k.
func decodeVecL(in []byte, k, l int) polyVec {
	v := newPolyVec(k)
	stride := paramN * l / 8
	for i := range v.vec {
		v.vec[i] = decodeL(in[i*stride:(i+1)*stride], l)
	}
	return v
}
