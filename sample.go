// sample.go - Uniform rejection sampling of the public matrix A, and the
// centered binomial sampling of secret/error vectors (component H).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// parse implements Algorithm 1, the uniform rejection sampler: it draws
// 12-bit groups from an XOF stream and keeps each one that lands in
// [0, q), discarding the rest, until N coefficients have been accepted.
// The result is already in NTT domain, since A is never needed in normal
// domain anywhere in the PKE.
func parse(x *xofStream) polyNTT {
	var r polyNTT
	i := 0
	for i < paramN {
		b := x.next3()
		d1 := uint16(b[0]) | (uint16(b[1]&0x0f) << 8)
		d2 := (uint16(b[1]) >> 4) | (uint16(b[2]) << 4)

		if d1 < fieldQ {
			r.coeffs[i] = Fq(d1)
			i++
		}
		if i < paramN && d2 < fieldQ {
			r.coeffs[i] = Fq(d2)
			i++
		}
	}
	return r
}

// sampleMatrix generates the public k-by-k matrix A (or its transpose) in
// NTT domain from the seed rho: A[i][j] = parse(XOF(rho, j, i)), and
// A^T[i][j] = parse(XOF(rho, i, j)) when transposed is set — the reference
// convention, which samples column-major so KeyGen and Encrypt can each
// derive their half of the matrix without materializing and transposing
// the other.
func sampleMatrix(rho []byte, k int, transposed bool) polyMatNTT {
	m := newPolyMatNTT(k)
	for i := 0; i < k; i++ {
		m.rows[i] = newPolyVecNTT(k)
		for j := 0; j < k; j++ {
			row, col := uint64(j), uint64(i)
			if transposed {
				row, col = col, row
			}
			m.rows[i].vec[j] = parse(newXOF(rho, row, col))
		}
	}
	return m
}

// samplePolyCBD derives a CBD(eta) polynomial from seed via PRF(seed, nonce, 64*eta);
// cbd itself lives in cbd.go.
func samplePolyCBD(seed []byte, nonce uint64, eta int) poly {
	buf := prf(seed, nonce, 64*eta)
	return cbd(buf, eta)
}

// samplePolyVecCBD derives a rank-k vector of CBD(eta) polynomials,
// consuming consecutive PRF nonces starting at nonce0.
func samplePolyVecCBD(seed []byte, nonce0 uint64, k, eta int) polyVec {
	v := newPolyVec(k)
	for i := range v.vec {
		v.vec[i] = samplePolyCBD(seed, nonce0+uint64(i), eta)
	}
	return v
}
