// poly.go - Kyber/ML-KEM polynomial, R_q = Z_q[X]/(X^N+1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// poly holds the N=256 coefficients of an element of R_q in normal
// (coefficient) domain: coeffs[0] + X*coeffs[1] + ... + X^(N-1)*coeffs[N-1].
type poly struct {
	coeffs [paramN]Fq
}

// polyNTT holds the N=256 coefficients of the same ring element after the
// forward NTT: 128 degree-1 polynomials over F_q indexed by the 128th
// roots of unity. It is a distinct Go type from poly so that the two
// domains can never be mixed by accident; ntt and invNTT are the only
// conversions between them.
type polyNTT struct {
	coeffs [paramN]Fq
}

func zeroPoly() poly         { return poly{} }
func zeroPolyNTT() polyNTT   { return polyNTT{} }

// isZero reports whether every coefficient is zero. Non-constant-time;
// per the data model this must never be applied to secret-dependent
// polynomials on the KEM/PKE hot path (it is unused there -- see kem.go,
// indcpa.go).
func (p poly) isZero() bool {
	for _, c := range p.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// add returns a+b in R_q.
func (a poly) add(b poly) poly {
	var r poly
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i].Add(b.coeffs[i])
	}
	return r
}

// sub returns a-b in R_q.
func (a poly) sub(b poly) poly {
	var r poly
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i].Sub(b.coeffs[i])
	}
	return r
}

// scalarMul returns a*c for a field element c.
func (a poly) scalarMul(c Fq) poly {
	var r poly
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i].Mul(c)
	}
	return r
}

func (a polyNTT) add(b polyNTT) polyNTT {
	var r polyNTT
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i].Add(b.coeffs[i])
	}
	return r
}

func (a polyNTT) sub(b polyNTT) polyNTT {
	var r polyNTT
	for i := range r.coeffs {
		r.coeffs[i] = a.coeffs[i].Sub(b.coeffs[i])
	}
	return r
}
