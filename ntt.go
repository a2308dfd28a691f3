// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// invNTTScale is 128^-1 mod q, the factor the inverse NTT multiplies every
// coefficient by at the end. The NTT treats a poly as 128 independent
// degree-1 factors, so the scaling is by the inverse of 128, not of N=256;
// 128^-1 mod 3329 = 3303.
const invNTTScale Fq = 3303

// ntt computes the forward, negacyclic Cooley-Tukey NTT of p. Input is
// assumed in normal order; output is in bit-reversed order (component F;
// zetasLevel is derived in zetas.go).
func (p poly) ntt() polyNTT {
	r := p.coeffs
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < paramN; start += 2 * length {
			zeta := zetasLevel[k]
			k++
			for j := start; j < start+length; j++ {
				t := r[j+length].Mul(zeta)
				r[j+length] = r[j].Sub(t)
				r[j] = r[j].Add(t)
			}
		}
	}
	return polyNTT{coeffs: r}
}

// invNTT computes the inverse Gentleman-Sande NTT of p, followed by
// scaling every coefficient by invNTTScale. Input is assumed in
// bit-reversed order; output is in normal order. This reuses the same
// zetasLevel table as the forward transform, read in decreasing order,
// which is the standard way to implement the inverse transform without a
// second, separately negated table; spec compliance only requires the
// final integer values to match, which the round-trip and linearity tests
// check directly.
func (p polyNTT) invNTT() poly {
	r := p.coeffs
	k := paramN/2 - 1
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < paramN; start += 2 * length {
			zeta := zetasLevel[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = t.Add(r[j+length])
				r[j+length] = r[j+length].Sub(t)
				r[j+length] = r[j+length].Mul(zeta)
			}
		}
	}
	for i := range r {
		r[i] = r[i].Mul(invNTTScale)
	}
	return poly{coeffs: r}
}

// baseMul computes the NTT-domain "base-case multiplication" of a and b:
// 128 pairwise multiplications in F_q[X]/(X^2 - zeta^(2*brv7(i)+1)) for
// i in [0,128). For each i, with (a0,a1) and (b0,b1) the coefficients of
// the i-th factor: c0 = a0*b0 + zeta*a1*b1; c1 = a0*b1 + a1*b0.
func baseMul(a, b polyNTT) polyNTT {
	var r polyNTT
	for i := 0; i < paramN/2; i++ {
		zeta := zetasBase[i]
		a0, a1 := a.coeffs[2*i], a.coeffs[2*i+1]
		b0, b1 := b.coeffs[2*i], b.coeffs[2*i+1]

		r.coeffs[2*i] = a0.Mul(b0).Add(zeta.Mul(a1.Mul(b1)))
		r.coeffs[2*i+1] = a0.Mul(b1).Add(a1.Mul(b0))
	}
	return r
}
