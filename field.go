// field.go - The prime field F_q, q = 3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	paramN = 256 // degree of the ring R_q = Z_q[X]/(X^N+1)
	fieldQ = 3329 // the Kyber/ML-KEM modulus

	// SymSize is the size in bytes of shared keys, seeds, and the hashes
	// used throughout the KEM (H, G's halves, z, coins).
	SymSize = 32
)

// Fq is an element of the prime field Z/qZ, always held in its canonical
// representative in [0, q). Every constructor and every arithmetic
// operation below returns a canonically reduced value; there is no way to
// construct an Fq holding anything else.
type Fq uint16

// NewFq reduces x into the canonical representative of its residue class.
func NewFq(x int32) Fq {
	r := x % fieldQ
	if r < 0 {
		r += fieldQ
	}
	return Fq(r)
}

// Add returns a+b mod q.
func (a Fq) Add(b Fq) Fq {
	return Fq(freeze(uint16(a) + uint16(b)))
}

// Sub returns a-b mod q, computed as (a-b+q) mod q to avoid negative
// intermediates.
func (a Fq) Sub(b Fq) Fq {
	return Fq(freeze(uint16(a) + fieldQ - uint16(b)))
}

// Mul returns a*b mod q via Barrett reduction of the 32-bit product.
func (a Fq) Mul(b Fq) Fq {
	return Fq(freeze(barrettReduce(uint32(a) * uint32(b))))
}

// Neg returns q-a for a != 0, and 0 for a == 0.
func (a Fq) Neg() Fq {
	if a == 0 {
		return 0
	}
	return fieldQ - a
}

// Equal reports whether a and b represent the same residue class. This is
// canonical integer equality and is NEVER applied to secret-dependent
// values outside of the one allowed comparison in Decaps (see kem.go),
// which instead uses a constant-time byte comparison.
func (a Fq) Equal(b Fq) bool {
	return a == b
}

// IsZero reports whether a is the zero element. Like Equal, this is a
// non-constant-time comparison: callers must never apply it to
// secret-dependent data on the hot path of KeyGen/Encaps/Decaps.
func (a Fq) IsZero() bool {
	return a == 0
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// (a^(q-2)), using a data-dependent square-and-multiply loop. Nothing in
// the package calls it, so it never sees secret data: the inverse NTT
// scales by the precomputed constant invNTTScale (see ntt.go) instead.
func (a Fq) Inv() Fq {
	if a == 0 {
		return 0
	}
	result := Fq(1)
	base := a
	exp := uint(fieldQ - 2)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}
