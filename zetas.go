// zetas.go - The 256th root of unity and its derived zeta tables.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetaGenerator is zeta=17, the primitive 256th root of unity mod
// fieldQ=3329 that the NTT is built on.
const zetaGenerator Fq = 17

var (
	// zetaPowers[i] = zeta^i mod q for i in [0, 256). This is the table
	// kybe-rs calls ZETAS_256; rather than transcribe it as a literal,
	// it is derived here from zetaGenerator so there is exactly one
	// source of truth for the root of unity.
	zetaPowers [paramN]Fq

	// zetasLevel[k], k in [1, 128), is the per-level twiddle factor used
	// by the Cooley-Tukey forward NTT and (read in reverse) by the
	// Gentleman-Sande inverse NTT: zetasLevel[k] = zetaPowers[brv7(k)].
	zetasLevel [paramN / 2]Fq

	// zetasBase[i], i in [0, 128), is the twiddle factor for the i-th
	// base-case multiplication: zetasBase[i] = zetaPowers[2*brv7(i)+1].
	zetasBase [paramN / 2]Fq
)

// brv7 reverses the low 7 bits of x, the bit-reversal the NTT indexes the
// zeta table with. A real 7-bit reversal is required here: a revision that
// substitutes the identity function silently produces a structurally valid
// but mathematically wrong transform (NTT/invNTT still round-trip on
// garbage, because they're mutually consistent with whatever permutation
// byte_rev implements -- only base_mul, which needs zetaPowers indexed
// by the true exponent, exposes the bug).
func brv7(x int) int {
	r := 0
	for i := 0; i < 7; i++ {
		r |= ((x >> uint(i)) & 1) << uint(6-i)
	}
	return r
}

func init() {
	zetaPowers[0] = 1
	for i := 1; i < len(zetaPowers); i++ {
		zetaPowers[i] = zetaPowers[i-1].Mul(zetaGenerator)
	}

	for k := 1; k < paramN/2; k++ {
		zetasLevel[k] = zetaPowers[brv7(k)]
	}

	for i := 0; i < paramN/2; i++ {
		zetasBase[i] = zetaPowers[(2*brv7(i)+1)%len(zetaPowers)]
	}
}
