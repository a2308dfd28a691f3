// reduce.go - Barrett reduction and branchless canonicalization mod q.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// barrettShift and barrettMultiplier implement Barrett reduction for
	// products of two canonical Fq values (so the input is always
	// < fieldQ*fieldQ < 2^24): multiplier = floor(2^shift / q).
	barrettShift      = 26
	barrettMultiplier = (uint64(1) << barrettShift) / fieldQ
)

// barrettReduce reduces a 32-bit product into [0, 2*fieldQ) without
// branching on the value of a: the only operations are a multiply, a
// shift, and a subtraction.
func barrettReduce(a uint32) uint16 {
	t := uint32((uint64(a) * barrettMultiplier) >> barrettShift)
	t *= fieldQ
	return uint16(a - t)
}

// freeze performs one branchless conditional subtraction, bringing a value
// known to be < 2*fieldQ into the canonical range [0, fieldQ). The
// selection is done via an arithmetic shift of the sign bit rather than a
// data-dependent branch, the same idiom the teacher implementation uses
// for its own freeze().
func freeze(a uint16) uint16 {
	m := a - fieldQ
	c := int16(m)
	c >>= 15 // all-ones if m is negative (a < fieldQ), else all-zeros
	return m ^ (uint16(c) & (a ^ m))
}
