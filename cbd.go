// cbd.go - Centered binomial distribution (component H, Algorithm 2).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// cbd draws a centered binomial distributed polynomial with parameter eta
// from a buffer of exactly 64*eta bytes: each coefficient is
// popcount(a)-popcount(b) for two eta-bit groups a, b drawn from
// consecutive bits of buf. Unlike the teacher's cbdRef, which special-cases
// eta in {3,4,5} with hand-unrolled word loads for speed, this works for
// any eta by reading individual bits through byteBuf -- eta1 and eta2 can
// now differ per parameter set (component K).
func cbd(buf []byte, eta int) poly {
	var p poly
	bits := newByteBuf(buf)
	for i := 0; i < paramN; i++ {
		var a, b int
		base := 2 * i * eta
		for t := 0; t < eta; t++ {
			if bits.getBit(base + t) {
				a++
			}
		}
		for t := 0; t < eta; t++ {
			if bits.getBit(base + eta + t) {
				b++
			}
		}
		p.coeffs[i] = NewFq(int32(a - b))
	}
	return p
}
