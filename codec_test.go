// codec_test.go - Bit-packing and compression round-trip/bound tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)
	for _, l := range []int{1, 4, 5, 10, 11, 12} {
		p := randomPoly(t)
		if l < 12 {
			// encodeL/decodeL at l<12 only round-trips values already
			// reduced mod 2^l; compressPoly is what produces those.
			p = compressPoly(p, l)
		}
		got := decodeL(encodeL(p, l), l)
		require.Equal(p, got, "encodeL/decodeL round trip at l=%d", l)
	}
}

func TestCompressDecompressBound(t *testing.T) {
	require := require.New(t)
	// Compression is lossy; the spec's correctness bound is on how far
	// decompress(compress(x)) can land from x, not bit-exact recovery.
	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := Fq((fieldQ / (1 << uint(d))) + 1)
		for _, x := range []Fq{0, 1, fieldQ / 2, fieldQ - 1} {
			c := compressFq(x, d)
			require.Less(c, uint16(1<<uint(d)), "compressFq must fit in d bits")

			y := decompressFq(c, d)
			diff := x.Sub(y)
			if diff > fieldQ/2 {
				diff = fieldQ - diff
			}
			require.LessOrEqual(diff, bound, "decompress(compress(%d), %d) strayed too far", x, d)
		}
	}
}
