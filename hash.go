// hash.go - SHA3/SHAKE hash facade and the H/G/PRF/XOF/KDF helpers built
// on top of it.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// hashSHA3_256 hashes d with SHA3-256.
func hashSHA3_256(d []byte) [32]byte {
	return sha3.Sum256(d)
}

// hashSHA3_512 hashes d with SHA3-512.
func hashSHA3_512(d []byte) [64]byte {
	return sha3.Sum512(d)
}

// shake128 squeezes outLen bytes of SHAKE-128 output from d.
func shake128(d []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum128(out, d)
	return out
}

// shake256 squeezes outLen bytes of SHAKE-256 output from d.
func shake256(d []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum256(out, d)
	return out
}

// beBytes8 is the 8-byte big-endian encoding of x, used by the PRF/XOF
// counters. Must stay bit-identical to the reference so the hash inputs
// line up byte for byte with the known-answer vectors.
func beBytes8(x uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	return b
}

// hFunc is H(x) = sha3_256(x), returned as its two 16-byte halves the way
// kybe-rs's h() does (so callers that need the whole 32 bytes just
// concatenate them back; see hCat).
func hFunc(x []byte) (h1, h2 [16]byte) {
	d := hashSHA3_256(x)
	copy(h1[:], d[:16])
	copy(h2[:], d[16:])
	return
}

// hCat is H(x) as a single 32-byte digest.
func hCat(x []byte) [32]byte {
	return hashSHA3_256(x)
}

// gFunc is G(x) = sha3_512(x), split into its two 32-byte halves.
func gFunc(x []byte) (g1, g2 [32]byte) {
	d := hashSHA3_512(x)
	copy(g1[:], d[:32])
	copy(g2[:], d[32:])
	return
}

// prf is PRF(s, b, L) = shake_256(s || be_bytes_8(b), L).
func prf(s []byte, b uint64, l int) []byte {
	ctr := beBytes8(b)
	return shake256(concatBytes(s, ctr[:]).data, l)
}

// kdf is KDF(x, L) = shake_256(x, L).
func kdf(x []byte, l int) []byte {
	return shake256(x, l)
}

// xofStream is the streaming interface to XOF(rho, i, j, ...): instead of
// requesting a fixed, generously-sized output up front (the "allocate a
// margin" option in the spec's design notes), it squeezes further SHAKE-128
// output on demand. This is the "cleaner" of the two spec-compliant options
// since it carries no magic constant and cannot under-allocate.
type xofStream struct {
	sponge sha3.ShakeHash
}

// newXOF seeds a streaming XOF(rho, i, j, ...) instance.
func newXOF(rho []byte, i, j uint64) *xofStream {
	sponge := sha3.NewShake128()
	bi := beBytes8(i)
	bj := beBytes8(j)
	sponge.Write(rho)
	sponge.Write(bi[:])
	sponge.Write(bj[:])
	return &xofStream{sponge: sponge}
}

// next3 reads the next 3-byte group from the XOF stream, growing the
// sponge output on demand.
func (x *xofStream) next3() [3]byte {
	var b [3]byte
	_, _ = x.sponge.Read(b[:])
	return b
}
