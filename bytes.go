// bytes.go - Owned byte buffer primitives used by the codec layer.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// byteBuf is an owned, immutable-by-convention byte sequence with the
// handful of operations the codec and hashing code (encode.go, cbd.go,
// hash.go, indcpa.go, kem.go) needs: append, concatenation, splitting,
// truncation, and single-bit
// access. Bit i of byte j has global index 8*j+i, little-endian within
// each byte; this is the convention every encode/decode routine in this
// package relies on.
type byteBuf struct {
	data []byte
}

// newByteBuf takes ownership of b without copying.
func newByteBuf(b []byte) byteBuf {
	return byteBuf{data: b}
}

// concatBytes concatenates a list of byte slices into a single byteBuf.
func concatBytes(parts ...[]byte) byteBuf {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return byteBuf{data: out}
}

func (b byteBuf) len() int {
	return len(b.data)
}

// append returns a new byteBuf equal to b with other appended.
func (b byteBuf) append(other []byte) byteBuf {
	out := make([]byte, 0, len(b.data)+len(other))
	out = append(out, b.data...)
	out = append(out, other...)
	return byteBuf{data: out}
}

// splitAt returns (head, tail) such that concatenating them reproduces b.
// Panics if pos is out of range, matching the total-except-indexing
// contract of the component.
func (b byteBuf) splitAt(pos int) (byteBuf, byteBuf) {
	head := make([]byte, pos)
	copy(head, b.data[:pos])
	tail := make([]byte, len(b.data)-pos)
	copy(tail, b.data[pos:])
	return byteBuf{data: head}, byteBuf{data: tail}
}

// skip returns b with the first n bytes removed, or an empty buffer if
// n >= len(b).
func (b byteBuf) skip(n int) byteBuf {
	if n >= len(b.data) {
		return byteBuf{}
	}
	out := make([]byte, len(b.data)-n)
	copy(out, b.data[n:])
	return byteBuf{data: out}
}

// truncate returns the first n bytes of b.
func (b byteBuf) truncate(n int) byteBuf {
	out := make([]byte, n)
	copy(out, b.data[:n])
	return byteBuf{data: out}
}

// getBit returns bit pos of b, using little-endian bit order within each
// byte: bit i of byte j has global index 8*j+i.
func (b byteBuf) getBit(pos int) bool {
	byteIdx := pos >> 3
	bitIdx := uint(pos & 7)
	return (b.data[byteIdx]>>bitIdx)&1 != 0
}

// setBit sets bit pos of b in place, using the same convention as getBit.
func (b byteBuf) setBit(pos int, v bool) {
	byteIdx := pos >> 3
	bitIdx := uint(pos & 7)
	if v {
		b.data[byteIdx] |= 1 << bitIdx
	} else {
		b.data[byteIdx] &^= 1 << bitIdx
	}
}

// zero overwrites every byte of b with zero. Used to scrub secret material
// (private keys, coins, shared secrets) before they are dropped, per the
// lifecycle/ownership rules of the data model: secret material must be
// zeroized where the target language allows it to be done reliably.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
