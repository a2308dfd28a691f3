// polyvec.go - Vectors and matrices of Kyber/ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// polyVec is a rank-k vector of polynomials in normal domain, used to hold
// a PKE secret or error vector (s, e).
type polyVec struct {
	vec []poly
}

// polyVecNTT is a rank-k vector of polynomials in NTT domain, used to hold
// the NTT-domain form of a secret, error, or ciphertext vector.
type polyVecNTT struct {
	vec []polyNTT
}

// polyMatNTT is a k-by-k matrix of NTT-domain polynomials, generated
// directly in NTT form by sampleMatrix (sample.go) and never converted
// back to normal domain.
type polyMatNTT struct {
	rows []polyVecNTT
}

func newPolyVec(k int) polyVec       { return polyVec{vec: make([]poly, k)} }
func newPolyVecNTT(k int) polyVecNTT { return polyVecNTT{vec: make([]polyNTT, k)} }
func newPolyMatNTT(k int) polyMatNTT { return polyMatNTT{rows: make([]polyVecNTT, k)} }

func (v polyVec) k() int    { return len(v.vec) }
func (v polyVecNTT) k() int { return len(v.vec) }

// add returns a+b, elementwise.
func (a polyVec) add(b polyVec) polyVec {
	r := newPolyVec(a.k())
	for i := range r.vec {
		r.vec[i] = a.vec[i].add(b.vec[i])
	}
	return r
}

// sub returns a-b, elementwise.
func (a polyVec) sub(b polyVec) polyVec {
	r := newPolyVec(a.k())
	for i := range r.vec {
		r.vec[i] = a.vec[i].sub(b.vec[i])
	}
	return r
}

func (a polyVecNTT) add(b polyVecNTT) polyVecNTT {
	r := newPolyVecNTT(a.k())
	for i := range r.vec {
		r.vec[i] = a.vec[i].add(b.vec[i])
	}
	return r
}

// ntt applies the forward NTT to every element of v.
func (v polyVec) ntt() polyVecNTT {
	r := newPolyVecNTT(v.k())
	for i, p := range v.vec {
		r.vec[i] = p.ntt()
	}
	return r
}

// invNTT applies the inverse NTT to every element of v.
func (v polyVecNTT) invNTT() polyVec {
	r := newPolyVec(v.k())
	for i, p := range v.vec {
		r.vec[i] = p.invNTT()
	}
	return r
}

// dot computes the NTT-domain inner product sum_i a[i]*b[i], used to
// collapse a rank-k vector multiplication down to a single polynomial
// (e.g. s^T * e, or a row of A times s).
func (a polyVecNTT) dot(b polyVecNTT) polyNTT {
	r := zeroPolyNTT()
	for i := range a.vec {
		r = r.add(baseMul(a.vec[i], b.vec[i]))
	}
	return r
}

// matVec computes A*s for a k-by-k NTT-domain matrix A and an NTT-domain
// vector s, producing a k-element NTT-domain vector.
func (m polyMatNTT) matVec(s polyVecNTT) polyVecNTT {
	r := newPolyVecNTT(len(m.rows))
	for i, row := range m.rows {
		r.vec[i] = row.dot(s)
	}
	return r
}

// transpose returns the matrix with rows and columns swapped. Encryption
// does not use it: indcpaEncrypt samples A^T directly via
// sampleMatrix(rho, k, true).
func (m polyMatNTT) transpose() polyMatNTT {
	k := len(m.rows)
	t := newPolyMatNTT(k)
	for i := 0; i < k; i++ {
		t.rows[i] = newPolyVecNTT(k)
		for j := 0; j < k; j++ {
			t.rows[i].vec[j] = m.rows[j].vec[i]
		}
	}
	return t
}
