// indcpa.go - The IND-CPA-secure public-key encryption scheme underlying
// Kyber/ML-KEM (component I).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"fmt"
	"io"
)

// indcpaPublicKey is Encode_12(t) || rho: the compressed public matrix seed
// and the uncompressed NTT-domain public vector t = A*s+e.
type indcpaPublicKey struct {
	packed []byte
	h      [32]byte // H(pk), cached for use by the FO transform in kem.go
}

func (pk *indcpaPublicKey) toBytes() []byte { return pk.packed }

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}
	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = hCat(b)
	return nil
}

// indcpaSecretKey is Encode_12(s).
type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}
	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)
	return nil
}

func packPublicKey(pk *polyVec, rho []byte) []byte {
	return concatBytes(encodeVecL(*pk, 12), rho).data
}

func unpackPublicKey(p *ParameterSet, packed []byte) (polyVec, []byte) {
	t := decodeVecL(packed[:p.polyVecSize], p.k, 12)
	rho := packed[p.polyVecSize:]
	return t, rho
}

func packCiphertext(p *ParameterSet, u polyVec, v poly) []byte {
	cu := encodeVecL(compressVec(u, p.du), p.du)
	cv := encodeL(compressPoly(v, p.dv), p.dv)
	return concatBytes(cu, cv).data
}

func unpackCiphertext(p *ParameterSet, c []byte) (polyVec, poly) {
	u := decompressVec(decodeVecL(c[:p.polyVecCompressedSize], p.k, p.du), p.du)
	v := decompressPoly(decodeL(c[p.polyVecCompressedSize:], p.dv), p.dv)
	return u, v
}

// indcpaKeyPairFromSeed is the deterministic core of indcpaKeyPair, taking
// the SymSize-byte seed d directly instead of drawing it from rng. Exposed
// for known-answer-test reproducibility (see kem_vectors_test.go); not
// present in the distillation, recovered from the reference implementation
// pattern of separating "draw randomness" from "derive keys from
// randomness" so that tests can pin the latter.
func (p *ParameterSet) indcpaKeyPairFromSeed(d []byte) (*indcpaPublicKey, *indcpaSecretKey) {
	g1, g2 := gFunc(d)
	rho, sigma := g1[:], g2[:]

	a := sampleMatrix(rho, p.k, false)

	s := samplePolyVecCBD(sigma, 0, p.k, p.eta1)
	e := samplePolyVecCBD(sigma, uint64(p.k), p.k, p.eta1)

	sHat := s.ntt()
	eHat := e.ntt()

	tHat := a.matVec(sHat).add(eHat)

	sk := &indcpaSecretKey{packed: encodeVecL(sHat.invNTT(), 12)}
	pk := &indcpaPublicKey{packed: packPublicKey(ptrTo(tHat.invNTT()), rho)}
	pk.h = hCat(pk.packed)

	return pk, sk
}

func ptrTo(v polyVec) *polyVec { return &v }

// indcpaKeyPair draws a fresh SymSize-byte seed from rng and derives a key
// pair from it.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	d := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, d); err != nil {
		return nil, nil, err
	}
	pk, sk := p.indcpaKeyPairFromSeed(d)
	return pk, sk, nil
}

// indcpaEncrypt encrypts the SymSize-byte message m under pk using coins
// as the encryption randomness, writing the ciphertext to c.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	t, rho := unpackPublicKey(p, pk.packed)
	tHat := t.ntt()

	at := sampleMatrix(rho, p.k, true)

	r := samplePolyVecCBD(coins, 0, p.k, p.eta1)
	e1 := samplePolyVecCBD(coins, uint64(p.k), p.k, p.eta2)
	e2 := samplePolyCBD(coins, uint64(2*p.k), p.eta2)

	rHat := r.ntt()

	u := at.matVec(rHat).invNTT().add(e1)

	msgPoly := decompressPoly(decodeL(m, 1), 1)
	v := tHat.dot(rHat).invNTT().add(e2).add(msgPoly)

	copy(c, packCiphertext(p, u, v))
}

// indcpaDecrypt decrypts the ciphertext c under sk, writing the SymSize-byte
// recovered message to m.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	u, v := unpackCiphertext(p, c)
	sHat := decodeVecL(sk.packed, p.k, 12).ntt()

	mp := v.sub(sHat.dot(u.ntt()).invNTT())
	copy(m, encodeL(compressPoly(mp, 1), 1))
}

// PKEKeyGen is the exported IND-CPA key generation entry point: it draws a
// fresh seed from rng and returns the byte-serialized public and secret
// keys, independent of the KEM's FO wrapping in kem.go. Most callers want
// GenerateKeyPair instead; this exists for callers that need the bare PKE
// (e.g. building a different KEM transform on top of it).
func (p *ParameterSet) PKEKeyGen(rng io.Reader) (pkBytes, skBytes []byte, err error) {
	pk, sk, err := p.indcpaKeyPair(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}
	return pk.toBytes(), sk.packed, nil
}

// PKEEncrypt is the exported IND-CPA encryption entry point. m and coins
// must each be exactly SymSize bytes, and pkBytes must be a validly sized
// public key as returned by PKEKeyGen; any other length is rejected rather
// than silently truncated or zero-padded.
func (p *ParameterSet) PKEEncrypt(pkBytes, m, coins []byte) ([]byte, error) {
	if len(m) != SymSize || len(coins) != SymSize {
		return nil, ErrInvalidMessageLength
	}
	var pk indcpaPublicKey
	if err := pk.fromBytes(p, pkBytes); err != nil {
		return nil, err
	}

	c := make([]byte, p.indcpaCipherSize)
	p.indcpaEncrypt(c, m, &pk, coins)
	return c, nil
}

// PKEDecrypt is the exported IND-CPA decryption entry point. skBytes must
// be a validly sized secret key as returned by PKEKeyGen, and c must be a
// validly sized ciphertext as returned by PKEEncrypt.
func (p *ParameterSet) PKEDecrypt(skBytes, c []byte) ([]byte, error) {
	if len(c) != p.indcpaCipherSize {
		return nil, ErrInvalidCipherTextSize
	}
	var sk indcpaSecretKey
	if err := sk.fromBytes(p, skBytes); err != nil {
		return nil, err
	}

	m := make([]byte, SymSize)
	p.indcpaDecrypt(m, c, &sk)
	return m, nil
}
