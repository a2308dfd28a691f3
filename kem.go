// kem.go - The Kyber/ML-KEM IND-CCA2-secure key encapsulation mechanism,
// built from the IND-CPA PKE (indcpa.go) via the Fujisaki-Okamoto
// transform with implicit rejection (component J).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
)

// PrivateKey is a Kyber/ML-KEM private key: the PKE secret key, the
// embedded public key (and its cached hash), and the implicit-rejection
// seed z.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: sk || pk || H(pk) || z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey, verifying
// the embedded H(pk) against the recomputed hash of the embedded public key.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is a Kyber/ML-KEM public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{
		pk: new(indcpaPublicKey),
		p:  p,
	}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet, drawing randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}

	return &kp.PublicKey, kp, nil
}

// GenerateKeyPairFromSeed deterministically derives a private and public key
// from a SymSize-byte PKE seed d and a SymSize-byte implicit-rejection seed
// z, with no RNG involved. Exposed for known-answer-test reproducibility;
// not present in the distillation (see kem_vectors_test.go, SPEC_FULL.md §4).
func (p *ParameterSet) GenerateKeyPairFromSeed(d, z []byte) (*PublicKey, *PrivateKey, error) {
	if len(d) != SymSize || len(z) != SymSize {
		return nil, nil, ErrInvalidKeySize
	}

	kp := new(PrivateKey)
	kp.PublicKey.pk, kp.sk = p.indcpaKeyPairFromSeed(d)
	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	copy(kp.z, z)

	return &kp.PublicKey, kp, nil
}

// KEMEncrypt generates a ciphertext and shared secret via the CCA-secure
// KEM, drawing the encapsulated message from rng.
func (pk *PublicKey) KEMEncrypt(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	var m [SymSize]byte
	defer zero(m[:])
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}
	m = hashSHA3_256(m[:]) // don't release raw RNG output into the transform

	g1, g2 := gFunc(concatBytes(m[:], pk.pk.h[:]).data) // multitarget countermeasure: bind to H(pk)
	kbar, coins := g1, g2
	defer zero(kbar[:])
	defer zero(coins[:])

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, coins[:])

	hc := hCat(cipherText)
	sharedSecret32 := kdf(concatBytes(kbar[:], hc[:]).data, SymSize)

	return cipherText, sharedSecret32, nil
}

// KEMDecrypt recovers the shared secret for a given ciphertext via the
// CCA-secure KEM's decapsulation algorithm. On a re-encryption mismatch
// (tampered or invalid ciphertext) it returns a value derived from the
// implicit-rejection seed z instead of failing, so that Decaps never
// leaks a distinguishing signal through its error behavior; callers that
// want to detect tampering must do so at a higher protocol layer.
//
// Providing a ciphertext of the wrong length returns ErrInvalidCipherTextSize
// rather than a pseudorandom secret, since that is a caller/API-usage bug
// rather than an adversarial ciphertext.
func (sk *PrivateKey) KEMDecrypt(cipherText []byte) ([]byte, error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	var mp [SymSize]byte
	defer zero(mp[:])
	p.indcpaDecrypt(mp[:], cipherText, sk.sk)

	g1, g2 := gFunc(concatBytes(mp[:], sk.PublicKey.pk.h[:]).data)
	kbar, coins := g1, g2
	defer zero(kbar[:])
	defer zero(coins[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, mp[:], sk.PublicKey.pk, coins[:])

	same := subtle.ConstantTimeCompare(cipherText, cmp)

	// preK is z by default (implicit rejection); it is overwritten with
	// kbar only when the re-encrypted ciphertext matches, in constant
	// time with respect to which branch was taken.
	preK := make([]byte, SymSize)
	defer zero(preK)
	copy(preK, sk.z)
	subtle.ConstantTimeCopy(same, preK, kbar[:])

	hc := hCat(cipherText)
	sharedSecret := kdf(concatBytes(preK, hc[:]).data, SymSize)

	return sharedSecret, nil
}

// Zero scrubs the secret material held by a PrivateKey: the packed PKE
// secret key and the implicit-rejection seed z. It does not affect the
// embedded PublicKey, which holds no secrets. Call this when a PrivateKey
// is done being used and is about to be dropped.
func (sk *PrivateKey) Zero() {
	zero(sk.sk.packed)
	zero(sk.z)
}
