// kem_test.go - KEM correctness and robustness tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

var allParams = []*ParameterSet{
	Kyber512,
	Kyber768,
	Kyber1024,
}

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSkA(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
		t.Run(p.Name()+"_WrongLength_CipherText", func(t *testing.T) { doTestKEMWrongLength(t, p) })
	}
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())

	for i := 0; i < nTests; i++ {
		pk, sk, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := p.PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := p.PublicKeyFromBytes(b)
		require.NoError(err, "PublicKeyFromBytes(b)")
		requirePublicKeyEqual(require, pk, pk2)

		ct, ss, err := pk.KEMEncrypt(rand.Reader)
		require.NoError(err, "KEMEncrypt()")
		require.Len(ct, p.CipherTextSize(), "KEMEncrypt(): ct Length")
		require.Len(ss, SymSize, "KEMEncrypt(): ss Length")

		ss2, err := sk.KEMDecrypt(ct)
		require.NoError(err, "KEMDecrypt()")
		require.Equal(ss, ss2, "KEMDecrypt(): ss")
	}
}

// doTestKEMInvalidSkA exercises implicit rejection: a secret key that
// does not match the ciphertext's encapsulating public key must still
// decapsulate to *some* SymSize-byte value, distinct from the genuine
// shared secret, rather than erroring.
func doTestKEMInvalidSkA(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		sendB, keyB, err := pk.KEMEncrypt(rand.Reader)
		require.NoError(err, "KEMEncrypt()")

		_, err = rand.Read(skA.sk.packed)
		require.NoError(err, "rand.Read()")

		keyA, err := skA.KEMDecrypt(sendB)
		require.NoError(err, "KEMDecrypt()")
		require.NotEqual(keyA, keyB, "KEMDecrypt(): ss")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		sendB, keyB, err := pk.KEMEncrypt(rand.Reader)
		require.NoError(err, "KEMEncrypt()")

		sendB[pos%ciphertextSize] ^= 23

		keyA, err := skA.KEMDecrypt(sendB)
		require.NoError(err, "KEMDecrypt()")
		require.NotEqual(keyA, keyB, "KEMDecrypt(): ss")
	}
}

func doTestKEMWrongLength(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	_, sk, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair()")

	_, err = sk.KEMDecrypt(make([]byte, p.CipherTextSize()+1))
	require.ErrorIs(err, ErrInvalidCipherTextSize)

	_, err = sk.KEMDecrypt(make([]byte, 0))
	require.ErrorIs(err, ErrInvalidCipherTextSize)
}

// TestPrivateKeyZero checks that Zero() scrubs every secret-bearing field
// of a PrivateKey without touching the embedded PublicKey.
func TestPrivateKeyZero(t *testing.T) {
	require := require.New(t)

	_, sk, err := Kyber768.GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair()")

	pkBytesBefore := sk.PublicKey.Bytes()
	skPackedLen := len(sk.sk.packed)
	zLen := len(sk.z)

	sk.Zero()

	require.Equal(make([]byte, skPackedLen), sk.sk.packed, "sk.sk.packed must be zeroed")
	require.Equal(make([]byte, zLen), sk.z, "sk.z must be zeroed")
	require.Equal(pkBytesBefore, sk.PublicKey.Bytes(), "PublicKey must be untouched by Zero()")
}

func requirePrivateKeyEqual(require *require.Assertions, a, b *PrivateKey) {
	require.EqualValues(a.sk, b.sk, "sk (indcpaSecretKey)")
	require.Equal(a.z, b.z, "z (random bytes)")
	requirePublicKeyEqual(require, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(require *require.Assertions, a, b *PublicKey) {
	require.EqualValues(a.pk, b.pk, "pk (indcpaPublicKey)")
	require.Equal(a.p, b.p, "p (ParameterSet)")
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_KEMEncrypt", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_KEMDecrypt", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	for i := 0; i < b.N; i++ {
		_, _, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		sendB, keyB, err := pk.KEMEncrypt(rand.Reader)
		if err != nil {
			b.Fatalf("KEMEncrypt(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		keyA, err := skA.KEMDecrypt(sendB)
		if err != nil {
			b.Fatalf("KEMDecrypt(): %v", err)
		}
		if !isEnc {
			b.StopTimer()
		}

		if !bytes.Equal(keyA, keyB) {
			b.Fatalf("KEMDecrypt(): key mismatch")
		}
	}
}
