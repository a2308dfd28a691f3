// indcpa_test.go - IND-CPA PKE round-trip tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndcpaRoundTrip(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) { doTestIndcpaRoundTrip(t, p) })
	}
}

func doTestIndcpaRoundTrip(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < 20; i++ {
		pk, sk, err := p.indcpaKeyPair(rand.Reader)
		require.NoError(err)

		var m, coins [SymSize]byte
		_, err = rand.Read(m[:])
		require.NoError(err)
		_, err = rand.Read(coins[:])
		require.NoError(err)

		c := make([]byte, p.indcpaCipherSize)
		p.indcpaEncrypt(c, m[:], pk, coins[:])

		got := make([]byte, SymSize)
		p.indcpaDecrypt(got, c, sk)

		require.Equal(m[:], got, "indcpaDecrypt(indcpaEncrypt(m)) must recover m, iteration %d", i)
	}
}

// TestPKEPublicAPIRoundTrip exercises the exported byte-oriented
// PKEKeyGen/PKEEncrypt/PKEDecrypt surface, independent of the KEM's FO
// wrapping in kem.go.
func TestPKEPublicAPIRoundTrip(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) { doTestPKEPublicAPIRoundTrip(t, p) })
	}
}

func doTestPKEPublicAPIRoundTrip(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	pkBytes, skBytes, err := p.PKEKeyGen(rand.Reader)
	require.NoError(err)
	require.Len(pkBytes, p.indcpaPublicKeySize)
	require.Len(skBytes, p.indcpaSecretKeySize)

	var m, coins [SymSize]byte
	_, err = rand.Read(m[:])
	require.NoError(err)
	_, err = rand.Read(coins[:])
	require.NoError(err)

	c, err := p.PKEEncrypt(pkBytes, m[:], coins[:])
	require.NoError(err)
	require.Len(c, p.indcpaCipherSize)

	got, err := p.PKEDecrypt(skBytes, c)
	require.NoError(err)
	require.Equal(m[:], got)
}

func TestPKEPublicAPIRejectsBadLengths(t *testing.T) {
	require := require.New(t)
	p := Kyber768

	pkBytes, skBytes, err := p.PKEKeyGen(rand.Reader)
	require.NoError(err)

	_, err = p.PKEEncrypt(pkBytes, make([]byte, SymSize-1), make([]byte, SymSize))
	require.ErrorIs(err, ErrInvalidMessageLength)

	_, err = p.PKEEncrypt(pkBytes, make([]byte, SymSize), make([]byte, SymSize+1))
	require.ErrorIs(err, ErrInvalidMessageLength)

	_, err = p.PKEEncrypt(make([]byte, len(pkBytes)-1), make([]byte, SymSize), make([]byte, SymSize))
	require.ErrorIs(err, ErrInvalidKeySize)

	_, err = p.PKEDecrypt(skBytes, make([]byte, p.indcpaCipherSize-1))
	require.ErrorIs(err, ErrInvalidCipherTextSize)

	_, err = p.PKEDecrypt(make([]byte, len(skBytes)-1), make([]byte, p.indcpaCipherSize))
	require.ErrorIs(err, ErrInvalidKeySize)
}
