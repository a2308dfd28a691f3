// doc.go - Package godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM (CRYSTALS-Kyber), an IND-CCA2-secure key
// encapsulation mechanism (KEM) based on the hardness of solving the
// learning-with-errors (LWE) problem over module lattices, as standardized
// by NIST in FIPS 203.
//
// The three parameter sets, Kyber512, Kyber768, and Kyber1024, trade off
// key/ciphertext size against security level; ParameterSet.GenerateKeyPair,
// PublicKey.KEMEncrypt, and PrivateKey.KEMDecrypt are the entry points for
// all three.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package mlkem
