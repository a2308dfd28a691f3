// errors.go - Sentinel errors for malformed keys and ciphertexts.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrInvalidKeySize is returned when a byte serialized key is an
	// invalid size for the ParameterSet it is being parsed against.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte serialized
	// ciphertext is an invalid size for the ParameterSet it is being
	// decapsulated against.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte serialized private key
	// fails its embedded H(pk) consistency check.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")

	// ErrInvalidMessageLength is returned when a PKE message or coins
	// argument is not exactly SymSize bytes.
	ErrInvalidMessageLength = errors.New("mlkem: invalid message length")

	// ErrRngFailure is returned when the caller-supplied entropy source
	// fails to produce the requested randomness.
	ErrRngFailure = errors.New("mlkem: rng failure")
)
