// params.go - ML-KEM/Kyber parameterization (component K).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// polySize is the size in bytes of a fully-packed (12-bit-per-
	// coefficient) polynomial.
	polySize = paramN * 12 / 8
)

var (
	// Kyber512 aims to provide security equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// Kyber768 aims to provide security equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// Kyber1024 aims to provide security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// ParameterSet holds one Kyber/ML-KEM parameter set: the module rank k,
// the CBD widths eta1 (key/error generation) and eta2 (encryption noise),
// and the ciphertext compression widths du, dv.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize             int
	polyVecCompressedSize   int // du-bit compression of the k-vector u
	polyCompressedSize      int // dv-bit compression of the scalar v

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaCipherSize    int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string { return p.name }

// K returns the module rank.
func (p *ParameterSet) K() int { return p.k }

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int { return p.publicKeySize }

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int { return p.secretKeySize }

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int { return p.cipherTextSize }

// Delta returns -log2 of the parameter set's decryption failure
// probability bound (139, 164, or 174 respectively), the bound the
// correctness proof's noise budget is built around. Not present in the
// original distillation; recovered from the reference parameter tables
// since every concrete Kyber/ML-KEM parameter set publishes one and
// callers that want to reason about failure probability need the figure
// attached to the set they picked rather than a separate lookup table.
func (p *ParameterSet) Delta() int {
	switch p.k {
	case 2:
		return 139
	case 3:
		return 164
	default:
		return 174
	}
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecSize = k * polySize
	p.polyVecCompressedSize = k * (paramN * du / 8)
	p.polyCompressedSize = paramN * dv / 8

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaCipherSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize
	p.cipherTextSize = p.indcpaCipherSize

	return &p
}
