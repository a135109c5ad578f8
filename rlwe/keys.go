package rlwe

import (
	"github.com/rhea-fhe/rhea/ring"
)

// SecretKey is a structure that stores an RLWE secret key with ternary
// coefficients. The key is kept in the NTT domain, on plain residues, ready
// to be consumed by the coefficient-wise multiplication kernels.
type SecretKey struct {
	value ring.Poly
}

// Value returns the underlying polynomial of the secret key, in the NTT
// domain. The returned polynomial shares its backing array with the key and
// must not be modified.
func (sk *SecretKey) Value() ring.Poly {
	return sk.value
}

// ValueNew returns a copy of the underlying polynomial of the secret key,
// in the NTT domain.
func (sk *SecretKey) ValueNew() ring.Poly {
	return sk.value.CopyNew()
}

// Level returns the level of the secret key.
func (sk *SecretKey) Level() int {
	return sk.value.Level()
}

// CopyNew creates a deep copy of the target secret key.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{value: sk.value.CopyNew()}
}

// Equal performs a deep equal between the target and the other secret key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.value.Equal(other.value)
}
