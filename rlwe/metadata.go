package rlwe

import (
	"github.com/google/go-cmp/cmp"
)

// MetaData is a struct storing the domain flags of a plaintext or ciphertext.
type MetaData struct {
	// IsNTT is true if the underlying polynomials are in the NTT domain.
	IsNTT bool
	// IsMontgomery is true if the underlying coefficients are in the Montgomery form.
	IsMontgomery bool
}

// CopyNew returns a copy of the target.
func (m MetaData) CopyNew() *MetaData {
	return &m
}

// Equal returns true if the two sets of metadata are identical.
func (m MetaData) Equal(other *MetaData) bool {
	return cmp.Equal(m, *other)
}
