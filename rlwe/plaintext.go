package rlwe

import (
	"github.com/rhea-fhe/rhea/ring"
)

// Plaintext is a common base type for RLWE plaintexts.
// Its value is a single RNS polynomial.
type Plaintext struct {
	Value ring.Poly
	*MetaData
}

// NewPlaintext creates a new Plaintext at the maximum level of the
// parameters, with all coefficients set to zero. The returned plaintext is
// tagged as being outside of the NTT domain.
func NewPlaintext(params Parameters) (pt *Plaintext) {
	return &Plaintext{
		Value:    params.RingQ().NewPoly(),
		MetaData: &MetaData{},
	}
}

// Level returns the level of the target plaintext.
func (pt Plaintext) Level() int {
	return pt.Value.Level()
}

// CopyNew creates a new element as a copy of the target element.
func (pt Plaintext) CopyNew() *Plaintext {
	return &Plaintext{
		Value:    pt.Value.CopyNew(),
		MetaData: pt.MetaData.CopyNew(),
	}
}

// Equal performs a deep equal between the target and the other plaintext.
func (pt Plaintext) Equal(other *Plaintext) bool {
	return pt.Value.Equal(other.Value) && pt.MetaData.Equal(other.MetaData)
}
