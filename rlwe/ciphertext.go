package rlwe

import (
	"github.com/rhea-fhe/rhea/ring"
)

// Ciphertext is a generic type for RLWE ciphertexts with two components,
// each a single RNS polynomial under the same metadata.
type Ciphertext struct {
	Value [2]ring.Poly
	*MetaData
}

// NewCiphertext creates a new Ciphertext at the maximum level of the
// parameters, with all coefficients set to zero. Freshly produced
// ciphertexts live in the NTT domain, so the returned ciphertext is tagged
// accordingly.
func NewCiphertext(params Parameters) (ct *Ciphertext) {
	return &Ciphertext{
		Value: [2]ring.Poly{
			params.RingQ().NewPoly(),
			params.RingQ().NewPoly(),
		},
		MetaData: &MetaData{IsNTT: true},
	}
}

// Level returns the level of the target ciphertext.
func (ct Ciphertext) Level() int {
	return ct.Value[0].Level()
}

// CopyNew creates a new element as a copy of the target element.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{
		Value: [2]ring.Poly{
			ct.Value[0].CopyNew(),
			ct.Value[1].CopyNew(),
		},
		MetaData: ct.MetaData.CopyNew(),
	}
}

// Equal performs a deep equal between the target and the other ciphertext.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value[0].Equal(other.Value[0]) &&
		ct.Value[1].Equal(other.Value[1]) &&
		ct.MetaData.Equal(other.MetaData)
}
