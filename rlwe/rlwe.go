// Package rlwe implements the primitive types of RLWE-based homomorphic
// encryption: plaintexts, two-component ciphertexts and ternary secret keys,
// all represented as RNS polynomials over a shared ring context.
package rlwe

import (
	"fmt"

	"github.com/rhea-fhe/rhea/ring"
)

// Parameters stores the ring context shared by the RLWE primitive types.
type Parameters struct {
	logN  int
	qi    []uint64
	ringQ *ring.Ring
}

// NewParameters instantiates a new set of Parameters with ring degree 2^logN
// and modulus chain q. The moduli must be distinct NTT-friendly primes
// congruent to 1 modulo 2^(logN+1), so that secret keys can be stored in the
// NTT domain.
func NewParameters(logN int, q []uint64) (p Parameters, err error) {

	if logN < 1 || logN > 17 {
		return Parameters{}, fmt.Errorf("invalid logN: must be in [1, 17] but is %d", logN)
	}

	ringQ, err := ring.NewRing(1<<logN, q)
	if err != nil {
		return Parameters{}, err
	}

	if !ringQ.NTTEnabled() {
		return Parameters{}, fmt.Errorf("invalid moduli: must be NTT-friendly primes congruent to 1 mod %d", 2<<logN)
	}

	qi := make([]uint64, len(q))
	copy(qi, q)

	return Parameters{
		logN:  logN,
		qi:    qi,
		ringQ: ringQ,
	}, nil
}

// N returns the ring degree.
func (p Parameters) N() int {
	return 1 << p.logN
}

// LogN returns log2 of the ring degree.
func (p Parameters) LogN() int {
	return p.logN
}

// Q returns a copy of the modulus chain.
func (p Parameters) Q() []uint64 {
	qi := make([]uint64, len(p.qi))
	copy(qi, p.qi)
	return qi
}

// MaxLevel returns the maximum level of the modulus chain.
func (p Parameters) MaxLevel() int {
	return len(p.qi) - 1
}

// RingQ returns the underlying ring context.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}
