// Package ring implements RNS-accelerated modular arithmetic operations for
// polynomials, including polynomial sampling, the NTT and its inverse, and
// lazy (partially reduced) coefficient-wise modular multiplication based on
// hybrid Montgomery and Barrett reductions.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/rhea-fhe/rhea/utils"
)

// Ring is a structure that keeps all the variables required to operate on a
// polynomial represented in RNS form, with one SubRing per modulus of the chain.
type Ring struct {
	SubRings []*SubRing

	// Product of the moduli at each level
	ModulusAtLevel []*big.Int

	// Current level
	level int
}

// NewRing creates a new RNS Ring with degree N and coefficient moduli Moduli
// with the standard NTT. N must be a power of two larger than 1. Moduli should
// be a non-empty []uint64 of distinct odd moduli smaller than 2^63. An error
// is returned with a nil *Ring if these conditions are not met.
// The NTT constants are only generated when all moduli are NTT-friendly
// primes congruent to 1 modulo 2N; the arithmetic operations remain usable
// either way.
func NewRing(N int, Moduli []uint64) (r *Ring, err error) {

	r = new(Ring)

	if N < 2 || (N&(N-1)) != 0 {
		return nil, fmt.Errorf("invalid ring degree: must be a power of 2 greater than 1 but is %d", N)
	}

	if len(Moduli) == 0 {
		return nil, fmt.Errorf("invalid moduli: empty slice")
	}

	if len(utils.GetDistincts(Moduli)) != len(Moduli) {
		return nil, fmt.Errorf("invalid moduli: all moduli must be distinct")
	}

	r.level = len(Moduli) - 1

	r.SubRings = make([]*SubRing, len(Moduli))
	for i, qi := range Moduli {
		if r.SubRings[i], err = NewSubRing(N, qi); err != nil {
			return nil, fmt.Errorf("invalid modulus at index %d: %w", i, err)
		}
	}

	r.ModulusAtLevel = make([]*big.Int, len(Moduli))
	r.ModulusAtLevel[0] = new(big.Int).SetUint64(Moduli[0])
	for i := 1; i < len(Moduli); i++ {
		r.ModulusAtLevel[i] = new(big.Int).Mul(r.ModulusAtLevel[i-1], new(big.Int).SetUint64(Moduli[i]))
	}

	// NTT constants are optional: they require each modulus to be an
	// NTT-friendly prime for the 2N-th root of unity.
	for _, s := range r.SubRings {
		if err = s.generateNTTConstants(); err != nil {
			break
		}
	}

	if err != nil {
		for _, s := range r.SubRings {
			s.NTTTable = &NTTTable{NthRoot: uint64(N) << 1}
			s.ntt = NewNumberTheoreticTransformerStandard(s, N)
		}
		err = nil
	}

	return r, nil
}

// N returns the ring degree.
func (r *Ring) N() int {
	return r.SubRings[0].N
}

// LogN returns log2(ring degree).
func (r *Ring) LogN() int {
	return bits.Len64(uint64(r.N() - 1))
}

// NthRoot returns the multiplicative order of the primitive root.
func (r *Ring) NthRoot() uint64 {
	return r.SubRings[0].NthRoot
}

// NTTEnabled returns true if the NTT constants of all SubRings have been generated.
func (r *Ring) NTTEnabled() bool {
	for _, s := range r.SubRings {
		if s.RootsForward == nil {
			return false
		}
	}
	return true
}

// Level returns the level of the current ring, i.e. the number of active moduli minus 1.
func (r *Ring) Level() int {
	return r.level
}

// MaxLevel returns the maximum level allowed by the ring.
func (r *Ring) MaxLevel() int {
	return len(r.SubRings) - 1
}

// AtLevel returns an instance of the target ring that operates at the target level.
// This instance is thread safe and can be use concurrently with the base ring.
func (r *Ring) AtLevel(level int) *Ring {

	if level < 0 {
		panic("level cannot be negative")
	}

	if level > r.MaxLevel() {
		panic("level cannot be larger than the maximum level of the ring")
	}

	return &Ring{
		SubRings:       r.SubRings,
		ModulusAtLevel: r.ModulusAtLevel,
		level:          level,
	}
}

// ModuliChain returns the full list of moduli of the ring.
func (r *Ring) ModuliChain() (moduli []uint64) {
	moduli = make([]uint64, len(r.SubRings))
	for i := range r.SubRings {
		moduli[i] = r.SubRings[i].Modulus
	}
	return
}

// ModuliChainLength returns the number of moduli of the ring.
func (r *Ring) ModuliChainLength() int {
	return len(r.SubRings)
}

// Modulus returns the product of the moduli up to the current level.
func (r *Ring) Modulus() *big.Int {
	return r.ModulusAtLevel[r.level]
}

// NewPoly creates a new polynomial with all coefficients set to 0, at the
// level of the ring.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.N(), r.level)
}

// Equal checks if p1 = p2 in the given Ring, up to the current level.
func (r *Ring) Equal(p1, p2 Poly) bool {

	for i := 0; i < r.level+1; i++ {
		if len(p1.Coeffs[i]) != len(p2.Coeffs[i]) {
			return false
		}
	}

	r.Reduce(p1, p1)
	r.Reduce(p2, p2)

	for i := 0; i < r.level+1; i++ {
		if !utils.EqualSliceUint64(p1.Coeffs[i], p2.Coeffs[i]) {
			return false
		}
	}

	return true
}
