package ring

import (
	"fmt"

	"github.com/rhea-fhe/rhea/utils/sampling"
)

const (
	ternaryDistName = "Ternary"
	uniformDistName = "Uniform"
)

// Sampler is an interface for random polynomial samplers.
// It has a single Read method which takes as argument the polynomial to be
// populated according to the Sampler's distribution.
type Sampler interface {
	Read(pol Poly)
	ReadNew() (pol Poly)
	ReadAndAdd(pol Poly)
	AtLevel(level int) Sampler
}

// DistributionParameters is an interface for distribution
// parameters in the ring.
// There are two implementations of this interface:
//   - Ternary for sampling polynomials with coefficients in [-1, 1].
//   - Uniform for sampling polynomials with uniformly random
//     coefficients in the ring.
type DistributionParameters interface {
	// Type returns a string representation of the distribution name.
	Type() string
	mustBeDist()
}

// Ternary represents the parameters of a distribution with coefficients
// in [-1, 0, 1]. Exactly one of its fields must be set to a non-zero value:
//
//   - If P is set, each coefficient in the polynomial is sampled in [-1, 0, 1]
//     with probabilities [0.5*P, 1-P, 0.5*P].
//   - If H is set, the coefficients are sampled uniformly in the set of ternary
//     polynomials with H non-zero coefficients (i.e., of hamming weight H).
type Ternary struct {
	P float64
	H int
}

// Uniform represents the parameters of a uniform distribution
// i.e., with coefficients uniformly distributed in the given ring.
type Uniform struct{}

// NewSampler instantiates a new Sampler for the given distribution parameters.
// If montgomery is set to true, polynomials read from the sampler are in the
// Montgomery form.
func NewSampler(prng sampling.PRNG, baseRing *Ring, X DistributionParameters, montgomery bool) (Sampler, error) {
	switch X := X.(type) {
	case Ternary:
		return NewTernarySampler(prng, baseRing, X, montgomery)
	case Uniform:
		return NewUniformSampler(prng, baseRing), nil
	default:
		return nil, fmt.Errorf("invalid distribution: want ring.Ternary or ring.Uniform but have %T", X)
	}
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
}

// AtLevel returns an instance of the target base sampler that operates at the target level.
// This instance is not thread safe and cannot be used concurrently to the base instance.
func (b baseSampler) AtLevel(level int) *baseSampler {
	return &baseSampler{
		prng:     b.prng,
		baseRing: b.baseRing.AtLevel(level),
	}
}

type randomBuffer struct {
	randomBufferN []byte
	ptr           int
}

func newRandomBuffer() *randomBuffer {
	return &randomBuffer{
		randomBufferN: make([]byte, 1024),
	}
}

func (d Ternary) Type() string {
	return ternaryDistName
}

func (d Ternary) mustBeDist() {}

func (d Uniform) Type() string {
	return uniformDistName
}

func (d Uniform) mustBeDist() {}
