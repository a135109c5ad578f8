package rlwe

import (
	"fmt"

	"github.com/rhea-fhe/rhea/ring"
	"github.com/rhea-fhe/rhea/utils/sampling"
	"github.com/zeebo/blake3"
)

const seedKeySize = 32

// KeyGenerator is a structure that stores the elements required to create
// new secret keys. A KeyGenerator is not safe for concurrent use.
type KeyGenerator struct {
	params Parameters
	xs     ring.Sampler
}

// NewKeyGenerator creates a new KeyGenerator sampling uniform ternary
// secret keys from the system entropy source.
func NewKeyGenerator(params Parameters) (kgen *KeyGenerator, err error) {

	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, err
	}

	return newKeyGenerator(params, prng)
}

// NewKeyGeneratorFromSeed creates a new deterministic KeyGenerator: the seed
// is hashed into a PRNG key, so that the same seed always produces the same
// sequence of secret keys.
func NewKeyGeneratorFromSeed(params Parameters, seed []byte) (kgen *KeyGenerator, err error) {

	hasher := blake3.New()
	if _, err = hasher.Write(seed); err != nil {
		return nil, err
	}

	prng, err := sampling.NewKeyedPRNG(hasher.Sum(nil)[:seedKeySize])
	if err != nil {
		return nil, err
	}

	return newKeyGenerator(params, prng)
}

func newKeyGenerator(params Parameters, prng sampling.PRNG) (kgen *KeyGenerator, err error) {

	// Uniform ternary distribution: each coefficient is -1, 0 or 1 with
	// probability 1/3.
	xs, err := ring.NewTernarySampler(prng, params.RingQ(), ring.Ternary{P: 2.0 / 3.0}, false)
	if err != nil {
		return nil, fmt.Errorf("cannot instantiate ternary sampler: %w", err)
	}

	return &KeyGenerator{
		params: params,
		xs:     xs,
	}, nil
}

// GenSecretKeyNew samples a new uniform ternary secret key at the maximum
// level of the parameters and returns it in the NTT domain.
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = &SecretKey{value: kgen.params.RingQ().NewPoly()}
	kgen.GenSecretKey(sk)
	return
}

// GenSecretKey samples a new uniform ternary secret key on the preallocated sk.
func (kgen *KeyGenerator) GenSecretKey(sk *SecretKey) {

	ringQ := kgen.params.RingQ()

	kgen.xs.Read(sk.value)
	ringQ.NTT(sk.value, sk.value)
}
