// Package factorization implements integer factorization for the primitive
// root search of the NTT constants generation.
package factorization

import (
	"math/big"

	"github.com/rhea-fhe/rhea/utils/sampling"
)

// Smallest 100 primes, used for the trial division before Pollard's rho.
var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// IsPrime returns true if the target integer passes the big.Int
// ProbablyPrime test, which is 100% accurate for inputs below 2^64.
func IsPrime(i *big.Int) bool {
	return i.ProbablyPrime(0)
}

// GetFactors returns all the distinct prime factors of m.
// Smaller factors are found by trial division and the remaining
// cofactors are split with Pollard's rho algorithm.
func GetFactors(m *big.Int) (factors []*big.Int) {

	n := new(big.Int).Set(m)

	zero := new(big.Int)
	one := new(big.Int).SetUint64(1)
	tmp := new(big.Int)

	for _, p := range smallPrimes {

		bigP := new(big.Int).SetUint64(p)

		if tmp.Mod(n, bigP).Cmp(zero) == 0 {

			factors = append(factors, bigP)

			for tmp.Mod(n, bigP).Cmp(zero) == 0 {
				n.Quo(n, bigP)
			}
		}
	}

	if n.Cmp(one) == 0 {
		return
	}

	// Splits the remaining cofactor with Pollard's rho
	composites := []*big.Int{n}
	distinct := map[string]*big.Int{}

	for len(composites) > 0 {

		c := composites[len(composites)-1]
		composites = composites[:len(composites)-1]

		if IsPrime(c) {
			distinct[c.String()] = c
			continue
		}

		d := GetFactorPollardRho(c)

		composites = append(composites, d, new(big.Int).Quo(c, d))
	}

	for _, f := range distinct {
		factors = append(factors, f)
	}

	return
}

// GetFactorPollardRho returns a non-trivial factor of the composite
// integer m using Pollard's rho algorithm with Brent's cycle detection.
func GetFactorPollardRho(m *big.Int) (factor *big.Int) {

	zero := new(big.Int)
	one := new(big.Int).SetUint64(1)
	two := new(big.Int).SetUint64(2)

	if new(big.Int).Mod(m, two).Cmp(zero) == 0 {
		return two
	}

	tmp := new(big.Int)

	for {

		x := sampling.RandInt(m)
		y := new(big.Int).Set(x)
		c := sampling.RandInt(m)

		d := new(big.Int).SetUint64(1)

		for d.Cmp(one) == 0 {

			// x = x^2 + c mod m
			x.Mod(tmp.Add(tmp.Mul(x, x), c), m)

			// y advances twice as fast
			y.Mod(tmp.Add(tmp.Mul(y, y), c), m)
			y.Mod(tmp.Add(tmp.Mul(y, y), c), m)

			tmp.Abs(tmp.Sub(x, y))

			if tmp.Cmp(zero) == 0 {
				// Cycle without a factor, restart with new seeds
				d.Set(m)
			} else {
				d.GCD(nil, nil, tmp, m)
			}
		}

		if d.Cmp(m) != 0 {
			return d
		}
	}
}
