package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW primality test, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// GenerateNTTPrimes generates n NthRoot NTT-friendly primes given logQ = size of the primes.
// It will return all the appropriate primes, up to the number of n, with the
// best available deviation from the base power of 2 for the given n.
func GenerateNTTPrimes(logQ, NthRoot, n int) (primes []uint64, err error) {

	if logQ > 61 {
		return nil, fmt.Errorf("logQ must be between 1 and 61 but is %d", logQ)
	}

	if logQ == 61 {
		return generateNTTPrimesP(logQ, NthRoot, n)
	}

	return generateNTTPrimesQ(logQ, NthRoot, n)
}

// NextNTTPrime returns the next NthRoot NTT prime after q.
// The input q must be itself an NTT prime for the given NthRoot.
func NextNTTPrime(q uint64, NthRoot int) (qNext uint64, err error) {

	qNext = q + uint64(NthRoot)

	for !IsPrime(qNext) {

		qNext += uint64(NthRoot)

		if bits.Len64(qNext) > 61 {
			return 0, fmt.Errorf("next NTT prime exceeds the maximum bit-size of 61 bits")
		}
	}

	return qNext, nil
}

// PreviousNTTPrime returns the previous NthRoot NTT prime before q.
// The input q must be itself an NTT prime for the given NthRoot.
func PreviousNTTPrime(q uint64, NthRoot int) (qPrev uint64, err error) {

	if q < uint64(NthRoot) {
		return 0, fmt.Errorf("previous NTT prime is smaller than NthRoot")
	}

	qPrev = q - uint64(NthRoot)

	for !IsPrime(qPrev) {

		if qPrev < uint64(NthRoot) {
			return 0, fmt.Errorf("previous NTT prime is smaller than NthRoot")
		}

		qPrev -= uint64(NthRoot)
	}

	return qPrev, nil
}

// generateNTTPrimesQ generates n different NthRoot NTT-friendly
// primes starting from 2**logQ and alternating between upward and downward.
func generateNTTPrimesQ(logQ, NthRoot, n int) (primes []uint64, err error) {

	var nextPrime, previousPrime, Qpow2 uint64
	var checkfornextprime, checkforpreviousprime bool

	primes = []uint64{}

	Qpow2 = uint64(1 << logQ)

	nextPrime = Qpow2 + 1
	previousPrime = Qpow2 + 1

	checkfornextprime = true
	checkforpreviousprime = true

	for {

		if !(checkfornextprime || checkforpreviousprime) {
			return nil, fmt.Errorf("cannot generate enough primes for logQ=%d NthRoot=%d n=%d", logQ, NthRoot, n)
		}

		if checkfornextprime {

			if nextPrime > 0xFFFFFFFFFFFFFFFF-uint64(NthRoot) {

				checkfornextprime = false

			} else {

				nextPrime += uint64(NthRoot)

				if IsPrime(nextPrime) {

					primes = append(primes, nextPrime)

					if len(primes) == n {
						return primes, nil
					}
				}
			}
		}

		if checkforpreviousprime {

			if previousPrime < uint64(NthRoot) {

				checkforpreviousprime = false

			} else {

				previousPrime -= uint64(NthRoot)

				if IsPrime(previousPrime) {

					primes = append(primes, previousPrime)

					if len(primes) == n {
						return primes, nil
					}
				}
			}
		}
	}
}

// generateNTTPrimesP generates n different NthRoot NTT-friendly
// primes starting from 2**logP and downward.
func generateNTTPrimesP(logP, NthRoot, n int) (primes []uint64, err error) {

	var x uint64

	primes = []uint64{}

	x = uint64(1<<logP) + 1

	for {

		// Subtracts the NthRoot to ensure that the prime bit-length is smaller than logP

		if x > uint64(NthRoot) {

			x -= uint64(NthRoot)

			if IsPrime(x) {

				primes = append(primes, x)

				if len(primes) == n {
					return primes, nil
				}
			}

		} else {
			return nil, fmt.Errorf("cannot generate enough primes for logP=%d NthRoot=%d n=%d", logP, NthRoot, n)
		}
	}
}
