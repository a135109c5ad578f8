package ring

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhea-fhe/rhea/utils/sampling"
)

var testLogN = []int{3, 12}

func testString(opname string, ringQ *Ring) string {
	return fmt.Sprintf("%s/N=%d/limbs=%d", opname, ringQ.N(), ringQ.ModuliChainLength())
}

type testParams struct {
	ringQ           *Ring
	prng            sampling.PRNG
	uniformSamplerQ *UniformSampler
}

func genTestParams(logN, logQ, limbs int) (tc *testParams, err error) {

	tc = new(testParams)

	N := 1 << logN

	qi, err := GenerateNTTPrimes(logQ, N<<1, limbs)
	if err != nil {
		return nil, err
	}

	if tc.ringQ, err = NewRing(N, qi); err != nil {
		return nil, err
	}

	if tc.prng, err = sampling.NewPRNG(); err != nil {
		return nil, err
	}

	tc.uniformSamplerQ = NewUniformSampler(tc.prng, tc.ringQ)

	return
}

func TestRing(t *testing.T) {

	testNewRing(t)
	testMulModConstants(t)
	testModularReduction(t)
	testGenerateNTTPrimes(t)
	testFixedVectors(t)
	testNonNTTRing(t)

	for _, logN := range testLogN {

		tc, err := genTestParams(logN, 55, 2)
		require.NoError(t, err)

		testMulCoeffs(tc, t)
		testStrictReduce(tc, t)
		testNTT(tc, t)
		testUniformSampler(tc, t)
		testTernarySampler(tc, t)
		testPolyToBigint(tc, t)
	}
}

func testNewRing(t *testing.T) {

	t.Run("NewRing", func(t *testing.T) {

		var err error

		// Invalid degree
		_, err = NewRing(0, []uint64{977})
		require.Error(t, err)

		// Degree not a power of two
		_, err = NewRing(12, []uint64{977})
		require.Error(t, err)

		// Empty modulus chain
		_, err = NewRing(16, []uint64{})
		require.Error(t, err)

		// Even modulus
		_, err = NewRing(16, []uint64{976})
		require.Error(t, err)

		// Modulus too large
		_, err = NewRing(16, []uint64{1 << 63})
		require.Error(t, err)

		// Repeated modulus
		_, err = NewRing(16, []uint64{977, 977})
		require.Error(t, err)

		r, err := NewRing(16, []uint64{0x10001})
		require.NoError(t, err)
		require.Equal(t, 16, r.N())
		require.Equal(t, 4, r.LogN())
		require.Equal(t, uint64(32), r.NthRoot())
		require.True(t, r.NTTEnabled())
	})
}

func testMulModConstants(t *testing.T) {

	t.Run("GenMulModConstants", func(t *testing.T) {

		for _, q := range []uint64{3, 17, 0x10001, 1000000007, 0x1fffffffffe00001, 0x7FFFFFFFFFFFFFFF} {

			c, err := GenMulModConstants(q)
			require.NoError(t, err)

			// q * (q^-1 mod 2^64) = 1 mod 2^64
			require.Equal(t, uint64(1), q*c.MRedConstant)

			bigQ := new(big.Int).SetUint64(q)

			// floor(2^128/q)
			bred := new(big.Int).Quo(new(big.Int).Lsh(big.NewInt(1), 128), bigQ)
			require.Equal(t, new(big.Int).Rsh(bred, 64).Uint64(), c.BRedConstant[0])
			require.Equal(t, new(big.Int).And(bred, new(big.Int).SetUint64(0xFFFFFFFFFFFFFFFF)).Uint64(), c.BRedConstant[1])

			// 2^64 mod q
			rMont := new(big.Int).Mod(new(big.Int).Lsh(big.NewInt(1), 64), bigQ)
			require.Equal(t, rMont.Uint64(), c.RMont)

			// floor(RMont * 2^64 / q)
			rMontShoup := new(big.Int).Quo(new(big.Int).Lsh(rMont, 64), bigQ)
			require.Equal(t, rMontShoup.Uint64(), c.RMontShoup)
		}

		_, err := GenMulModConstants(0)
		require.Error(t, err)
		_, err = GenMulModConstants(976)
		require.Error(t, err)
		_, err = GenMulModConstants(1 << 63)
		require.Error(t, err)
	})

	t.Run("GetMulModConstants", func(t *testing.T) {

		c0, err := GetMulModConstants(0x3ee0001)
		require.NoError(t, err)
		c1, err := GetMulModConstants(0x3ee0001)
		require.NoError(t, err)
		require.Equal(t, c0, c1)

		_, err = GetMulModConstants(0x3ee0000)
		require.Error(t, err)
	})

	t.Run("GetMulModConstants/Concurrent", func(t *testing.T) {

		moduli := []uint64{65537, 786433, 1000000007, 0x1fffffffffe00001}

		results := make([][]MulModConstants, 32)
		errs := make([]error, 32)

		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for _, q := range moduli {
					c, err := GetMulModConstants(q)
					if err != nil {
						errs[i] = err
						return
					}
					results[i] = append(results[i], c)
				}
			}(i)
		}
		wg.Wait()

		for i := range results {
			require.NoError(t, errs[i])
			require.Equal(t, results[0], results[i])
		}
	})
}

func testModularReduction(t *testing.T) {

	t.Run("ModularReduction", func(t *testing.T) {

		for _, q := range []uint64{17, 1000000007, 0x1fffffffffe00001, 0x7FFFFFFFFFFFFFFF} {

			c, err := GetMulModConstants(q)
			require.NoError(t, err)

			bigQ := new(big.Int).SetUint64(q)

			prodMod := func(x, y uint64) uint64 {
				res := new(big.Int).SetUint64(x)
				res.Mul(res, new(big.Int).SetUint64(y))
				res.Mod(res, bigQ)
				return res.Uint64()
			}

			// Barrett accepts arbitrary 64-bit operands.
			for _, x := range []uint64{0, 1, 2, q - 1, q, 0xFFFFFFFFFFFFFFFF} {
				for _, y := range []uint64{0, 1, 2, q - 1, q, 0xFFFFFFFFFFFFFFFF} {

					ref := prodMod(x, y)

					require.Equalf(t, ref, BRed(x, y, q, c.BRedConstant), "x = %v, y = %v", x, y)

					lazy := BRedLazy(x, y, q, c.BRedConstant)
					require.Lessf(t, lazy, 2*q, "x = %v, y = %v", x, y)
					require.Equalf(t, ref, CRed(lazy, q), "x = %v, y = %v", x, y)
				}
			}

			// Montgomery form against the big.Int reference.
			for _, a := range []uint64{0, 1, 2, 12345, q >> 1, q - 1} {

				ref := new(big.Int).SetUint64(a)
				ref.Lsh(ref, 64)
				ref.Mod(ref, bigQ)

				require.Equalf(t, ref.Uint64(), MForm(a, q, c.BRedConstant), "a = %v", a)

				lazy := MFormLazy(a, q, c.BRedConstant)
				require.Lessf(t, lazy, 2*q, "a = %v", a)
				require.Equalf(t, ref.Uint64(), CRed(lazy, q), "a = %v", a)

				require.Equalf(t, a, IMForm(MForm(a, q, c.BRedConstant), q, c.MRedConstant), "a = %v", a)
			}

			// Montgomery with one operand in the Montgomery form.
			for _, x := range []uint64{0, 1, 2, q - 1, q, 0xFFFFFFFFFFFFFFFF} {
				for _, y := range []uint64{0, 1, 2, q - 1} {

					ref := prodMod(x%q, y)
					yMont := MForm(y, q, c.BRedConstant)

					require.Equalf(t, ref, MRed(x%q, yMont, q, c.MRedConstant), "x = %v, y = %v", x, y)

					lazy := MRedLazy(x%q, yMont, q, c.MRedConstant)
					require.Lessf(t, lazy, 2*q, "x = %v, y = %v", x, y)
					require.Equalf(t, ref, BRedAdd(lazy, q, c.BRedConstant), "x = %v, y = %v", x, y)
				}
			}

			// Harvey with a Shoup-precomputed constant, arbitrary left operand.
			for _, y := range []uint64{0, 1, 2, q - 1} {

				yShoup, _ := new(big.Int).QuoRem(new(big.Int).Lsh(new(big.Int).SetUint64(y), 64), bigQ, new(big.Int))

				for _, x := range []uint64{0, 1, 2, q - 1, q, 0xFFFFFFFFFFFFFFFF} {

					ref := prodMod(x, y)

					require.Equalf(t, ref, HRed(x, y, yShoup.Uint64(), q), "x = %v, y = %v", x, y)

					lazy := HRedLazy(x, y, yShoup.Uint64(), q)
					require.Lessf(t, lazy, 2*q, "x = %v, y = %v", x, y)
					require.Equalf(t, ref, CRed(lazy, q), "x = %v, y = %v", x, y)
				}
			}

			// Hybrid Montgomery-Harvey on plain residues.
			operands := []uint64{0, 1, 2, q >> 1, q - 2, q - 1}
			for i := 0; i < 16; i++ {
				operands = append(operands, sampling.RandUint64()%q)
			}

			for _, x := range operands {
				for _, y := range operands {

					ref := prodMod(x, y)

					require.Equalf(t, ref, MHRed(x, y, q, c.MRedConstant, c.RMont, c.RMontShoup), "x = %v, y = %v", x, y)

					lazy := MHRedLazy(x, y, q, c.MRedConstant, c.RMont, c.RMontShoup)
					require.Lessf(t, lazy, 2*q, "x = %v, y = %v", x, y)
					require.Equalf(t, ref, CRed(lazy, q), "x = %v, y = %v", x, y)
				}
			}

			// CRed maps [0, 2q) on [0, q).
			require.Equal(t, uint64(0), CRed(0, q))
			require.Equal(t, q-1, CRed(q-1, q))
			require.Equal(t, uint64(0), CRed(q, q))
			require.Equal(t, q-1, CRed(2*q-1, q))
		}
	})
}

func testGenerateNTTPrimes(t *testing.T) {

	t.Run("GenerateNTTPrimes", func(t *testing.T) {

		NthRoot := 1 << 11

		primes, err := GenerateNTTPrimes(55, NthRoot, 8)
		require.NoError(t, err)
		require.Equal(t, 8, len(primes))

		for _, q := range primes {
			require.Equal(t, uint64(1), q&uint64(NthRoot-1))
			require.True(t, IsPrime(q))
		}

		qNext, err := NextNTTPrime(primes[0], NthRoot)
		require.NoError(t, err)
		require.Greater(t, qNext, primes[0])
		require.Equal(t, uint64(1), qNext&uint64(NthRoot-1))
		require.True(t, IsPrime(qNext))

		qPrev, err := PreviousNTTPrime(primes[0], NthRoot)
		require.NoError(t, err)
		require.Less(t, qPrev, primes[0])
		require.Equal(t, uint64(1), qPrev&uint64(NthRoot-1))
		require.True(t, IsPrime(qPrev))
	})
}

// testFixedVectors checks the coefficient-wise multiplication entry points
// against hand-computed values for a small modulus, and the lazy outputs
// against the [0, 2q) bound for a larger one.
func testFixedVectors(t *testing.T) {

	t.Run("FixedVectors/q=17", func(t *testing.T) {

		q := uint64(17)
		c, err := GetMulModConstants(q)
		require.NoError(t, err)

		a := []uint64{5, 9, 16}
		b := []uint64{3, 2, 16}
		want := []uint64{15, 1, 1}

		out := make([]uint64, 3)

		MulHybridReduceVec(a, b, out, q, c.MRedConstant, c.RMont, c.RMontShoup)
		require.Equal(t, want, out)

		MulBarrettReduceVec(a, b, out, q, c.BRedConstant)
		require.Equal(t, want, out)

		MulHybridReduceLazyVec(a, b, out, q, c.MRedConstant, c.RMont, c.RMontShoup)
		for i := range out {
			require.Less(t, out[i], 2*q)
		}
		StrictReduceVec(out, out, q)
		require.Equal(t, want, out)

		MulBarrettReduceLazyVec(a, b, out, q, c.BRedConstant)
		for i := range out {
			require.Less(t, out[i], 2*q)
		}
		StrictReduceVec(out, out, q)
		require.Equal(t, want, out)

		// Reducing an already strict vector is the identity.
		StrictReduceVec(out, out, q)
		require.Equal(t, want, out)

		// In-place operation on either operand, for both reduction paths.
		aliased := append([]uint64{}, a...)
		MulHybridReduceVec(aliased, b, aliased, q, c.MRedConstant, c.RMont, c.RMontShoup)
		require.Equal(t, want, aliased)

		aliased = append([]uint64{}, b...)
		MulHybridReduceVec(a, aliased, aliased, q, c.MRedConstant, c.RMont, c.RMontShoup)
		require.Equal(t, want, aliased)

		aliased = append([]uint64{}, a...)
		MulBarrettReduceVec(aliased, b, aliased, q, c.BRedConstant)
		require.Equal(t, want, aliased)

		aliased = append([]uint64{}, b...)
		MulBarrettReduceVec(a, aliased, aliased, q, c.BRedConstant)
		require.Equal(t, want, aliased)
	})

	t.Run("FixedVectors/q=1000000007", func(t *testing.T) {

		q := uint64(1000000007)
		c, err := GetMulModConstants(q)
		require.NoError(t, err)

		bigQ := new(big.Int).SetUint64(q)

		N := 16
		a := make([]uint64, N)
		b := make([]uint64, N)
		for i := range a {
			a[i] = sampling.RandUint64() % q
			b[i] = sampling.RandUint64() % q
		}

		want := make([]uint64, N)
		for i := range want {
			ref := new(big.Int).SetUint64(a[i])
			ref.Mul(ref, new(big.Int).SetUint64(b[i]))
			ref.Mod(ref, bigQ)
			want[i] = ref.Uint64()
		}

		hybrid := make([]uint64, N)
		barrett := make([]uint64, N)

		MulHybridReduceVec(a, b, hybrid, q, c.MRedConstant, c.RMont, c.RMontShoup)
		require.Equal(t, want, hybrid)

		MulBarrettReduceVec(a, b, barrett, q, c.BRedConstant)
		require.Equal(t, want, barrett)

		MulHybridReduceLazyVec(a, b, hybrid, q, c.MRedConstant, c.RMont, c.RMontShoup)
		MulBarrettReduceLazyVec(a, b, barrett, q, c.BRedConstant)
		for i := 0; i < N; i++ {
			require.Less(t, hybrid[i], 2*q)
			require.Less(t, barrett[i], 2*q)
		}

		StrictReduceVec(hybrid, hybrid, q)
		StrictReduceVec(barrett, barrett, q)
		require.Equal(t, want, hybrid)
		require.Equal(t, want, barrett)
	})
}

// testNonNTTRing checks that a ring without NTT-friendly moduli still
// supports the coefficient-wise arithmetic.
func testNonNTTRing(t *testing.T) {

	t.Run("NonNTTRing", func(t *testing.T) {

		r, err := NewRing(8, []uint64{1000000007})
		require.NoError(t, err)
		require.False(t, r.NTTEnabled())

		p1 := r.NewPoly()
		p2 := r.NewPoly()
		p3 := r.NewPoly()

		for i := 0; i < r.N(); i++ {
			p1.Coeffs[0][i] = uint64(i + 1)
			p2.Coeffs[0][i] = uint64(2*i + 1)
		}

		r.MulCoeffsHybrid(p1, p2, p3)

		for i := 0; i < r.N(); i++ {
			require.Equal(t, uint64((i+1)*(2*i+1)), p3.Coeffs[0][i])
		}
	})

	t.Run("NonNTTRing/MixedModuli", func(t *testing.T) {

		// The first modulus supports the NTT for N=8 but the second does
		// not, so the whole chain falls back to the coefficient domain.
		r, err := NewRing(8, []uint64{0x10001, 1000000007})
		require.NoError(t, err)
		require.False(t, r.NTTEnabled())

		p1 := r.NewPoly()
		p2 := r.NewPoly()

		// The tables of every SubRing are reset, including the one of the
		// NTT-friendly modulus, and its transformer must see the reset
		// table rather than partially generated roots.
		require.Panics(t, func() { r.SubRings[0].NTT(p1.Coeffs[0], p2.Coeffs[0]) })
		require.Panics(t, func() { r.NTT(p1, p2) })
	})
}

func testMulCoeffs(tc *testParams, t *testing.T) {

	t.Run(testString("MulCoeffs", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		p1 := tc.uniformSamplerQ.ReadNew()
		p2 := tc.uniformSamplerQ.ReadNew()

		hybrid := ringQ.NewPoly()
		barrett := ringQ.NewPoly()
		hybridLazy := ringQ.NewPoly()
		barrettLazy := ringQ.NewPoly()

		ringQ.MulCoeffsHybrid(p1, p2, hybrid)
		ringQ.MulCoeffsBarrett(p1, p2, barrett)
		ringQ.MulCoeffsHybridLazy(p1, p2, hybridLazy)
		ringQ.MulCoeffsBarrettLazy(p1, p2, barrettLazy)

		for j, s := range ringQ.SubRings {
			for i := 0; i < ringQ.N(); i++ {
				require.Less(t, hybridLazy.Coeffs[j][i], 2*s.Modulus)
				require.Less(t, barrettLazy.Coeffs[j][i], 2*s.Modulus)
			}
		}

		ringQ.StrictReduce(hybridLazy, hybridLazy)
		ringQ.StrictReduce(barrettLazy, barrettLazy)

		require.True(t, hybrid.Equal(barrett))
		require.True(t, hybrid.Equal(hybridLazy))
		require.True(t, hybrid.Equal(barrettLazy))

		for j, s := range ringQ.SubRings {

			bigQ := new(big.Int).SetUint64(s.Modulus)

			for i := 0; i < ringQ.N(); i++ {
				ref := new(big.Int).SetUint64(p1.Coeffs[j][i])
				ref.Mul(ref, new(big.Int).SetUint64(p2.Coeffs[j][i]))
				ref.Mod(ref, bigQ)
				require.Equal(t, ref.Uint64(), hybrid.Coeffs[j][i])
			}
		}
	})
}

func testStrictReduce(tc *testParams, t *testing.T) {

	t.Run(testString("StrictReduce", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		p1 := tc.uniformSamplerQ.ReadNew()
		p2 := tc.uniformSamplerQ.ReadNew()

		sum := ringQ.NewPoly()
		sumLazy := ringQ.NewPoly()

		ringQ.Add(p1, p2, sum)
		ringQ.AddLazy(p1, p2, sumLazy)

		ringQ.StrictReduce(sumLazy, sumLazy)
		require.True(t, sum.Equal(sumLazy))

		// Idempotent on strict inputs.
		ringQ.StrictReduce(sumLazy, sumLazy)
		require.True(t, sum.Equal(sumLazy))
	})
}

func testNTT(tc *testParams, t *testing.T) {

	t.Run(testString("NTT", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		p1 := tc.uniformSamplerQ.ReadNew()

		p2 := ringQ.NewPoly()
		p3 := ringQ.NewPoly()

		ringQ.NTT(p1, p2)
		ringQ.INTT(p2, p3)
		require.True(t, p1.Equal(p3))

		// Lazy outputs stay in [0, 2q) and reduce to the strict results.
		ringQ.NTTLazy(p1, p3)
		for j, s := range ringQ.SubRings {
			for i := 0; i < ringQ.N(); i++ {
				require.Less(t, p3.Coeffs[j][i], 2*s.Modulus)
			}
		}
		ringQ.StrictReduce(p3, p3)
		require.True(t, p2.Equal(p3))

		ringQ.INTTLazy(p2, p3)
		for j, s := range ringQ.SubRings {
			for i := 0; i < ringQ.N(); i++ {
				require.Less(t, p3.Coeffs[j][i], 2*s.Modulus)
			}
		}
		ringQ.StrictReduce(p3, p3)
		require.True(t, p1.Equal(p3))
	})

	if tc.ringQ.N() <= 16 {

		t.Run(testString("NTT/Negacyclic", tc.ringQ), func(t *testing.T) {

			ringQ := tc.ringQ
			N := ringQ.N()

			p1 := tc.uniformSamplerQ.ReadNew()
			p2 := tc.uniformSamplerQ.ReadNew()

			p1NTT := ringQ.NewPoly()
			p2NTT := ringQ.NewPoly()
			p3 := ringQ.NewPoly()

			ringQ.NTT(p1, p1NTT)
			ringQ.NTT(p2, p2NTT)
			ringQ.MulCoeffsHybrid(p1NTT, p2NTT, p3)
			ringQ.INTT(p3, p3)

			// Schoolbook multiplication modulo X^N + 1.
			for j, s := range ringQ.SubRings {

				bigQ := new(big.Int).SetUint64(s.Modulus)

				ref := make([]*big.Int, N)
				for i := range ref {
					ref[i] = new(big.Int)
				}

				for i := 0; i < N; i++ {
					for k := 0; k < N; k++ {
						prod := new(big.Int).SetUint64(p1.Coeffs[j][i])
						prod.Mul(prod, new(big.Int).SetUint64(p2.Coeffs[j][k]))
						if i+k < N {
							ref[i+k].Add(ref[i+k], prod)
						} else {
							ref[i+k-N].Sub(ref[i+k-N], prod)
						}
					}
				}

				for i := 0; i < N; i++ {
					ref[i].Mod(ref[i], bigQ)
					require.Equal(t, ref[i].Uint64(), p3.Coeffs[j][i])
				}
			}
		})
	}
}

func testUniformSampler(tc *testParams, t *testing.T) {

	t.Run(testString("UniformSampler/Read", tc.ringQ), func(t *testing.T) {
		pol := tc.ringQ.NewPoly()
		tc.uniformSamplerQ.Read(pol)
		for j, s := range tc.ringQ.SubRings {
			for i := 0; i < tc.ringQ.N(); i++ {
				require.Less(t, pol.Coeffs[j][i], s.Modulus)
			}
		}
	})

	t.Run(testString("UniformSampler/ReadNew", tc.ringQ), func(t *testing.T) {
		pol := tc.uniformSamplerQ.ReadNew()
		for j, s := range tc.ringQ.SubRings {
			for i := 0; i < tc.ringQ.N(); i++ {
				require.Less(t, pol.Coeffs[j][i], s.Modulus)
			}
		}
	})
}

func testTernarySampler(tc *testParams, t *testing.T) {

	for _, p := range []float64{.5, 2. / 3., 1. / 3.} {

		t.Run(testString(fmt.Sprintf("TernarySampler/p=%1.2f", p), tc.ringQ), func(t *testing.T) {

			ringQ := tc.ringQ

			sampler, err := NewSampler(tc.prng, ringQ, Ternary{P: p}, false)
			require.NoError(t, err)

			pol := sampler.ReadNew()

			for i := 0; i < ringQ.N(); i++ {

				// The symbol must be consistent across the modulus chain.
				ref := pol.Coeffs[0][i]
				require.True(t, ref == 0 || ref == 1 || ref == ringQ.SubRings[0].Modulus-1)

				for j, s := range ringQ.SubRings {
					coeff := pol.Coeffs[j][i]
					switch ref {
					case 0:
						require.Equal(t, uint64(0), coeff)
					case 1:
						require.Equal(t, uint64(1), coeff)
					default:
						require.Equal(t, s.Modulus-1, coeff)
					}
				}
			}
		})
	}

	t.Run(testString("TernarySampler/Montgomery", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		sampler, err := NewTernarySampler(tc.prng, ringQ, Ternary{P: 2. / 3.}, true)
		require.NoError(t, err)

		pol := sampler.ReadNew()

		for j, s := range ringQ.SubRings {

			one := MForm(1, s.Modulus, s.BRedConstant)
			minusOne := MForm(s.Modulus-1, s.Modulus, s.BRedConstant)

			for i := 0; i < ringQ.N(); i++ {
				coeff := pol.Coeffs[j][i]
				require.True(t, coeff == 0 || coeff == one || coeff == minusOne)
			}
		}
	})

	t.Run(testString("TernarySampler/Sparse", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		hw := ringQ.N() >> 1

		sampler, err := NewTernarySampler(tc.prng, ringQ, Ternary{H: hw}, false)
		require.NoError(t, err)

		pol := sampler.ReadNew()

		nonZero := 0
		for i := 0; i < ringQ.N(); i++ {
			coeff := pol.Coeffs[0][i]
			require.True(t, coeff == 0 || coeff == 1 || coeff == ringQ.SubRings[0].Modulus-1)
			if coeff != 0 {
				nonZero++
			}
		}

		require.Equal(t, hw, nonZero)
	})
}

func testPolyToBigint(tc *testParams, t *testing.T) {

	t.Run(testString("PolyToBigint", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		p1 := tc.uniformSamplerQ.ReadNew()

		coeffsBigint := make([]*big.Int, ringQ.N())
		for i := range coeffsBigint {
			coeffsBigint[i] = new(big.Int)
		}
		ringQ.PolyToBigint(p1, 1, coeffsBigint)

		for j, s := range ringQ.SubRings {

			bigQ := new(big.Int).SetUint64(s.Modulus)

			for i := 0; i < ringQ.N(); i++ {
				require.Equal(t, p1.Coeffs[j][i], new(big.Int).Mod(coeffsBigint[i], bigQ).Uint64())
			}
		}
	})

	t.Run(testString("PolyToBigintCentered", tc.ringQ), func(t *testing.T) {

		ringQ := tc.ringQ

		p1 := ringQ.NewPoly()

		// Encode -2 and 3 as RNS residues.
		for j, s := range ringQ.SubRings {
			p1.Coeffs[j][0] = s.Modulus - 2
			p1.Coeffs[j][1] = 3
		}

		coeffsBigint := make([]*big.Int, ringQ.N())
		for i := range coeffsBigint {
			coeffsBigint[i] = new(big.Int)
		}
		ringQ.PolyToBigintCentered(p1, 1, coeffsBigint)

		require.Equal(t, int64(-2), coeffsBigint[0].Int64())
		require.Equal(t, int64(3), coeffsBigint[1].Int64())
		for i := 2; i < ringQ.N(); i++ {
			require.Equal(t, int64(0), coeffsBigint[i].Int64())
		}
	})

	if tc.ringQ.N() >= 512 {

		t.Run(testString("Stats", tc.ringQ), func(t *testing.T) {

			sampler, err := NewTernarySampler(tc.prng, tc.ringQ, Ternary{P: 2. / 3.}, false)
			require.NoError(t, err)

			mean, stdDev := tc.ringQ.Stats(sampler.ReadNew())

			// Expected standard deviation of the uniform ternary
			// distribution is sqrt(2/3) ~= 0.8165.
			require.InDelta(t, 0, mean, 0.2)
			require.InDelta(t, 0.8165, stdDev, 0.2)
		})
	}
}
