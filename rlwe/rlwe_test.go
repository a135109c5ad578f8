package rlwe

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhea-fhe/rhea/ring"
)

func testString(opname string, params Parameters) string {
	return fmt.Sprintf("%s/logN=%d/limbs=%d", opname, params.LogN(), len(params.qi))
}

func genTestParams(logN, logQ, limbs int) (params Parameters, err error) {

	qi, err := ring.GenerateNTTPrimes(logQ, 2<<logN, limbs)
	if err != nil {
		return Parameters{}, err
	}

	return NewParameters(logN, qi)
}

func TestRLWE(t *testing.T) {

	testParameters(t)

	for _, logN := range []int{3, 8} {

		params, err := genTestParams(logN, 30, 2)
		require.NoError(t, err)

		testMetaData(params, t)
		testPlaintext(params, t)
		testCiphertext(params, t)
		testKeyGenerator(params, t)
		testDeterministicKeyGenerator(params, t)
	}
}

func testParameters(t *testing.T) {

	t.Run("Parameters", func(t *testing.T) {

		var err error

		// Out of range degree
		_, err = NewParameters(0, []uint64{0x10001})
		require.Error(t, err)
		_, err = NewParameters(18, []uint64{0x10001})
		require.Error(t, err)

		// Non NTT-friendly modulus
		_, err = NewParameters(3, []uint64{1000000007})
		require.Error(t, err)

		// Even modulus
		_, err = NewParameters(3, []uint64{0x10000})
		require.Error(t, err)

		params, err := NewParameters(4, []uint64{0x10001})
		require.NoError(t, err)
		require.Equal(t, 16, params.N())
		require.Equal(t, 4, params.LogN())
		require.Equal(t, 0, params.MaxLevel())

		// Q returns a copy of the modulus chain.
		q := params.Q()
		q[0] = 0
		require.Equal(t, []uint64{0x10001}, params.Q())
	})
}

func testMetaData(params Parameters, t *testing.T) {

	t.Run(testString("MetaData", params), func(t *testing.T) {

		m := MetaData{IsNTT: true}

		mCpy := m.CopyNew()
		require.True(t, m.Equal(mCpy))

		mCpy.IsMontgomery = true
		require.False(t, m.Equal(mCpy))
	})
}

func testPlaintext(params Parameters, t *testing.T) {

	t.Run(testString("Plaintext", params), func(t *testing.T) {

		pt := NewPlaintext(params)

		require.Equal(t, params.MaxLevel(), pt.Level())
		require.False(t, pt.IsNTT)

		ptCpy := pt.CopyNew()
		require.True(t, pt.Equal(ptCpy))

		// The copy does not share its backing array.
		ptCpy.Value.Coeffs[0][0] = 1
		require.False(t, pt.Equal(ptCpy))

		ptCpy.Value.Coeffs[0][0] = 0
		ptCpy.IsNTT = true
		require.False(t, pt.Equal(ptCpy))
	})
}

func testCiphertext(params Parameters, t *testing.T) {

	t.Run(testString("Ciphertext", params), func(t *testing.T) {

		ct := NewCiphertext(params)

		require.Equal(t, params.MaxLevel(), ct.Level())
		require.True(t, ct.IsNTT)

		ctCpy := ct.CopyNew()
		require.True(t, ct.Equal(ctCpy))

		ctCpy.Value[1].Coeffs[0][0] = 1
		require.False(t, ct.Equal(ctCpy))
	})
}

func testKeyGenerator(params Parameters, t *testing.T) {

	t.Run(testString("KeyGenerator/GenSecretKey", params), func(t *testing.T) {

		kgen, err := NewKeyGenerator(params)
		require.NoError(t, err)

		sk := kgen.GenSecretKeyNew()
		require.Equal(t, params.MaxLevel(), sk.Level())

		ringQ := params.RingQ()

		skINTT := sk.ValueNew()
		ringQ.INTT(skINTT, skINTT)

		// Each coefficient encodes the same ternary symbol on every
		// component of the modulus chain.
		for i := 0; i < ringQ.N(); i++ {

			ref := skINTT.Coeffs[0][i]
			require.True(t, ref == 0 || ref == 1 || ref == ringQ.SubRings[0].Modulus-1)

			for j, s := range ringQ.SubRings {
				coeff := skINTT.Coeffs[j][i]
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

		// The reconstructed coefficients are in {-1, 0, 1}.
		coeffsBigint := make([]*big.Int, ringQ.N())
		for i := range coeffsBigint {
			coeffsBigint[i] = new(big.Int)
		}
		ringQ.PolyToBigintCentered(skINTT, 1, coeffsBigint)

		for i := range coeffsBigint {
			c := coeffsBigint[i].Int64()
			require.True(t, c == -1 || c == 0 || c == 1)
		}

		skCpy := sk.CopyNew()
		require.True(t, sk.Equal(skCpy))

		skCpy.value.Coeffs[0][0] ^= 1
		require.False(t, sk.Equal(skCpy))
	})
}

func testDeterministicKeyGenerator(params Parameters, t *testing.T) {

	t.Run(testString("KeyGenerator/FromSeed", params), func(t *testing.T) {

		seed := []byte("rhea rlwe keygen test seed")

		kgen0, err := NewKeyGeneratorFromSeed(params, seed)
		require.NoError(t, err)
		kgen1, err := NewKeyGeneratorFromSeed(params, seed)
		require.NoError(t, err)

		// The same seed produces the same sequence of keys.
		require.True(t, kgen0.GenSecretKeyNew().Equal(kgen1.GenSecretKeyNew()))
		require.True(t, kgen0.GenSecretKeyNew().Equal(kgen1.GenSecretKeyNew()))

		if params.N() >= 256 {
			kgen2, err := NewKeyGeneratorFromSeed(params, []byte("a different seed"))
			require.NoError(t, err)
			require.False(t, kgen0.GenSecretKeyNew().Equal(kgen2.GenSecretKeyNew()))
		}
	})
}
