package ring

import (
	"fmt"
	"math/bits"
	"sync"
)

// MulModConstants regroups the per-modulus constants used by the fast
// modular multiplication kernels.
type MulModConstants struct {
	// (q^-1) mod 2^64, for the Montgomery reduction.
	MRedConstant uint64
	// floor(2^128/q) (high and low words), for the Barrett reduction.
	BRedConstant [2]uint64
	// 2^64 mod q, the correction factor removing the Montgomery radix.
	RMont uint64
	// floor(RMont*2^64/q), the Shoup quotient paired with RMont.
	RMontShoup uint64
}

// GenMulModConstants computes the MulModConstants for the modulus q.
// q must be odd and lie in (0, 2^63): the Montgomery constant does not
// exist for even moduli and the lazy kernels need one bit of headroom.
func GenMulModConstants(q uint64) (c MulModConstants, err error) {

	if q == 0 {
		return c, fmt.Errorf("invalid modulus: q = 0")
	}

	if q&1 == 0 {
		return c, fmt.Errorf("invalid modulus: q = %d is even", q)
	}

	if bits.Len64(q) > 63 {
		return c, fmt.Errorf("invalid modulus: q = %d is not smaller than 2^63", q)
	}

	c.MRedConstant = GenMRedConstant(q)
	c.BRedConstant = GenBRedConstant(q)

	c.RMont = (0xFFFFFFFFFFFFFFFF % q) + 1
	if c.RMont == q {
		c.RMont = 0
	}

	c.RMontShoup, _ = bits.Div64(c.RMont, 0, q)

	return
}

var mulModConstants sync.Map // uint64 -> MulModConstants

// GetMulModConstants returns the MulModConstants for the modulus q,
// generating and caching them on first use. The cache is shared by the
// whole process and safe for concurrent lookups; repeated calls for the
// same modulus return identical values.
func GetMulModConstants(q uint64) (MulModConstants, error) {

	if v, ok := mulModConstants.Load(q); ok {
		return v.(MulModConstants), nil
	}

	c, err := GenMulModConstants(q)
	if err != nil {
		return c, err
	}

	v, _ := mulModConstants.LoadOrStore(q, c)

	return v.(MulModConstants), nil
}
