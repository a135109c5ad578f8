package ring

import (
	"math/big"
	"math/bits"
)

// GenBRedConstant computes the constant for the Barrett reduction with
// a radix of 2^128, i.e. floor(2^128/q) split into its high and low words.
func GenBRedConstant(q uint64) [2]uint64 {
	bigR := new(big.Int).Lsh(new(big.Int).SetUint64(1), 128)
	bigR.Quo(bigR, new(big.Int).SetUint64(q))

	mhi := new(big.Int).Rsh(bigR, 64).Uint64()
	mlo := bigR.Uint64()

	return [2]uint64{mhi, mlo}
}

// GenMRedConstant computes the constant qInv = (q^-1) mod 2^64 required for MRed.
// q must be odd.
func GenMRedConstant(q uint64) (qInv uint64) {
	qInv = 1
	x := q
	for i := 0; i < 63; i++ {
		qInv *= x
		x *= x
	}
	return
}

// MForm returns a*2^64 mod q.
func MForm(a, q uint64, bredconstant [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, bredconstant[1])
	r = -(a*bredconstant[0] + mhi) * q
	if r >= q {
		r -= q
	}
	return
}

// MFormLazy returns a*2^64 mod q in the range [0, 2q-1].
func MFormLazy(a, q uint64, bredconstant [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, bredconstant[1])
	r = -(a*bredconstant[0] + mhi) * q
	return
}

// IMForm returns a*(2^64)^-1 mod q.
func IMForm(a, q, mredconstant uint64) (r uint64) {
	r, _ = bits.Mul64(a*mredconstant, q)
	r = q - r
	if r >= q {
		r -= q
	}
	return
}

// MRed computes x*y*(2^64)^-1 mod q.
func MRed(x, y, q, mredconstant uint64) (r uint64) {
	mhi, mlo := bits.Mul64(x, y)
	H, _ := bits.Mul64(mlo*mredconstant, q)
	r = mhi - H + q
	if r >= q {
		r -= q
	}
	return
}

// MRedLazy computes x*y*(2^64)^-1 mod q in the range [0, 2q-1].
func MRedLazy(x, y, q, mredconstant uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	H, _ := bits.Mul64(alo*mredconstant, q)
	r = ahi - H + q
	return
}

// BRed computes x*y mod q.
func BRed(x, y, q uint64, bredconstant [2]uint64) (r uint64) {

	var mhi, mlo, lhi, hhi, hlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// (alo*blo)>>64

	lhi, _ = bits.Mul64(alo, bredconstant[1])

	// ((ahi*blo + alo*bhi) + (alo*blo))>>64

	mhi, mlo = bits.Mul64(alo, bredconstant[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	hhi, hlo = bits.Mul64(ahi, bredconstant[1])

	_, carry = bits.Add64(hlo, s0, 0)

	// (ahi*bhi) + (((ahi*blo + alo*bhi) + (alo*blo))>>64)

	s0 = ahi*bredconstant[0] + s1 + hhi + carry

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

// BRedLazy computes x*y mod q in the range [0, 2q-1].
func BRedLazy(x, y, q uint64, bredconstant [2]uint64) (r uint64) {

	var mhi, mlo, lhi, hhi, hlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	lhi, _ = bits.Mul64(alo, bredconstant[1])

	mhi, mlo = bits.Mul64(alo, bredconstant[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	hhi, hlo = bits.Mul64(ahi, bredconstant[1])

	_, carry = bits.Add64(hlo, s0, 0)

	s0 = ahi*bredconstant[0] + s1 + hhi + carry

	r = alo - s0*q

	return
}

// BRedAdd reduces a 64 bit integer by q.
func BRedAdd(a, q uint64, bredconstant [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(a, bredconstant[0])
	r = a - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRedAddLazy reduces a 64 bit integer by q in the range [0, 2q-1].
func BRedAddLazy(a, q uint64, bredconstant [2]uint64) uint64 {
	s0, _ := bits.Mul64(a, bredconstant[0])
	return a - s0*q
}

// HRed computes x*c mod q, where c < q is a precomputed constant provided
// along with its quotient cshoup = floor(c*2^64/q).
func HRed(x, c, cshoup, q uint64) (r uint64) {
	s0, _ := bits.Mul64(x, cshoup)
	r = x*c - s0*q
	if r >= q {
		r -= q
	}
	return
}

// HRedLazy computes x*c mod q in the range [0, 2q-1], where
// cshoup = floor(c*2^64/q). The operand x can be any 64 bit integer.
func HRedLazy(x, c, cshoup, q uint64) uint64 {
	s0, _ := bits.Mul64(x, cshoup)
	return x*c - s0*q
}

// MHRed computes x*y mod q in the range [0, q-1] on plain residues,
// combining a Montgomery reduction with a correction by rmont = 2^64 mod q
// that cancels the Montgomery radix. rmontshoup = floor(rmont*2^64/q).
func MHRed(x, y, q, mredconstant, rmont, rmontshoup uint64) uint64 {
	return HRed(MRedLazy(x, y, q, mredconstant), rmont, rmontshoup, q)
}

// MHRedLazy computes x*y mod q in the range [0, 2q-1] on plain residues.
// See MHRed. Chaining the output into further lazy stages requires q < 2^62
// so that intermediate sums keep 64 bit headroom.
func MHRedLazy(x, y, q, mredconstant, rmont, rmontshoup uint64) uint64 {
	return HRedLazy(MRedLazy(x, y, q, mredconstant), rmont, rmontshoup, q)
}

// CRed returns a mod q, where a is required to be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}
