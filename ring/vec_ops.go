package ring

import (
	"fmt"
	"unsafe"
)

// AddVec evaluates p3 = p1 + p2 (mod modulus).
// p1, p2 and p3 must be of the same size and may alias each other.
func AddVec(p1, p2, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed(x[0]+y[0], modulus)
		z[1] = CRed(x[1]+y[1], modulus)
		z[2] = CRed(x[2]+y[2], modulus)
		z[3] = CRed(x[3]+y[3], modulus)
		z[4] = CRed(x[4]+y[4], modulus)
		z[5] = CRed(x[5]+y[5], modulus)
		z[6] = CRed(x[6]+y[6], modulus)
		z[7] = CRed(x[7]+y[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = CRed(p1[i]+p2[i], modulus)
	}
}

// AddLazyVec evaluates p3 = p1 + p2 without modular reduction.
// p1, p2 and p3 must be of the same size and may alias each other.
func AddLazyVec(p1, p2, p3 []uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = x[0] + y[0]
		z[1] = x[1] + y[1]
		z[2] = x[2] + y[2]
		z[3] = x[3] + y[3]
		z[4] = x[4] + y[4]
		z[5] = x[5] + y[5]
		z[6] = x[6] + y[6]
		z[7] = x[7] + y[7]
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = p1[i] + p2[i]
	}
}

// SubVec evaluates p3 = p1 - p2 (mod modulus).
// p1, p2 and p3 must be of the same size and may alias each other.
func SubVec(p1, p2, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed((x[0]+modulus)-y[0], modulus)
		z[1] = CRed((x[1]+modulus)-y[1], modulus)
		z[2] = CRed((x[2]+modulus)-y[2], modulus)
		z[3] = CRed((x[3]+modulus)-y[3], modulus)
		z[4] = CRed((x[4]+modulus)-y[4], modulus)
		z[5] = CRed((x[5]+modulus)-y[5], modulus)
		z[6] = CRed((x[6]+modulus)-y[6], modulus)
		z[7] = CRed((x[7]+modulus)-y[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = CRed((p1[i]+modulus)-p2[i], modulus)
	}
}

// SubLazyVec evaluates p3 = p1 + modulus - p2 without the final reduction.
// p1, p2 and p3 must be of the same size and may alias each other.
func SubLazyVec(p1, p2, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = x[0] + modulus - y[0]
		z[1] = x[1] + modulus - y[1]
		z[2] = x[2] + modulus - y[2]
		z[3] = x[3] + modulus - y[3]
		z[4] = x[4] + modulus - y[4]
		z[5] = x[5] + modulus - y[5]
		z[6] = x[6] + modulus - y[6]
		z[7] = x[7] + modulus - y[7]
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = p1[i] + modulus - p2[i]
	}
}

// NegVec evaluates p2 = -p1 (mod modulus).
// p1 and p2 must be of the same size and may alias each other.
func NegVec(p1, p2 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = modulus - x[0]
		z[1] = modulus - x[1]
		z[2] = modulus - x[2]
		z[3] = modulus - x[3]
		z[4] = modulus - x[4]
		z[5] = modulus - x[5]
		z[6] = modulus - x[6]
		z[7] = modulus - x[7]
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = modulus - p1[i]
	}
}

// StrictReduceVec evaluates p2 = p1 (mod modulus) with a single conditional
// subtraction per coefficient. All coefficients of p1 are expected to lie in
// [0, 2*modulus-1]; larger inputs are left incorrectly reduced.
// p1 and p2 must be of the same size and may alias each other.
func StrictReduceVec(p1, p2 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = CRed(x[0], modulus)
		z[1] = CRed(x[1], modulus)
		z[2] = CRed(x[2], modulus)
		z[3] = CRed(x[3], modulus)
		z[4] = CRed(x[4], modulus)
		z[5] = CRed(x[5], modulus)
		z[6] = CRed(x[6], modulus)
		z[7] = CRed(x[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = CRed(p1[i], modulus)
	}
}

// BarrettReduceVec evaluates p2 = p1 (mod modulus) with a full Barrett
// reduction, accepting arbitrary 64 bit coefficients.
// p1 and p2 must be of the same size and may alias each other.
func BarrettReduceVec(p1, p2 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BRedAdd(x[0], modulus, bredconstant)
		z[1] = BRedAdd(x[1], modulus, bredconstant)
		z[2] = BRedAdd(x[2], modulus, bredconstant)
		z[3] = BRedAdd(x[3], modulus, bredconstant)
		z[4] = BRedAdd(x[4], modulus, bredconstant)
		z[5] = BRedAdd(x[5], modulus, bredconstant)
		z[6] = BRedAdd(x[6], modulus, bredconstant)
		z[7] = BRedAdd(x[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = BRedAdd(p1[i], modulus, bredconstant)
	}
}

// BarrettReduceLazyVec evaluates p2 = p1 (mod modulus) with outputs in
// [0, 2*modulus-1]. p1 and p2 must be of the same size and may alias each other.
func BarrettReduceLazyVec(p1, p2 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BRedAddLazy(x[0], modulus, bredconstant)
		z[1] = BRedAddLazy(x[1], modulus, bredconstant)
		z[2] = BRedAddLazy(x[2], modulus, bredconstant)
		z[3] = BRedAddLazy(x[3], modulus, bredconstant)
		z[4] = BRedAddLazy(x[4], modulus, bredconstant)
		z[5] = BRedAddLazy(x[5], modulus, bredconstant)
		z[6] = BRedAddLazy(x[6], modulus, bredconstant)
		z[7] = BRedAddLazy(x[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = BRedAddLazy(p1[i], modulus, bredconstant)
	}
}

// MulHybridReduceVec evaluates p3 = p1 * p2 (mod modulus) on plain residues
// with the hybrid Montgomery reduction, outputs in [0, modulus-1].
// p1, p2 and p3 must be of the same size and may alias each other.
func MulHybridReduceVec(p1, p2, p3 []uint64, modulus, mredconstant, rmont, rmontshoup uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = MHRed(x[0], y[0], modulus, mredconstant, rmont, rmontshoup)
		z[1] = MHRed(x[1], y[1], modulus, mredconstant, rmont, rmontshoup)
		z[2] = MHRed(x[2], y[2], modulus, mredconstant, rmont, rmontshoup)
		z[3] = MHRed(x[3], y[3], modulus, mredconstant, rmont, rmontshoup)
		z[4] = MHRed(x[4], y[4], modulus, mredconstant, rmont, rmontshoup)
		z[5] = MHRed(x[5], y[5], modulus, mredconstant, rmont, rmontshoup)
		z[6] = MHRed(x[6], y[6], modulus, mredconstant, rmont, rmontshoup)
		z[7] = MHRed(x[7], y[7], modulus, mredconstant, rmont, rmontshoup)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = MHRed(p1[i], p2[i], modulus, mredconstant, rmont, rmontshoup)
	}
}

// MulHybridReduceLazyVec evaluates p3 = p1 * p2 (mod modulus) on plain
// residues with the hybrid Montgomery reduction, outputs in [0, 2*modulus-1].
// p1, p2 and p3 must be of the same size and may alias each other.
func MulHybridReduceLazyVec(p1, p2, p3 []uint64, modulus, mredconstant, rmont, rmontshoup uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = MHRedLazy(x[0], y[0], modulus, mredconstant, rmont, rmontshoup)
		z[1] = MHRedLazy(x[1], y[1], modulus, mredconstant, rmont, rmontshoup)
		z[2] = MHRedLazy(x[2], y[2], modulus, mredconstant, rmont, rmontshoup)
		z[3] = MHRedLazy(x[3], y[3], modulus, mredconstant, rmont, rmontshoup)
		z[4] = MHRedLazy(x[4], y[4], modulus, mredconstant, rmont, rmontshoup)
		z[5] = MHRedLazy(x[5], y[5], modulus, mredconstant, rmont, rmontshoup)
		z[6] = MHRedLazy(x[6], y[6], modulus, mredconstant, rmont, rmontshoup)
		z[7] = MHRedLazy(x[7], y[7], modulus, mredconstant, rmont, rmontshoup)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = MHRedLazy(p1[i], p2[i], modulus, mredconstant, rmont, rmontshoup)
	}
}

// MulBarrettReduceVec evaluates p3 = p1 * p2 (mod modulus) with the Barrett
// reduction, outputs in [0, modulus-1].
// p1, p2 and p3 must be of the same size and may alias each other.
func MulBarrettReduceVec(p1, p2, p3 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = BRed(x[0], y[0], modulus, bredconstant)
		z[1] = BRed(x[1], y[1], modulus, bredconstant)
		z[2] = BRed(x[2], y[2], modulus, bredconstant)
		z[3] = BRed(x[3], y[3], modulus, bredconstant)
		z[4] = BRed(x[4], y[4], modulus, bredconstant)
		z[5] = BRed(x[5], y[5], modulus, bredconstant)
		z[6] = BRed(x[6], y[6], modulus, bredconstant)
		z[7] = BRed(x[7], y[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = BRed(p1[i], p2[i], modulus, bredconstant)
	}
}

// MulBarrettReduceLazyVec evaluates p3 = p1 * p2 (mod modulus) with the
// Barrett reduction, outputs in [0, 2*modulus-1].
// p1, p2 and p3 must be of the same size and may alias each other.
func MulBarrettReduceLazyVec(p1, p2, p3 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = BRedLazy(x[0], y[0], modulus, bredconstant)
		z[1] = BRedLazy(x[1], y[1], modulus, bredconstant)
		z[2] = BRedLazy(x[2], y[2], modulus, bredconstant)
		z[3] = BRedLazy(x[3], y[3], modulus, bredconstant)
		z[4] = BRedLazy(x[4], y[4], modulus, bredconstant)
		z[5] = BRedLazy(x[5], y[5], modulus, bredconstant)
		z[6] = BRedLazy(x[6], y[6], modulus, bredconstant)
		z[7] = BRedLazy(x[7], y[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = BRedLazy(p1[i], p2[i], modulus, bredconstant)
	}
}

// MulScalarMontgomeryReduceVec evaluates p2 = p1 * scalarMont (mod modulus),
// where scalarMont is in the Montgomery form.
// p1 and p2 must be of the same size and may alias each other.
func MulScalarMontgomeryReduceVec(p1 []uint64, scalarMont uint64, p2 []uint64, modulus, mredconstant uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = MRed(x[0], scalarMont, modulus, mredconstant)
		z[1] = MRed(x[1], scalarMont, modulus, mredconstant)
		z[2] = MRed(x[2], scalarMont, modulus, mredconstant)
		z[3] = MRed(x[3], scalarMont, modulus, mredconstant)
		z[4] = MRed(x[4], scalarMont, modulus, mredconstant)
		z[5] = MRed(x[5], scalarMont, modulus, mredconstant)
		z[6] = MRed(x[6], scalarMont, modulus, mredconstant)
		z[7] = MRed(x[7], scalarMont, modulus, mredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = MRed(p1[i], scalarMont, modulus, mredconstant)
	}
}

// MulScalarMontgomeryReduceLazyVec evaluates p2 = p1 * scalarMont
// (mod modulus) with outputs in [0, 2*modulus-1], where scalarMont is in the
// Montgomery form. p1 and p2 must be of the same size and may alias each other.
func MulScalarMontgomeryReduceLazyVec(p1 []uint64, scalarMont uint64, p2 []uint64, modulus, mredconstant uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = MRedLazy(x[0], scalarMont, modulus, mredconstant)
		z[1] = MRedLazy(x[1], scalarMont, modulus, mredconstant)
		z[2] = MRedLazy(x[2], scalarMont, modulus, mredconstant)
		z[3] = MRedLazy(x[3], scalarMont, modulus, mredconstant)
		z[4] = MRedLazy(x[4], scalarMont, modulus, mredconstant)
		z[5] = MRedLazy(x[5], scalarMont, modulus, mredconstant)
		z[6] = MRedLazy(x[6], scalarMont, modulus, mredconstant)
		z[7] = MRedLazy(x[7], scalarMont, modulus, mredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = MRedLazy(p1[i], scalarMont, modulus, mredconstant)
	}
}

// MFormVec evaluates p2 = p1 * 2^64 (mod modulus).
// p1 and p2 must be of the same size and may alias each other.
func MFormVec(p1, p2 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = MForm(x[0], modulus, bredconstant)
		z[1] = MForm(x[1], modulus, bredconstant)
		z[2] = MForm(x[2], modulus, bredconstant)
		z[3] = MForm(x[3], modulus, bredconstant)
		z[4] = MForm(x[4], modulus, bredconstant)
		z[5] = MForm(x[5], modulus, bredconstant)
		z[6] = MForm(x[6], modulus, bredconstant)
		z[7] = MForm(x[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = MForm(p1[i], modulus, bredconstant)
	}
}

// IMFormVec evaluates p2 = p1 * (2^64)^-1 (mod modulus).
// p1 and p2 must be of the same size and may alias each other.
func IMFormVec(p1, p2 []uint64, modulus, mredconstant uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = IMForm(x[0], modulus, mredconstant)
		z[1] = IMForm(x[1], modulus, mredconstant)
		z[2] = IMForm(x[2], modulus, mredconstant)
		z[3] = IMForm(x[3], modulus, mredconstant)
		z[4] = IMForm(x[4], modulus, mredconstant)
		z[5] = IMForm(x[5], modulus, mredconstant)
		z[6] = IMForm(x[6], modulus, mredconstant)
		z[7] = IMForm(x[7], modulus, mredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = IMForm(p1[i], modulus, mredconstant)
	}
}

// ZeroVec sets all coefficients of p1 to zero.
func ZeroVec(p1 []uint64) {

	N := len(p1)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- behind the loop bound check */
		z := (*[8]uint64)(unsafe.Pointer(&p1[j]))

		z[0] = 0
		z[1] = 0
		z[2] = 0
		z[3] = 0
		z[4] = 0
		z[5] = 0
		z[6] = 0
		z[7] = 0
	}

	for i := N - (N & 7); i < N; i++ {
		p1[i] = 0
	}
}
