package ring

// Add evaluates p3 = p1 + p2 (mod modulus).
func (s *SubRing) Add(p1, p2, p3 []uint64) {
	AddVec(p1, p2, p3, s.Modulus)
}

// AddLazy evaluates p3 = p1 + p2 without modular reduction.
func (s *SubRing) AddLazy(p1, p2, p3 []uint64) {
	AddLazyVec(p1, p2, p3)
}

// Sub evaluates p3 = p1 - p2 (mod modulus).
func (s *SubRing) Sub(p1, p2, p3 []uint64) {
	SubVec(p1, p2, p3, s.Modulus)
}

// SubLazy evaluates p3 = p1 + modulus - p2 without the final reduction.
func (s *SubRing) SubLazy(p1, p2, p3 []uint64) {
	SubLazyVec(p1, p2, p3, s.Modulus)
}

// Neg evaluates p2 = -p1 (mod modulus).
func (s *SubRing) Neg(p1, p2 []uint64) {
	NegVec(p1, p2, s.Modulus)
}

// Reduce evaluates p2 = p1 (mod modulus) with a full Barrett reduction,
// accepting arbitrary 64 bit coefficients.
func (s *SubRing) Reduce(p1, p2 []uint64) {
	BarrettReduceVec(p1, p2, s.Modulus, s.BRedConstant)
}

// ReduceLazy evaluates p2 = p1 (mod modulus) with outputs in [0, 2*modulus-1].
func (s *SubRing) ReduceLazy(p1, p2 []uint64) {
	BarrettReduceLazyVec(p1, p2, s.Modulus, s.BRedConstant)
}

// StrictReduce evaluates p2 = p1 (mod modulus) with a single conditional
// subtraction per coefficient. All coefficients of p1 must lie in
// [0, 2*modulus-1], the range of the lazy kernels.
func (s *SubRing) StrictReduce(p1, p2 []uint64) {
	StrictReduceVec(p1, p2, s.Modulus)
}

// MulCoeffsHybrid evaluates p3 = p1 * p2 (mod modulus) on plain residues
// with the hybrid Montgomery reduction, outputs in [0, modulus-1].
func (s *SubRing) MulCoeffsHybrid(p1, p2, p3 []uint64) {
	MulHybridReduceVec(p1, p2, p3, s.Modulus, s.MRedConstant, s.RMont, s.RMontShoup)
}

// MulCoeffsHybridLazy evaluates p3 = p1 * p2 (mod modulus) on plain residues
// with the hybrid Montgomery reduction, outputs in [0, 2*modulus-1].
func (s *SubRing) MulCoeffsHybridLazy(p1, p2, p3 []uint64) {
	MulHybridReduceLazyVec(p1, p2, p3, s.Modulus, s.MRedConstant, s.RMont, s.RMontShoup)
}

// MulCoeffsBarrett evaluates p3 = p1 * p2 (mod modulus) with the Barrett
// reduction, outputs in [0, modulus-1].
func (s *SubRing) MulCoeffsBarrett(p1, p2, p3 []uint64) {
	MulBarrettReduceVec(p1, p2, p3, s.Modulus, s.BRedConstant)
}

// MulCoeffsBarrettLazy evaluates p3 = p1 * p2 (mod modulus) with the Barrett
// reduction, outputs in [0, 2*modulus-1].
func (s *SubRing) MulCoeffsBarrettLazy(p1, p2, p3 []uint64) {
	MulBarrettReduceLazyVec(p1, p2, p3, s.Modulus, s.BRedConstant)
}

// MulScalarMontgomery evaluates p2 = p1 * scalarMont (mod modulus), where
// scalarMont is in the Montgomery form.
func (s *SubRing) MulScalarMontgomery(p1 []uint64, scalarMont uint64, p2 []uint64) {
	MulScalarMontgomeryReduceVec(p1, scalarMont, p2, s.Modulus, s.MRedConstant)
}

// MulScalarMontgomeryLazy evaluates p2 = p1 * scalarMont (mod modulus) with
// outputs in [0, 2*modulus-1], where scalarMont is in the Montgomery form.
func (s *SubRing) MulScalarMontgomeryLazy(p1 []uint64, scalarMont uint64, p2 []uint64) {
	MulScalarMontgomeryReduceLazyVec(p1, scalarMont, p2, s.Modulus, s.MRedConstant)
}

// MForm evaluates p2 = p1 * 2^64 (mod modulus).
func (s *SubRing) MForm(p1, p2 []uint64) {
	MFormVec(p1, p2, s.Modulus, s.BRedConstant)
}

// IMForm evaluates p2 = p1 * (2^64)^-1 (mod modulus).
func (s *SubRing) IMForm(p1, p2 []uint64) {
	IMFormVec(p1, p2, s.Modulus, s.MRedConstant)
}
