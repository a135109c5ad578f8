package ring

import (
	"math/big"

	"github.com/montanaflynn/stats"
)

// Add evaluates p3 = p1 + p2 coefficient-wise in the ring.
func (r *Ring) Add(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.Add(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// AddLazy evaluates p3 = p1 + p2 coefficient-wise in the ring, with p3 in [0, 2*modulus-1].
func (r *Ring) AddLazy(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.AddLazy(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// Sub evaluates p3 = p1 - p2 coefficient-wise in the ring.
func (r *Ring) Sub(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.Sub(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// SubLazy evaluates p3 = p1 - p2 coefficient-wise in the ring, with p3 in [0, 2*modulus-1].
func (r *Ring) SubLazy(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.SubLazy(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// Neg evaluates p2 = -p1 coefficient-wise in the ring.
func (r *Ring) Neg(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.Neg(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// Reduce evaluates p2 = p1 coefficient-wise mod each modulus with a full
// Barrett reduction, accepting arbitrary 64 bit coefficients.
func (r *Ring) Reduce(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.Reduce(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// ReduceLazy evaluates p2 = p1 coefficient-wise mod each modulus, with p2 in [0, 2*modulus-1].
func (r *Ring) ReduceLazy(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.ReduceLazy(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// StrictReduce evaluates p2 = p1 coefficient-wise mod each modulus with a
// single conditional subtraction per coefficient. All coefficients of p1
// must lie in [0, 2*modulus-1], the range of the lazy operations.
func (r *Ring) StrictReduce(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.StrictReduce(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// MulCoeffsHybrid evaluates p3 = p1 * p2 coefficient-wise in the ring on
// plain residues with the hybrid Montgomery reduction, outputs in [0, modulus-1].
func (r *Ring) MulCoeffsHybrid(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.MulCoeffsHybrid(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// MulCoeffsHybridLazy evaluates p3 = p1 * p2 coefficient-wise in the ring on
// plain residues with the hybrid Montgomery reduction, outputs in [0, 2*modulus-1].
func (r *Ring) MulCoeffsHybridLazy(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.MulCoeffsHybridLazy(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// MulCoeffsBarrett evaluates p3 = p1 * p2 coefficient-wise in the ring with
// the Barrett reduction, outputs in [0, modulus-1].
func (r *Ring) MulCoeffsBarrett(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.MulCoeffsBarrett(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// MulCoeffsBarrettLazy evaluates p3 = p1 * p2 coefficient-wise in the ring
// with the Barrett reduction, outputs in [0, 2*modulus-1].
func (r *Ring) MulCoeffsBarrettLazy(p1, p2, p3 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.MulCoeffsBarrettLazy(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i])
	}
}

// MForm evaluates p2 = p1 * 2^64 coefficient-wise in the ring.
func (r *Ring) MForm(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.MForm(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// IMForm evaluates p2 = p1 * (2^64)^-1 coefficient-wise in the ring.
func (r *Ring) IMForm(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.IMForm(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// NTT evaluates p2 = NTT(p1).
func (r *Ring) NTT(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.NTT(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// NTTLazy evaluates p2 = NTT(p1) with coefficients in [0, 2*modulus-1].
func (r *Ring) NTTLazy(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.NTTLazy(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// INTT evaluates p2 = INTT(p1).
func (r *Ring) INTT(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.INTT(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// INTTLazy evaluates p2 = INTT(p1) with coefficients in [0, 2*modulus-1].
func (r *Ring) INTTLazy(p1, p2 Poly) {
	for i, s := range r.SubRings[:r.level+1] {
		s.INTTLazy(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// PolyToBigint reconstructs p1 and returns the result in an array of Int.
// gap defines coefficients X^{i*gap} that will be reconstructed.
// For example, if gap = 1, then all coefficients are reconstructed, while
// if gap = 2 then only coefficients X^{2*i} are reconstructed.
func (r *Ring) PolyToBigint(p1 Poly, gap int, coeffsBigint []*big.Int) {

	level := r.level

	crtReconstruction := make([]*big.Int, level+1)

	QiB := new(big.Int)
	tmp := new(big.Int)
	modulusBigint := r.ModulusAtLevel[level]

	for i, table := range r.SubRings[:level+1] {
		QiB.SetUint64(table.Modulus)
		crtReconstruction[i] = new(big.Int).Quo(modulusBigint, QiB)
		tmp.ModInverse(crtReconstruction[i], QiB)
		tmp.Mod(tmp, QiB)
		crtReconstruction[i].Mul(crtReconstruction[i], tmp)
	}

	N := r.N()

	for i, j := 0, 0; j < N; i, j = i+1, j+gap {
		tmp.SetUint64(0)
		coeffsBigint[i].SetUint64(0)
		for k := 0; k < level+1; k++ {
			coeffsBigint[i].Add(coeffsBigint[i], tmp.Mul(new(big.Int).SetUint64(p1.Coeffs[k][j]), crtReconstruction[k]))
		}
		coeffsBigint[i].Mod(coeffsBigint[i], modulusBigint)
	}
}

// PolyToBigintCentered reconstructs p1 and returns the result in an array of
// Int. Coefficients are centered around Q/2: a reconstructed coefficient
// above Q/2 is mapped to its negative representative.
// gap defines coefficients X^{i*gap} that will be reconstructed.
func (r *Ring) PolyToBigintCentered(p1 Poly, gap int, coeffsBigint []*big.Int) {

	r.PolyToBigint(p1, gap, coeffsBigint)

	modulusBigint := r.ModulusAtLevel[r.level]

	modulusBigintHalf := new(big.Int).Rsh(modulusBigint, 1)

	for i := range coeffsBigint {
		if coeffsBigint[i].Cmp(modulusBigintHalf) > 0 {
			coeffsBigint[i].Sub(coeffsBigint[i], modulusBigint)
		}
	}
}

// Stats returns the mean and the standard deviation of the centered
// coefficients of p1, reconstructed from their RNS representation. It is
// mainly a diagnostic for the output of the polynomial samplers.
func (r *Ring) Stats(p1 Poly) (mean, stdDev float64) {

	coeffs := make([]*big.Int, r.N())
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}

	r.PolyToBigintCentered(p1, 1, coeffs)

	values := make([]float64, len(coeffs))
	for i := range coeffs {
		values[i], _ = new(big.Float).SetInt(coeffs[i]).Float64()
	}

	// Only fails on an empty input, which NewRing rules out
	mean, _ = stats.Mean(values)
	stdDev, _ = stats.StandardDeviation(values)

	return
}
