package ring

// Poly is the structure that contains the coefficients of an RNS polynomial.
// Coeffs[i][j] is the j-th coefficient of the residue polynomial modulo the
// i-th modulus of the chain.
type Poly struct {
	Coeffs [][]uint64 // Dimension-2 slice of coefficients (re-slice of Buff)
	Buff   []uint64   // Dimension-1 slice of coefficients
}

// NewPoly creates a new polynomial with N coefficients set to zero and Level+1 moduli.
func NewPoly(N, Level int) (pol Poly) {
	pol.Buff = make([]uint64, N*(Level+1))
	pol.Coeffs = make([][]uint64, Level+1)
	for i := 0; i < Level+1; i++ {
		pol.Coeffs[i] = pol.Buff[i*N : (i+1)*N]
	}
	return
}

// N returns the number of coefficients of the polynomial, which equals the
// degree of the ring cyclotomic polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs[0])
}

// Level returns the current number of moduli minus 1.
func (pol Poly) Level() int {
	return len(pol.Coeffs) - 1
}

// Zero sets all coefficients of the target polynomial to 0.
func (pol Poly) Zero() {
	ZeroVec(pol.Buff)
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() (p Poly) {
	p = NewPoly(pol.N(), pol.Level())
	copy(p.Buff, pol.Buff)
	return
}

// Copy copies the coefficients of p1 on the target polynomial.
// Only copies min(pol.Level(), p1.Level())+1 components.
// Expects the degree of both polynomials to be identical.
func (pol Poly) Copy(p1 Poly) {

	level := pol.Level()
	if l := p1.Level(); l < level {
		level = l
	}

	N := pol.N()

	copy(pol.Buff[:N*(level+1)], p1.Buff[:N*(level+1)])
}

// Equal returns true if the receiver Poly is equal to the provided other Poly.
// This method checks for strict equality of the polynomial coefficients, it
// does not consider congruence within the ring (see Ring.Equal).
func (pol Poly) Equal(other Poly) bool {

	if len(pol.Coeffs) != len(other.Coeffs) || pol.N() != other.N() {
		return false
	}

	for i := range pol.Buff {
		if pol.Buff[i] != other.Buff[i] {
			return false
		}
	}

	return true
}
