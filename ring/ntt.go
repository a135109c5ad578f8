package ring

// NumberTheoreticTransformer is an interface to provide
// custom implementations of the NTT to the Ring struct.
type NumberTheoreticTransformer interface {
	Forward(p1, p2 []uint64)
	ForwardLazy(p1, p2 []uint64)
	Backward(p1, p2 []uint64)
	BackwardLazy(p1, p2 []uint64)
}

// NTTTable stores all the constants that are specifically tied to the NTT.
type NTTTable struct {
	NthRoot       uint64   // Nth root of unity
	PrimitiveRoot uint64   // 2Nth root of unity
	RootsForward  []uint64 // Powers of the 2Nth root of unity in Montgomery form (in bit-reversed order)
	RootsBackward []uint64 // Powers of the inverse of the 2Nth root of unity in Montgomery form (in bit-reversed order)
	NInv          uint64   // N^-1 in Montgomery form
}

type numberTheoreticTransformerBase struct {
	*NTTTable
	N            int
	Modulus      uint64
	MRedConstant uint64
	BRedConstant [2]uint64
}

// NumberTheoreticTransformerStandard computes the standard negacyclic NTT in the ring Z[X]/(X^N+1).
type NumberTheoreticTransformerStandard struct {
	numberTheoreticTransformerBase
}

// NewNumberTheoreticTransformerStandard instantiates a new NumberTheoreticTransformerStandard.
func NewNumberTheoreticTransformerStandard(r *SubRing, n int) NumberTheoreticTransformer {
	return NumberTheoreticTransformerStandard{
		numberTheoreticTransformerBase: numberTheoreticTransformerBase{
			NTTTable:     r.NTTTable,
			N:            n,
			Modulus:      r.Modulus,
			MRedConstant: r.MRedConstant,
			BRedConstant: r.BRedConstant,
		},
	}
}

// Forward writes the forward NTT in Z[X]/(X^N+1) of p1 on p2.
func (rntt NumberTheoreticTransformerStandard) Forward(p1, p2 []uint64) {
	nttStandard(p1, p2, rntt.N, rntt.Modulus, rntt.MRedConstant, rntt.BRedConstant, rntt.RootsForward)
}

// ForwardLazy writes the forward NTT in Z[X]/(X^N+1) of p1 on p2
// with p2 in [0, 2*modulus-1].
func (rntt NumberTheoreticTransformerStandard) ForwardLazy(p1, p2 []uint64) {
	nttStandardLazy(p1, p2, rntt.N, rntt.Modulus, rntt.MRedConstant, rntt.RootsForward)
}

// Backward writes the backward NTT in Z[X]/(X^N+1) of p1 on p2.
func (rntt NumberTheoreticTransformerStandard) Backward(p1, p2 []uint64) {
	inttStandard(p1, p2, rntt.N, rntt.NInv, rntt.Modulus, rntt.MRedConstant, rntt.RootsBackward)
}

// BackwardLazy writes the backward NTT in Z[X]/(X^N+1) of p1 on p2
// with p2 in [0, 2*modulus-1].
func (rntt NumberTheoreticTransformerStandard) BackwardLazy(p1, p2 []uint64) {
	inttStandardLazy(p1, p2, rntt.N, rntt.NInv, rntt.Modulus, rntt.MRedConstant, rntt.RootsBackward)
}

// NTT evaluates p2 = NTT(p1).
func (s *SubRing) NTT(p1, p2 []uint64) {
	s.ntt.Forward(p1, p2)
}

// NTTLazy evaluates p2 = NTT(p1) with p2 in [0, 2*modulus-1].
func (s *SubRing) NTTLazy(p1, p2 []uint64) {
	s.ntt.ForwardLazy(p1, p2)
}

// INTT evaluates p2 = INTT(p1).
func (s *SubRing) INTT(p1, p2 []uint64) {
	s.ntt.Backward(p1, p2)
}

// INTTLazy evaluates p2 = INTT(p1) with p2 in [0, 2*modulus-1].
func (s *SubRing) INTTLazy(p1, p2 []uint64) {
	s.ntt.BackwardLazy(p1, p2)
}

// butterfly computes X, Y = U + V*Psi, U - V*Psi mod Q.
// The input U must be below 4Q and V can be any 64 bit integer;
// the outputs are below 4Q.
func butterfly(U, V, Psi, twoQ, Q, QInv uint64) (uint64, uint64) {
	if U >= twoQ {
		U -= twoQ
	}
	V = MRedLazy(V, Psi, Q, QInv)
	return U + V, U + twoQ - V
}

// invbutterfly computes X, Y = U + V, (U - V) * Psi mod Q.
// The inputs U and V must be below 2Q and so are the outputs.
func invbutterfly(U, V, Psi, twoQ, fourQ, Q, QInv uint64) (X, Y uint64) {
	X = U + V
	if X >= twoQ {
		X -= twoQ
	}
	Y = MRedLazy(U+fourQ-V, Psi, Q, QInv)
	return
}

// nttStandard evaluates p2 = NTT(p1) with the final coefficients in [0, modulus-1].
func nttStandard(p1, p2 []uint64, N int, Q, QInv uint64, BRedConstant [2]uint64, roots []uint64) {
	nttStandardLazy(p1, p2, N, Q, QInv, roots)
	StrictReduceVec(p2, p2, Q)
}

// nttStandardLazy computes the Cooley-Tukey butterflies on the input
// coefficients with output values in the range [0, 2*modulus-1].
// The input coefficients must be in the range [0, 2*modulus-1] and the
// modulus cannot exceed 61 bits for the intermediate values to fit in
// 64 bit integers.
func nttStandardLazy(p1, p2 []uint64, N int, Q, QInv uint64, roots []uint64) {

	if &p1[0] != &p2[0] {
		copy(p2, p1)
	}

	twoQ := Q << 1

	t := N >> 1
	for m := 1; m < N; m <<= 1 {

		for i := 0; i < m; i++ {

			j1 := 2 * i * t
			F := roots[m+i]

			for j := j1; j < j1+t; j++ {
				p2[j], p2[j+t] = butterfly(p2[j], p2[j+t], F, twoQ, Q, QInv)
			}
		}

		t >>= 1
	}

	// Folds the outputs from [0, 4*modulus-1] back to [0, 2*modulus-1]
	for i := 0; i < N; i++ {
		if p2[i] >= twoQ {
			p2[i] -= twoQ
		}
	}
}

// inttStandard evaluates p2 = INTT(p1) with the final coefficients in [0, modulus-1].
func inttStandard(p1, p2 []uint64, N int, NInv, Q, MRedConstant uint64, roots []uint64) {
	inttCoreLazy(p1, p2, N, Q, MRedConstant, roots)
	MulScalarMontgomeryReduceVec(p2, NInv, p2, Q, MRedConstant)
}

// inttStandardLazy evaluates p2 = INTT(p1) with p2 in [0, 2*modulus-1].
func inttStandardLazy(p1, p2 []uint64, N int, NInv, Q, MRedConstant uint64, roots []uint64) {
	inttCoreLazy(p1, p2, N, Q, MRedConstant, roots)
	MulScalarMontgomeryReduceLazyVec(p2, NInv, p2, Q, MRedConstant)
}

// inttCoreLazy computes the Gentleman-Sande butterflies on the input
// coefficients, without the final multiplication by N^-1. The input
// coefficients must be in the range [0, 2*modulus-1] and so are the outputs.
func inttCoreLazy(p1, p2 []uint64, N int, Q, QInv uint64, roots []uint64) {

	if &p1[0] != &p2[0] {
		copy(p2, p1)
	}

	twoQ := Q << 1
	fourQ := Q << 2

	t := 1
	for m := N; m > 1; m >>= 1 {

		h := m >> 1

		for i, j1 := 0, 0; i < h; i, j1 = i+1, j1+2*t {

			F := roots[h+i]

			for j := j1; j < j1+t; j++ {
				p2[j], p2[j+t] = invbutterfly(p2[j], p2[j+t], F, twoQ, fourQ, Q, QInv)
			}
		}

		t <<= 1
	}
}
