package window

import "github.com/chewxy/math32"

// BesselTerms is the number of series terms summed by [BesselI0.Eval].
// Terms past 25 are below single-precision resolution for the Kaiser betas
// used in filter design.
const BesselTerms = 25

// BesselI0 approximates the zeroth-order modified Bessel function of the
// first kind with a truncated power series:
//
//	I0(x) ≈ 1 + Σ_{j=1}^{25} ((x/2)^j / j!)²
//
// Factorials lose precision beyond 14! in float32, but they only ever
// divide correspondingly large powers, so the relative error of each term
// stays small.
type BesselI0 struct {
	factorials [BesselTerms]float32
}

// NewBesselI0 builds the factorial table 1!, 2!, ..., 25!.
func NewBesselI0() *BesselI0 {
	b := &BesselI0{}

	f := float32(1)
	for i := 1; i <= BesselTerms; i++ {
		f *= float32(i)
		b.factorials[i-1] = f
	}

	return b
}

// Eval returns the series approximation of I0(x).
func (b *BesselI0) Eval(x float32) float32 {
	result := float32(1)
	half := x / 2

	for j := 1; j <= BesselTerms; j++ {
		term := math32.Pow(half, float32(j)) / b.factorials[j-1]
		result += term * term
	}

	return result
}

// Factorial returns j! from the table for 1 <= j <= BesselTerms, or 0.
func (b *BesselI0) Factorial(j int) float32 {
	if j < 1 || j > BesselTerms {
		return 0
	}

	return b.factorials[j-1]
}
