package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DFT evaluation.
func Analyze(coeffs []float32) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	w := make([]float64, n)
	for i, c := range coeffs {
		w[i] = float64(c)
	}

	// DC reference: |DFT(0)|^2
	dcRef := dftMagSq(w, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, w, w)

	sum := floats.Sum(w)
	sumSq := floats.Sum(sq)

	scallopLoss := 0.0
	if halfBin := dftMagSq(w, 0.5/float64(n)); halfBin > 0 {
		scallopLoss = 10 * math.Log10(halfBin/dcRef)
	}

	return Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:  searchBandwidth(w, dcRef),
		ScallopLossdB: scallopLoss,
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// searchBandwidth finds the 3dB (half-power) main lobe width in bins
// using bisection on the DFT magnitude response.
func searchBandwidth(coeffs []float64, dcRef float64) float64 {
	invRef := 1.0 / dcRef

	lo := 0.0
	hi := 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	// Two-sided: from -f to +f.
	return 2 * lo * float64(len(coeffs))
}
