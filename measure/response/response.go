package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmptyKernel       = errors.New("response: empty kernel")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrInvalidFFTSize    = errors.New("response: FFT size must be a power of two >= kernel length")
)

// Response is the one-sided magnitude response of a kernel.
type Response struct {
	SampleRate float64
	FFTSize    int
	// Freqs[i] is the centre frequency of bin i in Hz.
	Freqs []float64
	// Magnitude[i] is |H| at Freqs[i] (linear).
	Magnitude []float64
}

// Compute evaluates the magnitude response of coeffs sampled at sampleRate.
func Compute(coeffs []float32, sampleRate float64, opts ...Option) (*Response, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyKernel
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := applyOptions(opts...)
	fftSize := cfg.FFTSize
	if fftSize == 0 {
		fftSize = defaultFFTSize(len(coeffs))
	}
	if fftSize < 2 || !isPowerOf2(fftSize) || fftSize < len(coeffs) {
		return nil, fmt.Errorf("%w: %d for %d taps", ErrInvalidFFTSize, fftSize, len(coeffs))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(float64(c), 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	r := &Response{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Freqs:      make([]float64, bins),
		Magnitude:  make([]float64, bins),
	}
	vecmath.Magnitude(r.Magnitude, re, im)

	binHz := sampleRate / float64(fftSize)
	for i := range r.Freqs {
		r.Freqs[i] = float64(i) * binHz
	}

	return r, nil
}

// BinHz returns the spacing between bins.
func (r *Response) BinHz() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// MagnitudeAt returns |H| at freqHz, linearly interpolated between bins.
// Frequencies outside [0, Nyquist] are clamped.
func (r *Response) MagnitudeAt(freqHz float64) float64 {
	last := len(r.Magnitude) - 1
	pos := freqHz / r.BinHz()

	switch {
	case !(pos > 0):
		return r.Magnitude[0]
	case pos >= float64(last):
		return r.Magnitude[last]
	}

	i := int(pos)
	frac := pos - float64(i)
	return r.Magnitude[i] + frac*(r.Magnitude[i+1]-r.Magnitude[i])
}

// MagnitudeDBAt returns 20·log10|H| at freqHz.
func (r *Response) MagnitudeDBAt(freqHz float64) float64 {
	return toDB(r.MagnitudeAt(freqHz))
}

// DCGain returns |H(0)|.
func (r *Response) DCGain() float64 {
	return r.Magnitude[0]
}

// NyquistGain returns |H| at half the sample rate.
func (r *Response) NyquistGain() float64 {
	return r.Magnitude[len(r.Magnitude)-1]
}

// Crossing returns the lowest frequency at which the magnitude crosses
// levelDB, interpolated between the two bins that straddle it. ok is false
// when the response never crosses the level.
func (r *Response) Crossing(levelDB float64) (freqHz float64, ok bool) {
	th := math.Pow(10, levelDB/20)
	above := r.Magnitude[0] >= th

	for i := 1; i < len(r.Magnitude); i++ {
		if (r.Magnitude[i] >= th) == above {
			continue
		}

		m0, m1 := r.Magnitude[i-1], r.Magnitude[i]
		frac := 0.0
		if m1 != m0 {
			frac = (th - m0) / (m1 - m0)
		}
		return r.Freqs[i-1] + frac*r.BinHz(), true
	}

	return 0, false
}

// PeakDB returns the largest magnitude in dB among bins in [fromHz, toHz]
// and the frequency of that bin. An empty range yields -Inf.
func (r *Response) PeakDB(fromHz, toHz float64) (db, atHz float64) {
	lo := max(0, int(math.Ceil(fromHz/r.BinHz())))
	hi := min(len(r.Magnitude)-1, int(math.Floor(toHz/r.BinHz())))
	if lo > hi {
		return math.Inf(-1), 0
	}

	i := floats.MaxIdx(r.Magnitude[lo : hi+1])
	return toDB(r.Magnitude[lo+i]), r.Freqs[lo+i]
}

// toDB converts a linear magnitude to decibels. Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
