package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fir/dsp/conv"
)

// Filter is a designed FIR filter: an immutable Spec and the kernel computed
// from it. A Filter is safe for concurrent use by multiple goroutines as long
// as Destroy is not called concurrently with other methods.
type Filter struct {
	spec   Spec
	coeffs []float32
}

// New designs a filter of the given kind and window. kernelLength is raised
// to the next odd value if it is even. The error wraps [ErrInvalidSpec] when
// any parameter is out of range; no Filter is returned in that case.
func New(kind Kind, win Window, cutoff float32, kernelLength int, sampleRate float32) (*Filter, error) {
	return NewFromSpec(Spec{
		Kind:       kind,
		Window:     win,
		Cutoff:     cutoff,
		Length:     kernelLength,
		SampleRate: sampleRate,
	})
}

// NewFromSpec designs a filter from spec.
func NewFromSpec(spec Spec) (*Filter, error) {
	coeffs, err := Design(spec)
	if err != nil {
		return nil, err
	}

	return &Filter{
		spec:   spec.Normalize(),
		coeffs: coeffs,
	}, nil
}

// Spec returns the filter specification with the normalized (odd) length.
func (f *Filter) Spec() Spec {
	if f == nil {
		return Spec{}
	}
	return f.spec
}

// Len returns the number of taps, or 0 for a nil or destroyed filter.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.coeffs)
}

// Center returns the index of the centre tap.
func (f *Filter) Center() int {
	return (f.Len() - 1) / 2
}

// Coefficients returns a copy of the kernel, or nil for a nil or destroyed
// filter.
func (f *Filter) Coefficients() []float32 {
	if f == nil || f.coeffs == nil {
		return nil
	}
	c := make([]float32, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Apply filters src[:length] into dst[:length].
//
// Apply is a no-op, and writes nothing, when the filter is nil or destroyed,
// when src or dst is nil, when length is negative, or when length exceeds
// either buffer. src is never modified.
func (f *Filter) Apply(dst, src []float32, length int) {
	if f == nil || f.coeffs == nil || src == nil || dst == nil || length < 0 {
		return
	}
	if length > len(src) || length > len(dst) {
		return
	}

	_ = conv.CausalTo(dst[:length], src[:length], f.coeffs)
}

// Process filters src into a new slice of the same length.
func (f *Filter) Process(src []float32) ([]float32, error) {
	if f == nil || f.coeffs == nil {
		return nil, ErrNoKernel
	}
	return conv.Causal(src, f.coeffs)
}

// ProcessTo filters src into dst. dst must hold at least len(src) samples;
// otherwise the error wraps conv.ErrLengthMismatch and dst is not written.
func (f *Filter) ProcessTo(dst, src []float32) error {
	if f == nil || f.coeffs == nil {
		return ErrNoKernel
	}
	return conv.CausalTo(dst, src, f.coeffs)
}

// Destroy releases the kernel. Afterwards Apply is a no-op and the strict
// methods return [ErrNoKernel]. Destroy is safe on a nil filter and on a
// filter that was already destroyed.
func (f *Filter) Destroy() {
	if f == nil {
		return
	}
	f.coeffs = nil
}

// Destroyed reports whether the filter has no kernel.
func (f *Filter) Destroyed() bool {
	return f == nil || f.coeffs == nil
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency in Hz, relative to the filter's sample rate.
func (f *Filter) Response(freqHz float64) complex128 {
	if f.Destroyed() {
		return 0
	}
	w := 2 * math.Pi * freqHz / float64(f.spec.SampleRate)
	var h complex128
	for k, c := range f.coeffs {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz)))
}
