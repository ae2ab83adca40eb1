package conv

import (
	"errors"
	"fmt"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Causal performs same-length causal convolution of x with kernel h.
// Returns a new slice of length len(x). An empty x yields an empty result.
func Causal(x, h []float32) ([]float32, error) {
	if len(h) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float32, len(x))
	causalTo(out, x, h)
	return out, nil
}

// CausalTo performs same-length causal convolution into dst.
// dst must hold at least len(x) samples; only dst[:len(x)] is written.
// dst may not alias x.
func CausalTo(dst, x, h []float32) error {
	if len(h) == 0 {
		return ErrEmptyKernel
	}
	if len(dst) < len(x) {
		return fmt.Errorf("%w: dst has %d samples, need %d", ErrLengthMismatch, len(dst), len(x))
	}

	causalTo(dst, x, h)
	return nil
}

// causalTo computes
//
//	y[i] = sum_{j=0}^{min(i, M-1)} h[j] * x[i-j]
//
// The first M-1 outputs only see the overlapping part of the kernel.
func causalTo(dst, x, h []float32) {
	m := len(h)
	warmup := min(m-1, len(x))

	for i := 0; i < warmup; i++ {
		var acc float32
		for j := 0; j <= i; j++ {
			acc += h[j] * x[i-j]
		}
		dst[i] = acc
	}

	for i := m - 1; i < len(x); i++ {
		var acc float32
		xi := x[i-m+1 : i+1]
		for j, c := range h {
			acc += c * xi[m-1-j]
		}
		dst[i] = acc
	}
}

// Direct performs full linear convolution of x and h.
// Returns a new slice of length len(x) + len(h) - 1.
func Direct(x, h []float32) ([]float32, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(h) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float32, len(x)+len(h)-1)
	directTo(out, x, h)
	return out, nil
}

// DirectTo performs full linear convolution into a pre-allocated destination.
// dst must have length len(x) + len(h) - 1.
func DirectTo(dst, x, h []float32) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(h) == 0 {
		return ErrEmptyKernel
	}
	if want := len(x) + len(h) - 1; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	directTo(dst, x, h)
	return nil
}

func directTo(dst, x, h []float32) {
	for i := range dst {
		dst[i] = 0
	}

	for i, xv := range x {
		out := dst[i : i+len(h)]
		for j, c := range h {
			out[j] += xv * c
		}
	}
}
