// Package response measures the magnitude response of an FIR kernel.
//
// The kernel is zero-padded to a power-of-two length and transformed with a
// single forward FFT. The one-sided magnitude spectrum, bins 0 (DC) through
// FFTSize/2 (Nyquist), is then queried by frequency:
//
//	r, err := response.Compute(coeffs, 48000)
//	if err != nil { ... }
//	fc, ok := r.Crossing(-6)
//	peak, atHz := r.PeakDB(6000, 24000)
//
// Compute does not mutate the kernel and the returned Response is immutable.
package response
