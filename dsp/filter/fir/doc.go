// Package fir designs and applies windowed-sinc FIR filters.
//
// A [Spec] names the filter kind (low-pass or high-pass), the window, the
// cutoff frequency, the kernel length and the sample rate. [Design] turns a
// Spec into a kernel; [New] wraps the kernel in a [Filter] that can be applied
// to any number of signals.
//
// Design follows the classic windowed-sinc recipe in single precision:
//
//	h[n] = sin(fc·π·n) / (π·n) · w[n],   h[0] = fc,   fc = 2·cutoff/sampleRate
//
// for n = -(N-1)/2 .. (N-1)/2, shifted to indices 0..N-1. High-pass kernels
// are the spectral inversion of the low-pass kernel: every tap is negated and
// 1 is added to the centre tap. Even kernel lengths are raised to the next
// odd value so that the kernel always has a single centre tap.
//
// Filtering is same-length causal convolution (see dsp/conv): output[i] sums
// kernel[j]*input[i-j] for j in 0..min(i, N-1), so the output has exactly as
// many samples as the input.
//
// [Filter.Apply] keeps the permissive contract of existing integrations: a nil
// filter, a destroyed filter, nil buffers or a bad length make it a silent
// no-op. [Filter.Process] and [Filter.ProcessTo] are the strict alternatives
// and report those conditions as errors.
//
// Filters can be persisted with [Filter.MarshalBinary] / [Filter.WriteTo] and
// restored with [Read] or [Load]. The record is little-endian:
//
//	int32   kind
//	int32   window
//	float32 cutoff (Hz)
//	int32   kernel length N
//	float32 sample rate (Hz)
//	N × float32 coefficients
//
// The format carries no magic number, version or checksum.
package fir
