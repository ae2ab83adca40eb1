// Package conv provides direct time-domain convolution in single precision.
//
// Two output modes are offered:
//
//   - Causal: same-length, causal, truncated convolution. Output sample i is
//     the sum of h[j]*x[i-j] for j in 0..min(i, len(h)-1). The trailing
//     len(h)-1 samples of the full result are discarded so that the output
//     has the same length as the input and stages can be chained.
//   - Direct: full linear convolution with length len(x)+len(h)-1.
//
// Both are O(len(x)*len(h)) with no FFT path.
//
// # Usage
//
//	y, err := conv.Causal(x, h)    // len(y) == len(x)
//	err = conv.CausalTo(dst, x, h) // writes len(x) samples into dst
//	full, err := conv.Direct(x, h) // len(full) == len(x)+len(h)-1
//
// Inputs are never modified.
package conv
