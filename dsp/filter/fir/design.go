package fir

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-fir/dsp/window"
)

// Design computes the kernel for spec. The returned slice has
// spec.Normalize().Length taps and is owned by the caller.
func Design(spec Spec) ([]float32, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.Normalize()

	typ, beta := spec.Window.WindowType()
	w, err := window.NewEvaluator(typ, spec.Length, window.WithBeta(beta))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	fc := spec.NormalizedCutoff()
	half := (spec.Length - 1) / 2
	h := make([]float32, spec.Length)

	for n := -half; n <= half; n++ {
		var c float32
		if n == 0 {
			c = fc
		} else {
			piN := math32.Pi * float32(n)
			c = math32.Sin(fc*piN) / piN
		}

		c *= w.At(n)

		// Spectral inversion.
		if spec.Kind == HighPass {
			c = -c
			if n == 0 {
				c += 1
			}
		}

		h[n+half] = c
	}

	return h, nil
}
