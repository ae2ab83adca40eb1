package conv

import (
	"fmt"
	"testing"
)

func BenchmarkCausal(b *testing.B) {
	x := make([]float32, 4096)
	for i := range x {
		x[i] = float32(i%10) * 0.1
	}
	dst := make([]float32, len(x))

	for _, taps := range []int{11, 101, 1001} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			h := make([]float32, taps)
			for i := range h {
				h[i] = 1 / float32(taps)
			}
			b.SetBytes(int64(len(x) * 4))
			for b.Loop() {
				_ = CausalTo(dst, x, h)
			}
		})
	}
}
