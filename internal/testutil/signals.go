package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine32 generates a deterministic sine wave.
func DeterministicSine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise32 generates white noise with a fixed seed for reproducibility.
func DeterministicNoise32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse32 generates a unit impulse at the given position.
func Impulse32(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp32 returns 1, 2, ..., length.
func Ramp32(length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = float32(i + 1)
	}
	return out
}

// DC32 generates a constant-valued signal.
func DC32(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// RMS32 returns the root mean square of x, or 0 for an empty slice.
func RMS32(x []float32) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)))
}
