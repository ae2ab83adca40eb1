// Package time computes level statistics of sample buffers.
package time

import "math"

// Stats holds time-domain level statistics of a buffer.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor_dB float64 // peak / RMS
	Energy         float64 // sum of squares
	ZeroCrossings  int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes all statistics in a single pass. Accumulation is done
// in float64.
func Calculate(signal []float32) Stats {
	s := Stats{
		Length:         len(signal),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
	if len(signal) == 0 {
		return s
	}

	var sum float64
	for i, v := range signal {
		x := float64(v)
		sum += x
		s.Energy += x * x

		if a := math.Abs(x); a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}

		if i > 0 && signal[i-1]*v < 0 {
			s.ZeroCrossings++
		}
	}

	n := float64(len(signal))
	s.DC = sum / n
	s.RMS = math.Sqrt(s.Energy / n)
	s.RMS_dB = ampTodB(s.RMS)
	s.Peak_dB = ampTodB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor_dB = s.Peak_dB - s.RMS_dB
	}

	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float32) float64 {
	return Calculate(signal).RMS
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float32) float64 {
	return Calculate(signal).Peak
}
