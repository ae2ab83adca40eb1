package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fir/internal/testutil"
)

const tolerance = 1e-6

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.RMS != 0 || s.Peak != 0 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) || !math.IsInf(s.CrestFactor_dB, -1) {
		t.Fatalf("dB fields not -Inf: %+v", s)
	}
}

func TestCalculate_DC(t *testing.T) {
	s := Calculate(testutil.DC32(-0.5, 100))
	if !almostEqual(s.DC, -0.5, tolerance) || !almostEqual(s.RMS, 0.5, tolerance) {
		t.Errorf("DC/RMS: got %v/%v", s.DC, s.RMS)
	}
	if !almostEqual(s.CrestFactor_dB, 0, tolerance) {
		t.Errorf("crest factor: got %v dB, want 0", s.CrestFactor_dB)
	}
	if s.ZeroCrossings != 0 {
		t.Errorf("zero crossings: got %d", s.ZeroCrossings)
	}
}

func TestCalculate_Sine(t *testing.T) {
	// 100 full cycles of a 100 Hz sine at 10 kHz.
	x := testutil.DeterministicSine32(100, 10000, 1, 10000)
	s := Calculate(x)

	if !almostEqual(s.RMS, 1/math.Sqrt2, 1e-4) {
		t.Errorf("RMS: got %v, want %v", s.RMS, 1/math.Sqrt2)
	}
	if !almostEqual(s.CrestFactor_dB, 20*math.Log10(math.Sqrt2), 1e-3) {
		t.Errorf("crest factor: got %v dB", s.CrestFactor_dB)
	}
	if !almostEqual(s.DC, 0, 1e-6) {
		t.Errorf("DC: got %v", s.DC)
	}
	if s.ZeroCrossings < 195 || s.ZeroCrossings > 200 {
		t.Errorf("zero crossings: got %d, want ~199", s.ZeroCrossings)
	}
}

func TestCalculate_PeakPosition(t *testing.T) {
	s := Calculate([]float32{0.1, -0.9, 0.5, 0.9})
	if s.PeakPos != 1 || !almostEqual(s.Peak, 0.9, tolerance) {
		t.Errorf("peak: got %v at %d, want 0.9 at 1", s.Peak, s.PeakPos)
	}
	if !almostEqual(Peak([]float32{0.1, -0.9}), 0.9, tolerance) {
		t.Error("Peak helper disagrees with Calculate")
	}
	if !almostEqual(RMS([]float32{3, 4}), math.Sqrt(12.5), tolerance) {
		t.Error("RMS helper wrong")
	}
}
