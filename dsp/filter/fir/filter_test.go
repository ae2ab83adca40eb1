package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/conv"
	"github.com/cwbudde/algo-fir/internal/testutil"
)

const refTol = 1e-5

// Reference kernels for cutoff 1000 Hz, 11 taps, 8000 Hz.
var lowPassRef = map[Window][]float32{
	Rectangular:  {-0.04501582, 0, 0.07502636, 0.15915494, 0.22507908, 0.25, 0.22507908, 0.15915494, 0.07502636, 0, -0.04501582},
	Hanning:      {0, 0, 0.02592097, 0.10416826, 0.20358594, 0.25, 0.20358594, 0.10416826, 0.02592097, 0, 0},
	Hamming:      {-0.00360127, 0, 0.02984940, 0.10856720, 0.20530539, 0.25, 0.20530539, 0.10856720, 0.02984940, 0, -0.00360127},
	Blackman:     {0, 0, 0.01506305, 0.08113514, 0.19114387, 0.25, 0.19114387, 0.08113514, 0.01506305, 0, 0},
	KaiserBeta6:  {-0.00066954, 0, 0.02543529, 0.10098226, 0.20153585, 0.25, 0.20153585, 0.10098226, 0.02543529, 0, -0.00066954},
	KaiserBeta8:  {-0.00010528, 0, 0.01701424, 0.08539195, 0.19352346, 0.25, 0.19352346, 0.08539195, 0.01701424, 0, -0.00010528},
	KaiserBeta10: {-0.00001599, 0, 0.01139269, 0.07223330, 0.18584359, 0.25, 0.18584359, 0.07223330, 0.01139269, 0, -0.00001599},
}

func highPassRef(lp []float32) []float32 {
	hp := make([]float32, len(lp))
	for i, c := range lp {
		hp[i] = -c
	}
	hp[len(hp)/2] += 1
	return hp
}

func mustNew(t testing.TB, kind Kind, win Window, cutoff float32, length int, rate float32) *Filter {
	t.Helper()
	f, err := New(kind, win, cutoff, length, rate)
	if err != nil {
		t.Fatalf("New(%v, %v, %v, %d, %v): %v", kind, win, cutoff, length, rate, err)
	}
	return f
}

func TestNew_ReferenceKernels(t *testing.T) {
	for win, lp := range lowPassRef {
		t.Run(win.String()+"/lowpass", func(t *testing.T) {
			f := mustNew(t, LowPass, win, 1000, 11, 8000)
			testutil.RequireSliceNearlyEqual32(t, f.Coefficients(), lp, refTol)
		})
		t.Run(win.String()+"/highpass", func(t *testing.T) {
			f := mustNew(t, HighPass, win, 1000, 11, 8000)
			testutil.RequireSliceNearlyEqual32(t, f.Coefficients(), highPassRef(lp), refTol)
		})
	}
}

func TestNew_Symmetric(t *testing.T) {
	for _, kind := range []Kind{LowPass, HighPass} {
		for w := Rectangular; w <= KaiserBeta10; w++ {
			for _, n := range []int{1, 3, 31, 101} {
				f := mustNew(t, kind, w, 3000, n, 44100)
				c := f.Coefficients()
				for i := range c {
					if math.Abs(float64(c[i]-c[len(c)-1-i])) > 1e-6 {
						t.Fatalf("%v/%v n=%d: c[%d]=%v != c[%d]=%v", kind, w, n, i, c[i], len(c)-1-i, c[len(c)-1-i])
					}
				}
			}
		}
	}
}

func TestNew_HighPassIsSpectralInversion(t *testing.T) {
	for w := Rectangular; w <= KaiserBeta10; w++ {
		lp := mustNew(t, LowPass, w, 2500, 63, 48000).Coefficients()
		hp := mustNew(t, HighPass, w, 2500, 63, 48000).Coefficients()
		center := len(lp) / 2
		for i := range lp {
			want := -lp[i]
			if i == center {
				want = 1 - lp[i]
			}
			if math.Abs(float64(hp[i]-want)) > 1e-6 {
				t.Fatalf("%v: hp[%d]=%v, want %v", w, i, hp[i], want)
			}
		}
	}
}

func TestNew_CenterTap(t *testing.T) {
	f := mustNew(t, LowPass, Blackman, 1000, 11, 8000)
	if got := f.Coefficients()[f.Center()]; math.Abs(float64(got)-0.25) > refTol {
		t.Fatalf("centre tap: got %v, want 0.25", got)
	}
	f = mustNew(t, HighPass, Blackman, 1000, 11, 8000)
	if got := f.Coefficients()[f.Center()]; math.Abs(float64(got)-0.75) > refTol {
		t.Fatalf("high-pass centre tap: got %v, want 0.75", got)
	}
}

func TestNew_EvenLengthRaised(t *testing.T) {
	even := mustNew(t, LowPass, Hanning, 1000, 10, 8000)
	odd := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	if even.Len() != 11 {
		t.Fatalf("Len: got %d, want 11", even.Len())
	}
	if even.Spec().Length != 11 {
		t.Fatalf("Spec().Length: got %d, want 11", even.Spec().Length)
	}
	testutil.RequireSliceNearlyEqual32(t, even.Coefficients(), odd.Coefficients(), 0)
}

func TestNew_SingleTap(t *testing.T) {
	for w := Rectangular; w <= KaiserBeta10; w++ {
		f := mustNew(t, LowPass, w, 1000, 1, 8000)
		c := f.Coefficients()
		if len(c) != 1 || math.Abs(float64(c[0])-0.25) > 1e-7 {
			t.Fatalf("%v: got %v, want [0.25]", w, c)
		}
	}
}

func TestNew_CutoffAboveNyquist(t *testing.T) {
	f := mustNew(t, LowPass, Rectangular, 6000, 11, 8000)
	c := f.Coefficients()
	if math.Abs(float64(c[f.Center()])-1.5) > 1e-6 {
		t.Fatalf("centre tap: got %v, want 1.5", c[f.Center()])
	}
	testutil.RequireFinite32(t, c)
}

func TestNew_InvalidParameters(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name   string
		kind   Kind
		win    Window
		cutoff float32
		length int
		rate   float32
		want   error
	}{
		{"zero cutoff", LowPass, Hanning, 0, 11, 8000, ErrInvalidCutoff},
		{"negative cutoff", LowPass, Hanning, -100, 11, 8000, ErrInvalidCutoff},
		{"nan cutoff", LowPass, Hanning, nan, 11, 8000, ErrInvalidCutoff},
		{"zero rate", LowPass, Hanning, 1000, 11, 0, ErrInvalidSampleRate},
		{"negative rate", HighPass, Hamming, 1000, 11, -8000, ErrInvalidSampleRate},
		{"nan rate", LowPass, Hanning, 1000, 11, nan, ErrInvalidSampleRate},
		{"zero length", LowPass, Hanning, 1000, 0, 8000, ErrInvalidLength},
		{"negative length", LowPass, Hanning, 1000, -5, 8000, ErrInvalidLength},
		{"unknown kind", Kind(2), Hanning, 1000, 11, 8000, ErrUnknownKind},
		{"negative kind", Kind(-1), Hanning, 1000, 11, 8000, ErrUnknownKind},
		{"unknown window", LowPass, Window(7), 1000, 11, 8000, ErrUnknownWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.kind, tt.win, tt.cutoff, tt.length, tt.rate)
			if f != nil {
				t.Fatal("expected nil filter")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("%v does not wrap ErrInvalidSpec", err)
			}
		})
	}
}

func TestApply_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []float32
	}{
		{
			name: "ramp",
			in:   []float32{1, 2, 3, 4, 5},
			want: []float32{0, 0, 0.02592097, 0.15601020, 0.48968537},
		},
		{
			name: "alternating",
			in:   []float32{1, -1},
			want: []float32{0, 0},
		},
		{
			name: "longer than kernel",
			in:   []float32{0.5, 1.5, 2.5, 3.5, 4.5, 10, 30, 50, 100},
			want: []float32{0, 0, 0.01296048, 0.09096559, 0.32284779, 0.78152296, 1.46699110, 2.42298071, 4.28862617},
		},
	}

	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]float32(nil), tt.in...)
			out := make([]float32, len(in))
			f.Apply(out, in, len(in))
			testutil.RequireSliceNearlyEqual32(t, out, tt.want, refTol)
			testutil.RequireSliceNearlyEqual32(t, in, tt.in, 0)
		})
	}
}

func TestApply_Impulse(t *testing.T) {
	f := mustNew(t, HighPass, KaiserBeta8, 5000, 31, 48000)
	in := testutil.Impulse32(64, 0)
	out := make([]float32, len(in))
	f.Apply(out, in, len(in))
	testutil.RequireSliceNearlyEqual32(t, out[:f.Len()], f.Coefficients(), 0)
	for i := f.Len(); i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("out[%d]=%v after impulse response, want 0", i, out[i])
		}
	}
}

func TestApply_KernelLongerThanSignal(t *testing.T) {
	f := mustNew(t, LowPass, Hamming, 1000, 101, 8000)
	in := testutil.Ramp32(7)
	out := make([]float32, len(in))
	f.Apply(out, in, len(in))

	h := f.Coefficients()
	for i := range in {
		var want float64
		for j := 0; j <= i; j++ {
			want += float64(h[j]) * float64(in[i-j])
		}
		if math.Abs(float64(out[i])-want) > 1e-6 {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want)
		}
	}
}

func TestApply_PartialLength(t *testing.T) {
	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	in := []float32{1, 2, 3, 4, 5}
	out := []float32{9, 9, 9, 9, 9}
	f.Apply(out, in, 4)
	testutil.RequireSliceNearlyEqual32(t, out[:4], []float32{0, 0, 0.02592097, 0.15601020}, refTol)
	if out[4] != 9 {
		t.Fatalf("out[4] written: %v", out[4])
	}
}

func TestApply_NoOp(t *testing.T) {
	live := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	destroyed := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	destroyed.Destroy()
	in := []float32{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		f      *Filter
		src    []float32
		dstLen int
		nilDst bool
		length int
	}{
		{"nil filter", nil, in, 5, false, 5},
		{"destroyed", destroyed, in, 5, false, 5},
		{"nil src", live, nil, 5, false, 5},
		{"nil dst", live, in, 0, true, 5},
		{"negative length", live, in, 5, false, -1},
		{"zero length", live, in, 5, false, 0},
		{"length exceeds src", live, in, 8, false, 8},
		{"length exceeds dst", live, in, 3, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst []float32
			if !tt.nilDst {
				dst = make([]float32, tt.dstLen)
				for i := range dst {
					dst[i] = 42
				}
			}
			tt.f.Apply(dst, tt.src, tt.length)
			for i, v := range dst {
				if v != 42 {
					t.Fatalf("dst[%d] written: %v", i, v)
				}
			}
		})
	}
}

func TestProcess(t *testing.T) {
	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	out, err := f.Process([]float32{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual32(t, out, []float32{0, 0, 0.02592097, 0.15601020, 0.48968537}, refTol)

	out, err = f.Process(nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("Process(nil): got %v, %v", out, err)
	}
}

func TestProcessTo(t *testing.T) {
	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	in := testutil.DeterministicNoise32(7, 1, 256)

	want := make([]float32, len(in))
	f.Apply(want, in, len(in))

	got := make([]float32, len(in)+4)
	if err := f.ProcessTo(got, in); err != nil {
		t.Fatalf("ProcessTo: %v", err)
	}
	testutil.RequireSliceNearlyEqual32(t, got[:len(in)], want, 0)

	if err := f.ProcessTo(make([]float32, 3), in); !errors.Is(err, conv.ErrLengthMismatch) {
		t.Fatalf("short dst: got %v, want ErrLengthMismatch", err)
	}
}

func TestDestroy(t *testing.T) {
	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	f.Destroy()
	f.Destroy()

	if !f.Destroyed() {
		t.Fatal("Destroyed: got false after Destroy")
	}
	if f.Len() != 0 || f.Coefficients() != nil {
		t.Fatalf("destroyed filter still has taps: %d", f.Len())
	}
	if _, err := f.Process([]float32{1}); !errors.Is(err, ErrNoKernel) {
		t.Fatalf("Process: got %v, want ErrNoKernel", err)
	}
	if err := f.ProcessTo(make([]float32, 1), []float32{1}); !errors.Is(err, ErrNoKernel) {
		t.Fatalf("ProcessTo: got %v, want ErrNoKernel", err)
	}

	var nilFilter *Filter
	nilFilter.Destroy()
	if !nilFilter.Destroyed() {
		t.Fatal("nil filter not reported destroyed")
	}
	if _, err := nilFilter.Process([]float32{1}); !errors.Is(err, ErrNoKernel) {
		t.Fatalf("nil Process: got %v, want ErrNoKernel", err)
	}
}

func TestCoefficients_IsCopy(t *testing.T) {
	f := mustNew(t, LowPass, Hanning, 1000, 11, 8000)
	c := f.Coefficients()
	c[5] = 999
	if f.coeffs[5] == 999 {
		t.Error("Coefficients did not return a copy")
	}
}

func TestResponse_DCGain(t *testing.T) {
	f := mustNew(t, LowPass, Hamming, 1000, 11, 8000)
	var sum float64
	for _, c := range f.Coefficients() {
		sum += float64(c)
	}
	if got := cmplx.Abs(f.Response(0)); math.Abs(got-math.Abs(sum)) > 1e-9 {
		t.Errorf("DC gain: got %v, want %v", got, sum)
	}
}

func TestMagnitudeDB_Passband(t *testing.T) {
	lp := mustNew(t, LowPass, KaiserBeta8, 4000, 101, 48000)
	if db := lp.MagnitudeDB(500); math.Abs(db) > 0.1 {
		t.Errorf("low-pass at 500 Hz: %.3f dB, want ~0", db)
	}
	if db := lp.MagnitudeDB(12000); db > -60 {
		t.Errorf("low-pass at 12 kHz: %.3f dB, want < -60", db)
	}

	hp := mustNew(t, HighPass, KaiserBeta8, 4000, 101, 48000)
	if db := hp.MagnitudeDB(12000); math.Abs(db) > 0.1 {
		t.Errorf("high-pass at 12 kHz: %.3f dB, want ~0", db)
	}
	if db := hp.MagnitudeDB(500); db > -60 {
		t.Errorf("high-pass at 500 Hz: %.3f dB, want < -60", db)
	}
}

func TestLargeKernel(t *testing.T) {
	f := mustNew(t, LowPass, Blackman, 1000, 4001, 48000)
	in := testutil.DeterministicNoise32(1, 1, 8192)
	out, err := f.Process(in)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireFinite32(t, out)
}

func TestWindowWeights(t *testing.T) {
	w, err := Hanning.Weights(11)
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}
	if len(w) != 11 || math.Abs(float64(w[5])-1) > 1e-7 || math.Abs(float64(w[0])) > 1e-7 {
		t.Fatalf("unexpected Hanning weights %v", w)
	}

	if _, err := Window(42).Weights(11); !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("unknown window: got %v", err)
	}
	if _, err := Blackman.Weights(10); err == nil {
		t.Fatal("even length accepted")
	}
}

func TestParseNames(t *testing.T) {
	for k := LowPass; k <= HighPass; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	for _, name := range WindowNames() {
		w, err := ParseWindow(name)
		if err != nil || w.String() != name {
			t.Errorf("ParseWindow(%q) = %v, %v", name, w, err)
		}
	}
	if w, err := ParseWindow(" Kaiser_B8 "); err != nil || w != KaiserBeta8 {
		t.Errorf("ParseWindow is not case-insensitive: %v, %v", w, err)
	}
	if _, err := ParseKind("bandpass"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(bandpass): got %v", err)
	}
	if _, err := ParseWindow("hann"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ParseWindow(hann): got %v", err)
	}
	if s := Window(9).String(); s != "Window(9)" {
		t.Errorf("String of unknown window: %q", s)
	}
}
