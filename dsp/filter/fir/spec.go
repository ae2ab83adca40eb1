package fir

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-fir/dsp/window"
)

// MaxLength is the largest kernel length; it is bounded by the int32 length
// field of the persisted format.
const MaxLength = math.MaxInt32

// Kind selects the filter response. The numeric values are part of the
// persisted format.
type Kind int32

const (
	LowPass Kind = iota
	HighPass
)

// Window selects the window applied to the ideal sinc response. The numeric
// values are part of the persisted format.
type Window int32

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
	KaiserBeta6
	KaiserBeta8
	KaiserBeta10
)

var kindNames = [...]string{
	LowPass:  "lowpass",
	HighPass: "highpass",
}

var windowNames = [...]string{
	Rectangular:  "rect",
	Hanning:      "hanning",
	Hamming:      "hamming",
	Blackman:     "blackman",
	KaiserBeta6:  "kaiser_b6",
	KaiserBeta8:  "kaiser_b8",
	KaiserBeta10: "kaiser_b10",
}

// Valid reports whether k is a known filter kind.
func (k Kind) Valid() bool { return k >= LowPass && k <= HighPass }

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// ParseKind converts a name such as "lowpass" or "highpass" to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether w is a known window.
func (w Window) Valid() bool { return w >= Rectangular && w <= KaiserBeta10 }

func (w Window) String() string {
	if w.Valid() {
		return windowNames[w]
	}
	return fmt.Sprintf("Window(%d)", int32(w))
}

// ParseWindow converts a name such as "hanning" or "kaiser_b8" to a Window.
func ParseWindow(s string) (Window, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for w, name := range windowNames {
		if s == name {
			return Window(w), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// WindowNames returns the accepted window names in enum order.
func WindowNames() []string {
	return append([]string(nil), windowNames[:]...)
}

// WindowType maps w to the window package type and its Kaiser beta.
func (w Window) WindowType() (window.Type, float32) {
	switch w {
	case Rectangular:
		return window.TypeRectangular, 0
	case Hanning:
		return window.TypeHann, 0
	case Hamming:
		return window.TypeHamming, 0
	case Blackman:
		return window.TypeBlackman, 0
	case KaiserBeta6:
		return window.TypeKaiser, 6
	case KaiserBeta8:
		return window.TypeKaiser, 8
	case KaiserBeta10:
		return window.TypeKaiser, 10
	default:
		return window.TypeRectangular, 0
	}
}

// Weights returns the window weights for a kernel of the given odd length.
func (w Window) Weights(length int) ([]float32, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, int32(w))
	}
	typ, beta := w.WindowType()
	return window.Generate(typ, length, window.WithBeta(beta))
}

// Spec describes a windowed-sinc filter.
type Spec struct {
	Kind       Kind
	Window     Window
	Cutoff     float32 // Hz
	Length     int     // taps; even values are raised to the next odd value
	SampleRate float32 // Hz
}

// Validate reports the first parameter that prevents construction.
// Cutoff frequencies above Nyquist are accepted.
func (s Spec) Validate() error {
	switch {
	case !s.Kind.Valid():
		return fmt.Errorf("%w: %d", ErrUnknownKind, int32(s.Kind))
	case !s.Window.Valid():
		return fmt.Errorf("%w: %d", ErrUnknownWindow, int32(s.Window))
	case !(s.Cutoff > 0):
		return fmt.Errorf("%w: %v", ErrInvalidCutoff, s.Cutoff)
	case !(s.SampleRate > 0):
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, s.SampleRate)
	case s.Length <= 0 || s.Length > MaxLength:
		return fmt.Errorf("%w: %d", ErrInvalidLength, s.Length)
	}
	return nil
}

// Normalize returns s with an even Length raised to the next odd value.
func (s Spec) Normalize() Spec {
	if s.Length > 0 && s.Length%2 == 0 {
		s.Length++
	}
	return s
}

// NormalizedCutoff returns 2·Cutoff/SampleRate, the cutoff as a fraction of
// Nyquist. Values above 1 are not clamped.
func (s Spec) NormalizedCutoff() float32 {
	return 2 * s.Cutoff / s.SampleRate
}
