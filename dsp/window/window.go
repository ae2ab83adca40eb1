// Package window provides single-precision window functions for windowed-sinc
// FIR design.
//
// Windows are evaluated on the centred tap grid n = -(N-1)/2 .. (N-1)/2 and
// stored at index n+(N-1)/2, so the length N must be odd. The cosine windows
// use the angular position θ = 2πn/(N-1); the Kaiser window uses the
// truncated Bessel series in [BesselI0].
package window

import (
	"github.com/chewxy/math32"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

// DefaultKaiserBeta is the Kaiser beta used when no [WithBeta] option is given.
const DefaultKaiserBeta = 8.6

// Metadata holds nominal spectral properties of a window type.
type Metadata struct {
	Name string
	// HighestSidelobe is the nominal peak sidelobe in dB. It is zero for
	// windows whose sidelobe level depends on a parameter.
	HighestSidelobe float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", HighestSidelobe: -13.3},
	TypeHann:        {Name: "Hann", HighestSidelobe: -31.5},
	TypeHamming:     {Name: "Hamming", HighestSidelobe: -42.7},
	TypeBlackman:    {Name: "Blackman", HighestSidelobe: -58.1},
	TypeKaiser:      {Name: "Kaiser"},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float32
}

func defaultConfig() config {
	return config{
		beta: DefaultKaiserBeta,
	}
}

// WithBeta configures the Kaiser shape parameter. Negative values are ignored.
func WithBeta(v float32) Option {
	return func(c *config) {
		if v >= 0 {
			c.beta = v
		}
	}
}

// Evaluator computes window weights for one window type and length.
// For the Kaiser window it owns the factorial table and I0(beta), both
// computed once at construction and shared by every tap.
type Evaluator struct {
	typ    Type
	length int
	beta   float32
	i0     *BesselI0
	i0Beta float32
}

// NewEvaluator validates the window parameters and prepares an Evaluator.
func NewEvaluator(t Type, length int, opts ...Option) (*Evaluator, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}
	if err := validateLength(length); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := &Evaluator{
		typ:    t,
		length: length,
		beta:   cfg.beta,
	}
	if t == TypeKaiser {
		e.i0 = NewBesselI0()
		e.i0Beta = e.i0.Eval(cfg.beta)
	}

	return e, nil
}

// Type returns the window type.
func (e *Evaluator) Type() Type { return e.typ }

// Len returns the window length.
func (e *Evaluator) Len() int { return e.length }

// Beta returns the Kaiser shape parameter in effect.
func (e *Evaluator) Beta() float32 { return e.beta }

// At returns the weight for the centred tap offset n, |n| <= (Len()-1)/2.
func (e *Evaluator) At(n int) float32 {
	// A single tap is always the window centre.
	if e.length == 1 {
		return 1
	}

	switch e.typ {
	case TypeRectangular:
		return 1
	case TypeHann:
		return 0.5 + 0.5*math32.Cos(e.theta(n))
	case TypeHamming:
		return 0.54 + 0.46*math32.Cos(e.theta(n))
	case TypeBlackman:
		theta := e.theta(n)
		return 0.42 + 0.5*math32.Cos(theta) + 0.08*math32.Cos(2*theta)
	case TypeKaiser:
		return e.kaiserAt(n)
	default:
		return 1
	}
}

func (e *Evaluator) theta(n int) float32 {
	return float32(2*n) * math32.Pi / float32(e.length-1)
}

func (e *Evaluator) kaiserAt(n int) float32 {
	pos := float32(2*n) / float32(e.length-1)
	arg := e.beta * math32.Sqrt(1-pos*pos)

	return e.i0.Eval(arg) / e.i0Beta
}

// Generate returns window coefficients of the given odd length.
func Generate(t Type, length int, opts ...Option) ([]float32, error) {
	e, err := NewEvaluator(t, length, opts...)
	if err != nil {
		return nil, err
	}

	half := (length - 1) / 2
	out := make([]float32, length)
	for n := -half; n <= half; n++ {
		out[n+half] = e.At(n)
	}

	return out, nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float32, opts ...Option) error {
	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}

	for i := range buf {
		buf[i] *= coeffs[i]
	}

	return nil
}

// Kaiser returns Kaiser window coefficients.
func Kaiser(size int, beta float32) ([]float32, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, size, WithBeta(beta))
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float32, error) {
	return Generate(TypeHann, size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float32, error) {
	return Generate(TypeHamming, size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int) ([]float32, error) {
	return Generate(TypeBlackman, size)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// String returns the window name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return "Unknown"
}
