package fir

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when a filter cannot be constructed from the
// given parameters. The specific causes below all wrap it.
var ErrInvalidSpec = errors.New("fir: invalid filter specification")

var (
	ErrInvalidCutoff     = fmt.Errorf("%w: cutoff frequency must be > 0", ErrInvalidSpec)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be > 0", ErrInvalidSpec)
	ErrInvalidLength     = fmt.Errorf("%w: kernel length must be in [1, %d]", ErrInvalidSpec, MaxLength)
	ErrUnknownKind       = fmt.Errorf("%w: unknown filter kind", ErrInvalidSpec)
	ErrUnknownWindow     = fmt.Errorf("%w: unknown window", ErrInvalidSpec)
)

var (
	// ErrNoKernel is returned by the strict API when the filter is nil or
	// has been destroyed.
	ErrNoKernel = errors.New("fir: filter has no kernel")
	// ErrCorruptFile is returned when a persisted filter cannot be decoded.
	ErrCorruptFile = errors.New("fir: corrupt filter data")
)
