package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for non-positive window lengths.
	ErrInvalidLength = errors.New("window: length must be > 0")
	// ErrEvenLength is returned for even window lengths, which have no centre tap.
	ErrEvenLength = errors.New("window: length must be odd")
	// ErrUnknownType is returned for window types outside the supported set.
	ErrUnknownType = errors.New("window: unknown type")
	// ErrInvalidBeta is returned for negative Kaiser beta values.
	ErrInvalidBeta = errors.New("window: kaiser beta must be >= 0")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenLength, size)
	}
	return nil
}

func validateType(t Type) error {
	if t < TypeRectangular || t > TypeKaiser {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return nil
}

func validateKaiser(size int, beta float32) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if beta < 0 {
		return fmt.Errorf("%w: %f", ErrInvalidBeta, beta)
	}
	return nil
}
