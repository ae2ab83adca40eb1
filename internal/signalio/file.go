package signalio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// IsWAV reports whether path names a WAV file by its extension.
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// ReadFile reads samples from path. WAV files report their sample rate;
// text files report 0.
func ReadFile(path string) (samples []float32, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	if IsWAV(path) {
		return ReadWAV(f)
	}

	samples, err = ReadText(f)
	return samples, 0, err
}

// WriteFile writes samples to path, creating or truncating it. sampleRate
// and bitDepth apply to WAV output only; a bitDepth of 0 selects
// DefaultBitDepth.
func WriteFile(path string, samples []float32, sampleRate, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if IsWAV(path) {
		if bitDepth == 0 {
			bitDepth = DefaultBitDepth
		}
		return WriteWAV(f, samples, sampleRate, bitDepth)
	}

	return WriteText(f, samples)
}
