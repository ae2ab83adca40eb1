package signalio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	ErrNotWAV              = errors.New("signalio: not a WAV file")
	ErrUnsupportedBitDepth = errors.New("signalio: unsupported bit depth")
)

// DefaultBitDepth is used by WriteFile when no depth is given.
const DefaultBitDepth = 16

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// ReadWAV decodes a PCM WAV stream. Only the first channel is returned,
// scaled to [-1, 1).
func ReadWAV(r io.ReadSeeker) (samples []float32, sampleRate int, err error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, ErrNotWAV
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("signalio: decode wav: %w", err)
	}

	scale, err := fullScale(buf.SourceBitDepth)
	if err != nil {
		return nil, 0, err
	}

	chans := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / chans
	samples = make([]float32, frames)
	for i := range samples {
		samples[i] = float32(float64(buf.Data[i*chans]) / scale)
	}

	return samples, buf.Format.SampleRate, nil
}

// WriteWAV encodes samples as mono PCM. Values are clipped to [-1, 1].
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate, bitDepth int) error {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("signalio: invalid sample rate %d", sampleRate)
	}

	peak := scale - 1
	data := make([]int, len(samples))
	for i, v := range samples {
		x := math.Max(-1, math.Min(1, float64(v)))
		data[i] = int(math.Round(x * peak))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	const pcm = 1
	e := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcm)
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("signalio: encode wav: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("signalio: finish wav: %w", err)
	}

	return nil
}
