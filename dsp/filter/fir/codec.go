package fir

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// header is the fixed-size prefix of a persisted filter.
type header struct {
	Kind       int32
	Window     int32
	Cutoff     float32
	Length     int32
	SampleRate float32
}

const (
	headerSize = 20
	// readChunk bounds how many coefficients are decoded per read so that a
	// corrupt length field cannot force a huge allocation up front.
	readChunk = 4096
)

var byteOrder = binary.LittleEndian

// MarshalBinary encodes the filter in the persisted record layout.
func (f *Filter) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + 4*f.Len())
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces f with the filter encoded in data. data must hold
// exactly one record.
func (f *Filter) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	if _, err := f.ReadFrom(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptFile, r.Len())
	}
	return nil
}

// WriteTo writes the persisted record to w.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	if f.Destroyed() {
		return 0, ErrNoKernel
	}

	hdr := header{
		Kind:       int32(f.spec.Kind),
		Window:     int32(f.spec.Window),
		Cutoff:     f.spec.Cutoff,
		Length:     int32(len(f.coeffs)),
		SampleRate: f.spec.SampleRate,
	}
	if err := binary.Write(w, byteOrder, &hdr); err != nil {
		return 0, fmt.Errorf("fir: write header: %w", err)
	}
	if err := binary.Write(w, byteOrder, f.coeffs); err != nil {
		return headerSize, fmt.Errorf("fir: write coefficients: %w", err)
	}
	return int64(headerSize + 4*len(f.coeffs)), nil
}

// ReadFrom reads one persisted record from r and replaces f with it. The
// coefficients are taken verbatim from the record; they are not recomputed
// from the header.
func (f *Filter) ReadFrom(r io.Reader) (int64, error) {
	var hdr header
	if err := binary.Read(r, byteOrder, &hdr); err != nil {
		return 0, fmt.Errorf("%w: header: %w", ErrCorruptFile, unexpectedEOF(err))
	}

	spec := Spec{
		Kind:       Kind(hdr.Kind),
		Window:     Window(hdr.Window),
		Cutoff:     hdr.Cutoff,
		Length:     int(hdr.Length),
		SampleRate: hdr.SampleRate,
	}
	if err := spec.Validate(); err != nil {
		return headerSize, fmt.Errorf("%w: %w", ErrCorruptFile, err)
	}
	if spec.Length%2 == 0 {
		return headerSize, fmt.Errorf("%w: even kernel length %d", ErrCorruptFile, spec.Length)
	}

	coeffs := make([]float32, 0, min(spec.Length, readChunk))
	chunk := make([]float32, min(spec.Length, readChunk))
	for remaining := spec.Length; remaining > 0; {
		k := min(remaining, len(chunk))
		if err := binary.Read(r, byteOrder, chunk[:k]); err != nil {
			n := int64(headerSize + 4*len(coeffs))
			return n, fmt.Errorf("%w: coefficients: %w", ErrCorruptFile, unexpectedEOF(err))
		}
		coeffs = append(coeffs, chunk[:k]...)
		remaining -= k
	}

	f.spec = spec
	f.coeffs = coeffs
	return int64(headerSize + 4*len(coeffs)), nil
}

// Read decodes one persisted filter from r.
func Read(r io.Reader) (*Filter, error) {
	f := &Filter{}
	if _, err := f.ReadFrom(r); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes the filter to the named file, creating or truncating it.
func (f *Filter) Save(path string) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a filter from the named file.
func Load(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &Filter{}
	if err := f.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// unexpectedEOF reports a clean EOF inside a record as io.ErrUnexpectedEOF.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
