// Package signalio reads and writes sample sequences as plain text or WAV.
package signalio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a text line is not a number.
var ErrMalformedLine = errors.New("signalio: malformed sample line")

// ReadText reads one sample per line. Surrounding whitespace is ignored and
// blank lines are skipped.
func ReadText(r io.Reader) ([]float32, error) {
	var samples []float32

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}

		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, s)
		}
		samples = append(samples, float32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("signalio: read: %w", err)
	}

	return samples, nil
}

// WriteText writes one sample per line with six decimals.
func WriteText(w io.Writer, samples []float32) error {
	bw := bufio.NewWriter(w)
	for _, v := range samples {
		if _, err := fmt.Fprintf(bw, "%f\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
