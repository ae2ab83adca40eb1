// Command firfilter designs windowed-sinc FIR filters and applies them to
// sample files.
//
// Usage:
//
//	firfilter create [-v] <filter_type> <window_type> <cutoff_freq> <kernel_length> <sample_rate> <output_file>
//	firfilter apply [-v] [-bits N] <input_file> <filter_file> <output_file>
//	firfilter destroy [-v] <filter_file>
//	firfilter info [-fft N] [-coeffs] <filter_file>
//
// Filter types are lowpass and highpass. Window types are rect, hanning,
// hamming, blackman, kaiser_b6, kaiser_b8 and kaiser_b10. Sample files
// ending in .wav are read and written as PCM WAV; any other file holds one
// sample per line.
//
// Examples:
//
//	firfilter create lowpass hanning 1000 11 8000 lp.fir
//	firfilter apply input.txt lp.fir output.txt
//	firfilter info -coeffs lp.fir
//	firfilter destroy lp.fir
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	// errUsage marks errors that should print the command synopsis.
	errUsage = errors.New("usage")
	// errBadFlags marks flag errors the flag package has already reported.
	errBadFlags = errors.New("bad flags")
)

type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
	// vlog receives progress messages; it discards them unless -v is set.
	vlog *log.Logger
}

func (e *env) verbose(on bool) {
	if on {
		e.vlog.SetOutput(e.stderr)
	}
}

type command struct {
	name     string
	synopsis string
	run      func(e *env, fs *flag.FlagSet, args []string) error
}

var commands = []command{
	{"create", "create [-v] <filter_type> <window_type> <cutoff_freq> <kernel_length> <sample_rate> <output_file>", runCreate},
	{"apply", "apply [-v] [-bits N] <input_file> <filter_file> <output_file>", runApply},
	{"destroy", "destroy [-v] <filter_file>", runDestroy},
	{"info", "info [-fft N] [-coeffs] <filter_file>", runInfo},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	e := &env{
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "firfilter: ", 0),
		vlog:   log.New(io.Discard, "firfilter: ", 0),
	}

	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	name := strings.ToLower(args[0])
	for _, c := range commands {
		if c.name != name {
			continue
		}

		fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.Usage = func() {
			fmt.Fprintf(stderr, "Usage: firfilter %s\n", c.synopsis)
			fs.PrintDefaults()
		}

		err := c.run(e, fs, args[1:])
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		case errors.Is(err, errBadFlags):
			return exitUsage
		case errors.Is(err, errUsage):
			e.log.Print(err)
			fs.Usage()
			return exitUsage
		default:
			e.log.Print(err)
			return exitFailure
		}
	}

	e.log.Printf("unknown command %q", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  firfilter %s\n", c.synopsis)
	}
	fmt.Fprintf(w, "\nFilter types: lowpass, highpass\n")
	fmt.Fprintf(w, "Window types: rect, hanning, hamming, blackman, kaiser_b6, kaiser_b8, kaiser_b10\n")
}

// parseArgs parses flags and checks the positional argument count.
func parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errBadFlags, err)
	}
	if fs.NArg() != want {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", errUsage, want, fs.NArg())
	}
	return fs.Args(), nil
}
