package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/dsp/window"
	"github.com/cwbudde/algo-fir/internal/signalio"
	"github.com/cwbudde/algo-fir/measure/response"
	timestats "github.com/cwbudde/algo-fir/stats/time"
)

func runCreate(e *env, fs *flag.FlagSet, args []string) error {
	verbose := fs.Bool("v", false, "log progress to stderr")
	pos, err := parseArgs(fs, args, 6)
	if err != nil {
		return err
	}
	e.verbose(*verbose)

	kind, err := fir.ParseKind(pos[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	win, err := fir.ParseWindow(pos[1])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	cutoff, err := strconv.ParseFloat(pos[2], 32)
	if err != nil {
		return fmt.Errorf("%w: cutoff_freq: %w", errUsage, err)
	}
	length, err := strconv.Atoi(pos[3])
	if err != nil {
		return fmt.Errorf("%w: kernel_length: %w", errUsage, err)
	}
	rate, err := strconv.ParseFloat(pos[4], 32)
	if err != nil {
		return fmt.Errorf("%w: sample_rate: %w", errUsage, err)
	}

	f, err := fir.New(kind, win, float32(cutoff), length, float32(rate))
	if err != nil {
		return err
	}
	defer f.Destroy()

	if f.Len() != length {
		e.vlog.Printf("kernel length %d raised to %d", length, f.Len())
	}
	if err := f.Save(pos[5]); err != nil {
		return err
	}

	e.vlog.Printf("created %s %s filter: cutoff %g Hz, %d taps, %g Hz -> %s",
		kind, win, cutoff, f.Len(), rate, pos[5])
	return nil
}

func runApply(e *env, fs *flag.FlagSet, args []string) error {
	verbose := fs.Bool("v", false, "log progress to stderr")
	bits := fs.Int("bits", signalio.DefaultBitDepth, "bit depth of WAV output (16, 24 or 32)")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}
	e.verbose(*verbose)

	inPath, filterPath, outPath := pos[0], pos[1], pos[2]

	f, err := fir.Load(filterPath)
	if err != nil {
		return err
	}
	defer f.Destroy()

	in, inRate, err := signalio.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	rate := int(f.Spec().SampleRate)
	if inRate != 0 && inRate != rate {
		e.log.Printf("warning: %s is sampled at %d Hz, filter was designed for %d Hz", inPath, inRate, rate)
	}

	out := make([]float32, len(in))
	f.Apply(out, in, len(in))

	if err := signalio.WriteFile(outPath, out, rate, *bits); err != nil {
		return fmt.Errorf("%s: %w", outPath, err)
	}

	e.vlog.Printf("filtered %d samples with %d taps: %s -> %s", len(in), f.Len(), inPath, outPath)
	for _, lv := range []struct {
		name string
		x    []float32
	}{{"input", in}, {"output", out}} {
		st := timestats.Calculate(lv.x)
		e.vlog.Printf("%s level: rms %.2f dBFS, peak %.2f dBFS at %d", lv.name, st.RMS_dB, st.Peak_dB, st.PeakPos)
	}
	return nil
}

func runDestroy(e *env, fs *flag.FlagSet, args []string) error {
	verbose := fs.Bool("v", false, "log progress to stderr")
	pos, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	e.verbose(*verbose)

	// Refuse to delete anything that is not a filter file.
	f, err := fir.Load(pos[0])
	if err != nil {
		return err
	}
	f.Destroy()

	if err := os.Remove(pos[0]); err != nil {
		return err
	}

	e.vlog.Printf("removed %s", pos[0])
	return nil
}

func runInfo(e *env, fs *flag.FlagSet, args []string) error {
	fftSize := fs.Int("fft", 0, "FFT size for the response summary (0 = automatic)")
	showCoeffs := fs.Bool("coeffs", false, "print the kernel coefficients")
	pos, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}

	f, err := fir.Load(pos[0])
	if err != nil {
		return err
	}
	defer f.Destroy()

	spec := f.Spec()
	weights, err := spec.Window.Weights(spec.Length)
	if err != nil {
		return err
	}
	wa := window.Analyze(weights)

	r, err := response.Compute(f.Coefficients(), float64(spec.SampleRate), response.WithFFTSize(*fftSize))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\t%s\n", spec.Kind)
	fmt.Fprintf(tw, "Window\t%s\n", spec.Window)
	fmt.Fprintf(tw, "Cutoff\t%g Hz\n", spec.Cutoff)
	fmt.Fprintf(tw, "Normalized cutoff\t%.6f\n", spec.NormalizedCutoff())
	fmt.Fprintf(tw, "Kernel length\t%d\n", f.Len())
	fmt.Fprintf(tw, "Sample rate\t%g Hz\n", spec.SampleRate)
	fmt.Fprintf(tw, "Group delay\t%d samples\n", f.Center())
	fmt.Fprintf(tw, "Window coherent gain\t%.6f\n", wa.CoherentGain)
	fmt.Fprintf(tw, "Window ENBW\t%.4f bins\n", wa.ENBW)
	if typ, _ := spec.Window.WindowType(); window.Info(typ).HighestSidelobe != 0 {
		fmt.Fprintf(tw, "Window sidelobe\t%.1f dB\n", window.Info(typ).HighestSidelobe)
	}
	fmt.Fprintf(tw, "FFT size\t%d\n", r.FFTSize)
	fmt.Fprintf(tw, "DC gain\t%.2f dB\n", r.MagnitudeDBAt(0))
	fmt.Fprintf(tw, "Nyquist gain\t%.2f dB\n", r.MagnitudeDBAt(r.SampleRate/2))

	if fc, ok := r.Crossing(-6); ok {
		fmt.Fprintf(tw, "-6 dB crossing\t%.1f Hz\n", fc)
		from, to := 0.0, fc
		if spec.Kind == fir.HighPass {
			from, to = fc, r.SampleRate/2
		}
		db, at := r.PeakDB(from, to)
		fmt.Fprintf(tw, "Passband peak\t%.3f dB at %.1f Hz\n", db, at)
	} else {
		fmt.Fprintf(tw, "-6 dB crossing\tnone\n")
	}

	if *showCoeffs {
		fmt.Fprintf(tw, "\nTap\tCoefficient\n")
		for i, c := range f.Coefficients() {
			fmt.Fprintf(tw, "%d\t%.8f\n", i, c)
		}
	}

	return tw.Flush()
}
