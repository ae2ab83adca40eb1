package response

const minFFTSize = 1024

// Config holds response computation parameters.
type Config struct {
	// FFTSize is the transform length. Zero selects
	// max(1024, nextPowerOf2(8*len(kernel))).
	FFTSize int
}

// Option mutates a Config.
type Option func(*Config)

// WithFFTSize sets the transform length. It must be a power of two not
// smaller than the kernel; Compute reports ErrInvalidFFTSize otherwise.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = n
	}
}

func applyOptions(opts ...Option) Config {
	var cfg Config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func defaultFFTSize(taps int) int {
	return max(minFFTSize, nextPowerOf2(8*taps))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
