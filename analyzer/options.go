package analyzer

import "github.com/cwbudde/algo-reactive/window"

// Config holds offline analysis settings.
type Config struct {
	SampleRate  float64
	FPS         float64
	FFTSize     int
	Window      window.Type
	StartTime   float64
	Duration    float64 // <= 0 analyzes to the end of the buffer
	MinDecibels float64
	MaxDecibels float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns analyzer defaults matching live analyzer behavior.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		FPS:         60,
		FFTSize:     2048,
		Window:      window.TypeHann,
		MinDecibels: -90,
		MaxDecibels: -10,
	}
}

// WithSampleRate sets the PCM sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithFPS sets the output frame rate.
func WithFPS(fps float64) Option {
	return func(cfg *Config) {
		cfg.FPS = fps
	}
}

// WithFFTSize sets the FFT length. It must be a power of two.
func WithFFTSize(fftSize int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = fftSize
	}
}

// WithWindowType selects the analysis window shape.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithRange restricts analysis to [startTime, startTime+duration] seconds.
// A non-positive duration analyzes to the end of the buffer.
func WithRange(startTime, duration float64) Option {
	return func(cfg *Config) {
		cfg.StartTime = startTime
		cfg.Duration = duration
	}
}

// WithDecibelRange sets the magnitude clamp range mapped onto bytes.
func WithDecibelRange(minDB, maxDB float64) Option {
	return func(cfg *Config) {
		cfg.MinDecibels = minDB
		cfg.MaxDecibels = maxDB
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
