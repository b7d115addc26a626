package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks analyzer configuration errors.
	ErrInvalidConfig = errors.New("invalid analyzer configuration")
)

func validateConfig(cfg Config) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, cfg.SampleRate)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: fps must be > 0: %f", ErrInvalidConfig, cfg.FPS)
	}
	if cfg.FFTSize <= 0 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return fmt.Errorf("%w: fft size must be a power of two: %d", ErrInvalidConfig, cfg.FFTSize)
	}
	if cfg.MinDecibels >= cfg.MaxDecibels {
		return fmt.Errorf("%w: min decibels must be below max: min=%f max=%f", ErrInvalidConfig, cfg.MinDecibels, cfg.MaxDecibels)
	}
	if cfg.StartTime < 0 {
		return fmt.Errorf("%w: start time must be >= 0: %f", ErrInvalidConfig, cfg.StartTime)
	}
	return nil
}
