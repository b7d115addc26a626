package analyzer

import (
	"context"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-reactive/frame"
	"github.com/cwbudde/algo-reactive/window"
)

// Analyzer converts mono PCM into spectral frames at a fixed frame rate.
//
// Scratch buffers are reused across frames, so one Analyzer must not be used
// concurrently. Analysis itself is a pure function of the input buffer and
// configuration.
type Analyzer struct {
	cfg    Config
	plan   *algofft.Plan[complex128]
	coeffs []float64

	windowed []float64
	in       []complex128
	out      []complex128
	re       []float64
	im       []float64
	mags     []float64
}

// New returns an Analyzer for the given options.
func New(opts ...Option) (*Analyzer, error) {
	cfg := applyOptions(opts)

	err := validateConfig(cfg)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer fft plan: %w", err)
	}

	n := cfg.FFTSize
	bins := n / 2

	return &Analyzer{
		cfg:      cfg,
		plan:     plan,
		coeffs:   window.Generate(cfg.Window, n),
		windowed: make([]float64, n),
		in:       make([]complex128, n),
		out:      make([]complex128, n),
		re:       make([]float64, bins),
		im:       make([]float64, bins),
		mags:     make([]float64, bins),
	}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// FrameCount returns the number of frames Analyze will produce for a buffer
// of the given length.
func (a *Analyzer) FrameCount(bufferLen int) int {
	startSample := int(math.Round(a.cfg.StartTime * a.cfg.SampleRate))
	available := bufferLen - startSample
	if available <= 0 {
		return 0
	}

	availableSeconds := float64(available) / a.cfg.SampleRate
	if a.cfg.Duration > 0 && a.cfg.Duration < availableSeconds {
		availableSeconds = a.cfg.Duration
	}

	return int(math.Ceil(availableSeconds * a.cfg.FPS))
}

// Analyze produces one spectral frame per output frame index for the mono
// PCM buffer. Samples are expected in [-1, 1].
//
// ctx is checked between frame computations so long whole-track analyses can
// be cancelled cooperatively.
func (a *Analyzer) Analyze(ctx context.Context, pcm []float64) ([]*frame.Frame, error) {
	count := a.FrameCount(len(pcm))
	frames := make([]*frame.Frame, 0, count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := a.frameAt(pcm, i)
		if err != nil {
			return nil, err
		}

		frames = append(frames, f)
	}

	return frames, nil
}

// Analyze is a convenience wrapper constructing a one-shot Analyzer.
func Analyze(ctx context.Context, pcm []float64, opts ...Option) ([]*frame.Frame, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return a.Analyze(ctx, pcm)
}

func (a *Analyzer) frameAt(pcm []float64, index int) (*frame.Frame, error) {
	cfg := a.cfg
	n := cfg.FFTSize

	samplesPerFrame := cfg.SampleRate / cfg.FPS
	startSample := int(math.Round(cfg.StartTime*cfg.SampleRate)) +
		int(math.Round(float64(index)*samplesPerFrame))
	sliceLen := int(math.Round(samplesPerFrame))

	// Zero-pad or truncate the frame's slice to the FFT size.
	copyLen := sliceLen
	if copyLen > n {
		copyLen = n
	}
	if startSample+copyLen > len(pcm) {
		copyLen = len(pcm) - startSample
	}

	for i := range a.windowed {
		a.windowed[i] = 0
	}
	if copyLen > 0 {
		copy(a.windowed, pcm[startSample:startSample+copyLen])
	}

	err := window.ApplyCoefficients(a.windowed, a.coeffs)
	if err != nil {
		return nil, err
	}

	for i, v := range a.windowed {
		a.in[i] = complex(v, 0)
	}

	err = a.plan.Forward(a.out, a.in)
	if err != nil {
		return nil, fmt.Errorf("analyzer fft forward: %w", err)
	}

	bins := n / 2
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Magnitude(a.mags, a.re, a.im)

	f := &frame.Frame{
		FrequencyData:  make([]byte, bins),
		TimeDomainData: make([]byte, n),
		SampleRate:     cfg.SampleRate,
		FFTSize:        n,
		Time:           cfg.StartTime + float64(index)/cfg.FPS,
	}

	dbRange := cfg.MaxDecibels - cfg.MinDecibels
	invN := 1 / float64(n)
	for i := 0; i < bins; i++ {
		db := magnitudeToDB(a.mags[i] * invN)
		if db < cfg.MinDecibels {
			db = cfg.MinDecibels
		}
		if db > cfg.MaxDecibels {
			db = cfg.MaxDecibels
		}

		f.FrequencyData[i] = byte(math.Round((db - cfg.MinDecibels) / dbRange * 255))
	}

	for i, v := range a.windowed {
		f.TimeDomainData[i] = sampleToByte(v)
	}

	return f, nil
}

// magnitudeToDB converts a normalized linear magnitude to decibels.
// Zero magnitude maps to -Inf, which callers clamp to the configured floor.
func magnitudeToDB(mag float64) float64 {
	if mag <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(mag)
}

// sampleToByte rescales a sample from [-1, 1] to [0, 255].
func sampleToByte(v float64) byte {
	scaled := math.Round((v + 1) / 2 * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return byte(scaled)
}
