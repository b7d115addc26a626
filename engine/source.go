package engine

import (
	"context"
	"errors"

	"github.com/cwbudde/algo-reactive/frame"
)

// ErrEndOfStream is returned by a frame source once no further frames exist.
var ErrEndOfStream = errors.New("end of frame stream")

// Source supplies one spectral frame per render tick. A live hardware
// analyzer and a precomputed offline analysis implement the same interface,
// which is what lets previews and exports share the evaluation path.
type Source interface {
	NextFrame(ctx context.Context) (*frame.Frame, error)
}

// SourceFunc adapts a function to the Source interface, for live analyzers.
type SourceFunc func(ctx context.Context) (*frame.Frame, error)

// NextFrame calls fn.
func (fn SourceFunc) NextFrame(ctx context.Context) (*frame.Frame, error) {
	return fn(ctx)
}

// OfflineSource replays precomputed frames in order, for frame-accurate
// non-real-time export.
type OfflineSource struct {
	frames []*frame.Frame
	index  int
}

// NewOfflineSource returns a source over precomputed frames.
func NewOfflineSource(frames []*frame.Frame) *OfflineSource {
	return &OfflineSource{frames: frames}
}

// NextFrame returns the next frame, or ErrEndOfStream when exhausted.
func (s *OfflineSource) NextFrame(ctx context.Context) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.index >= len(s.frames) {
		return nil, ErrEndOfStream
	}

	f := s.frames[s.index]
	s.index++
	return f, nil
}

// Len returns the total frame count.
func (s *OfflineSource) Len() int { return len(s.frames) }

// Rewind restarts playback from the first frame.
func (s *OfflineSource) Rewind() { s.index = 0 }
