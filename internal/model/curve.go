package model

import (
	"errors"
	"fmt"
)

// ErrCurveLength is returned when the two axes of a curve disagree in length.
var ErrCurveLength = errors.New("curve axes differ in length")

// SampledCurve is an immutable sequence of (x, y) samples.
type SampledCurve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// NewSampledCurve builds a curve, rejecting axes of different lengths.
func NewSampledCurve(x, y []float64) (SampledCurve, error) {
	if len(x) != len(y) {
		return SampledCurve{}, fmt.Errorf("%w: %d x values, %d y values", ErrCurveLength, len(x), len(y))
	}
	return SampledCurve{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (c SampledCurve) Len() int {
	return len(c.X)
}

// Prefix returns a copy of the first n samples.
func (c SampledCurve) Prefix(n int) SampledCurve {
	if n < 0 {
		n = 0
	}
	if n > c.Len() {
		n = c.Len()
	}
	x := make([]float64, n)
	y := make([]float64, n)
	copy(x, c.X[:n])
	copy(y, c.Y[:n])
	return SampledCurve{X: x, Y: y}
}

// FrameSet is an ordered set of cumulative prefixes of a curve used for playback.
// Frame i is a strict prefix of frame i+1 and the last frame is the whole curve.
type FrameSet struct {
	Frames []SampledCurve `json:"frames"`
}

// Len returns the number of frames.
func (f FrameSet) Len() int {
	return len(f.Frames)
}

// Last returns the index of the final frame, or -1 for an empty set.
func (f FrameSet) Last() int {
	return len(f.Frames) - 1
}

// Frame returns frame i, clamped to the valid range.
func (f FrameSet) Frame(i int) SampledCurve {
	if len(f.Frames) == 0 {
		return SampledCurve{}
	}
	if i < 0 {
		i = 0
	}
	if i > f.Last() {
		i = f.Last()
	}
	return f.Frames[i]
}
