package sampler

import (
	"github.com/Veraticus/signal-companion/internal/model"
)

// FrameCount is the number of intervals a convolution animation is split into.
// A frame set therefore holds FrameCount+1 frames.
const FrameCount = 50

// Triangle is the mock convolution output: a unit-slope triangle on [0, 4].
func Triangle(t float64) float64 {
	switch {
	case t >= 0 && t <= 2:
		return t
	case t > 2 && t <= 4:
		return 4 - t
	default:
		return 0
	}
}

// ConvolutionCurve samples the triangular response over the convolution grid.
func ConvolutionCurve() model.SampledCurve {
	return ConvolutionGrid.Curve(Triangle)
}

// Frames slices curve into n+1 cumulative prefixes. Frame i holds
// floor(len*i/n) samples, so frame 0 is empty and frame n is the whole curve.
func Frames(curve model.SampledCurve, n int) model.FrameSet {
	if n < 1 {
		n = 1
	}
	frames := make([]model.SampledCurve, 0, n+1)
	for i := 0; i <= n; i++ {
		frames = append(frames, curve.Prefix(curve.Len()*i/n))
	}
	return model.FrameSet{Frames: frames}
}
