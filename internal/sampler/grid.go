// Package sampler evaluates closed-form responses over fixed, index-based grids.
package sampler

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Veraticus/signal-companion/internal/model"
)

// Grid describes a closed interval sampled at Points evenly spaced values.
type Grid struct {
	Lo     float64
	Hi     float64
	Points int
}

// Fixed grids used by the calculators.
var (
	LibraryGrid     = Grid{Lo: -5, Hi: 5, Points: 201}
	ConvolutionGrid = Grid{Lo: -2, Hi: 6, Points: 81}
	TimeGrid        = Grid{Lo: 0, Hi: 10, Points: 101}
	FrequencyGrid   = Grid{Lo: -3, Hi: 3, Points: 61}
)

// Values returns a fresh slice of grid points. Each point is computed from its
// index so both endpoints are exact.
func (g Grid) Values() []float64 {
	if g.Points < 2 {
		return []float64{g.Lo}
	}
	return floats.Span(make([]float64, g.Points), g.Lo, g.Hi)
}

// Step returns the spacing between adjacent points.
func (g Grid) Step() float64 {
	if g.Points < 2 {
		return 0
	}
	return (g.Hi - g.Lo) / float64(g.Points-1)
}

// Curve evaluates f at every grid point.
func (g Grid) Curve(f func(float64) float64) model.SampledCurve {
	xs := g.Values()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return model.SampledCurve{X: xs, Y: ys}
}
