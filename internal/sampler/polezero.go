package sampler

import (
	"github.com/Veraticus/signal-companion/internal/model"
)

// AxisExtent is the half-length of the reference axes drawn on a pole-zero plot.
const AxisExtent = 10

// PoleZeroPlot builds the traces for a pole-zero map: zero markers, pole
// markers and the two reference axes.
func PoleZeroPlot(poles, zeros []float64) []model.Trace {
	return []model.Trace{
		{
			Name:  "Zeros",
			Mode:  model.TraceMarkers,
			Curve: onRealAxis(zeros),
		},
		{
			Name:  "Poles",
			Mode:  model.TraceMarkers,
			Curve: onRealAxis(poles),
		},
		{
			Mode:      model.TraceLines,
			Curve:     model.SampledCurve{X: []float64{-AxisExtent, AxisExtent}, Y: []float64{0, 0}},
			Reference: true,
		},
		{
			Mode:      model.TraceLines,
			Curve:     model.SampledCurve{X: []float64{0, 0}, Y: []float64{-AxisExtent, AxisExtent}},
			Reference: true,
		},
	}
}

func onRealAxis(values []float64) model.SampledCurve {
	x := append([]float64{}, values...)
	return model.SampledCurve{X: x, Y: make([]float64, len(x))}
}
