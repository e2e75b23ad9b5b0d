package sampler

import (
	"math"

	"github.com/Veraticus/signal-companion/internal/model"
)

// impulseBaselineGap hides the baseline near the origin where the impulse marker sits.
const impulseBaselineGap = 0.1

func unitStep(t float64) float64 {
	if t >= 0 {
		return 1
	}
	return 0
}

// SignalLibrary samples the canonical signals over the library grid.
func SignalLibrary() []model.SignalLibraryEntry {
	return []model.SignalLibraryEntry{
		{
			Key:            "unitStep",
			Name:           "Unit Step",
			MathExpression: "u(t) = { 0, t < 0; 1, t ≥ 0 }",
			Traces: []model.Trace{{
				Name:  "Unit Step",
				Mode:  model.TraceLines,
				Curve: LibraryGrid.Curve(unitStep),
			}},
		},
		{
			Key:            "unitImpulse",
			Name:           "Unit Impulse",
			MathExpression: "δ(t) = 0 for t ≠ 0, ∫δ(t)dt = 1",
			Traces: []model.Trace{
				{
					Name:  "Unit Impulse",
					Mode:  model.TraceMarkers,
					Curve: model.SampledCurve{X: []float64{0}, Y: []float64{1}},
				},
				{
					Mode:  model.TraceLines,
					Curve: impulseBaseline(),
				},
			},
		},
		{
			Key:            "sinusoidal",
			Name:           "Sinusoidal",
			MathExpression: "sin(2πt)",
			Traces: []model.Trace{{
				Name:  "Sinusoidal",
				Mode:  model.TraceLines,
				Curve: LibraryGrid.Curve(func(t float64) float64 { return math.Sin(2 * math.Pi * t) }),
			}},
		},
		{
			Key:            "exponential",
			Name:           "Exponential Decay",
			MathExpression: "e^(-t)·u(t)",
			Traces: []model.Trace{{
				Name:  "Exponential Decay",
				Mode:  model.TraceLines,
				Curve: LibraryGrid.Curve(func(t float64) float64 { return math.Exp(-t) * unitStep(t) }),
			}},
		},
		{
			Key:            "ramp",
			Name:           "Ramp",
			MathExpression: "r(t) = { 0, t < 0; t, t ≥ 0 }",
			Traces: []model.Trace{{
				Name:  "Ramp",
				Mode:  model.TraceLines,
				Curve: LibraryGrid.Curve(func(t float64) float64 { return t * unitStep(t) }),
			}},
		},
	}
}

func impulseBaseline() model.SampledCurve {
	var x []float64
	for _, t := range LibraryGrid.Values() {
		if math.Abs(t) > impulseBaselineGap {
			x = append(x, t)
		}
	}
	return model.SampledCurve{X: x, Y: make([]float64, len(x))}
}
