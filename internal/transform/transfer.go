package transform

import (
	"math"

	"github.com/Veraticus/signal-companion/internal/model"
)

// TransferEntry is the canned pole-zero description of a transfer function.
type TransferEntry struct {
	Poles  []float64
	Zeros  []float64
	DCGain float64
}

// Transfer resolves an LTI match to its poles, zeros and DC gain.
// Unrecognized matches resolve to a single pole at -2 with gain 0.5.
func Transfer(match model.TemplateMatch) TransferEntry {
	if !match.Recognized() {
		return TransferEntry{Poles: []float64{-2}, Zeros: []float64{}, DCGain: 0.5}
	}

	switch match.Template {
	case model.TemplateFirstOrderPole:
		a := match.Param(0, 2)
		gain := math.Inf(1)
		if a != 0 {
			gain = 1 / a
		}
		return TransferEntry{Poles: []float64{-a}, Zeros: []float64{}, DCGain: gain}
	case model.TemplateDifferentiator:
		return TransferEntry{Poles: []float64{-2}, Zeros: []float64{0}, DCGain: 0}
	case model.TemplateSecondOrder:
		return TransferEntry{Poles: []float64{-1, -2}, Zeros: []float64{-3}, DCGain: 0.33}
	case model.TemplateDoubleIntegrator:
		return TransferEntry{Poles: []float64{0, 0}, Zeros: []float64{}, DCGain: 0}
	default:
		return TransferEntry{Poles: []float64{-2}, Zeros: []float64{}, DCGain: 0.5}
	}
}

// Stability classifies a system from its poles: any pole in the right half
// plane is unstable, any pole at the origin is marginally stable.
func Stability(poles []float64) model.Stability {
	marginal := false
	for _, p := range poles {
		if p > 0 {
			return model.StabilityUnstable
		}
		if p == 0 {
			marginal = true
		}
	}
	if marginal {
		return model.StabilityMarginallyStable
	}
	return model.StabilityStable
}

// Order reports second order for two or more poles.
func Order(poles []float64) model.SystemOrder {
	if len(poles) >= 2 {
		return model.OrderSecond
	}
	return model.OrderFirst
}
