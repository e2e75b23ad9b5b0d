package sampler

import (
	"math"

	"github.com/Veraticus/signal-companion/internal/model"
)

const (
	// MagnitudeFloor is the smallest linear magnitude converted to dB.
	MagnitudeFloor = 1e-10
	// MagnitudeCeiling caps the linear magnitude when a pole lies on the grid.
	MagnitudeCeiling = 1e10
)

// StepResponse sums the per-pole step contributions over the time grid.
func StepResponse(poles []float64) model.SampledCurve {
	return TimeGrid.Curve(func(t float64) float64 {
		var y float64
		for _, p := range poles {
			switch {
			case p < 0:
				y += (1 / math.Abs(p)) * (1 - math.Exp(p*t))
			case p == 0:
				y += t
			default:
				y += (1 / math.Abs(p)) * (math.Exp(p*t) - 1)
			}
		}
		return y
	})
}

// ImpulseResponse sums the per-pole impulse contributions over the time grid.
// A pole at the origin contributes a unit sample at t = 0.
func ImpulseResponse(poles []float64) model.SampledCurve {
	return TimeGrid.Curve(func(t float64) float64 {
		var y float64
		for _, p := range poles {
			if p != 0 {
				y += math.Exp(p * t)
			} else if t == 0 {
				y++
			}
		}
		return y
	})
}

// Magnitude returns the linear magnitude of the pole-zero product at w,
// kept finite and within [MagnitudeFloor, MagnitudeCeiling].
func Magnitude(w float64, poles, zeros []float64) float64 {
	mag := 1.0
	for _, p := range poles {
		mag /= math.Hypot(w, p)
	}
	for _, z := range zeros {
		mag *= math.Hypot(w, z)
	}

	switch {
	case math.IsNaN(mag):
		mag = 1
	case mag > MagnitudeCeiling:
		mag = MagnitudeCeiling
	}
	return math.Max(mag, MagnitudeFloor)
}

// Phase returns the phase in degrees at w.
func Phase(w float64, poles, zeros []float64) float64 {
	var ph float64
	for _, p := range poles {
		ph -= math.Atan2(w, p)
	}
	for _, z := range zeros {
		ph += math.Atan2(w, z)
	}
	return ph * 180 / math.Pi
}

// FrequencyResponse samples magnitude in dB and phase in degrees over the frequency grid.
func FrequencyResponse(poles, zeros []float64) model.FrequencyResponse {
	ws := FrequencyGrid.Values()
	resp := model.FrequencyResponse{
		Frequencies: ws,
		Magnitude:   make([]float64, len(ws)),
		Phase:       make([]float64, len(ws)),
	}
	for i, w := range ws {
		resp.Magnitude[i] = 20 * math.Log10(Magnitude(w, poles, zeros))
		resp.Phase[i] = Phase(w, poles, zeros)
	}
	return resp
}
