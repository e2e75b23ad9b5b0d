package model

import (
	"encoding/json"
	"math"
)

// Stability classifies an LTI system from its poles.
type Stability string

// Stability values.
const (
	StabilityStable           Stability = "stable"
	StabilityUnstable         Stability = "unstable"
	StabilityMarginallyStable Stability = "marginallyStable"
)

// SystemOrder is the displayed order of an LTI system.
type SystemOrder string

// System orders.
const (
	OrderFirst  SystemOrder = "firstOrder"
	OrderSecond SystemOrder = "secondOrder"
)

// FrequencyResponse holds magnitude (dB) and phase (degrees) over a frequency grid.
type FrequencyResponse struct {
	Frequencies []float64 `json:"frequencies"`
	Magnitude   []float64 `json:"magnitude"`
	Phase       []float64 `json:"phase"`
}

// MagnitudeCurve returns magnitude against frequency.
func (f FrequencyResponse) MagnitudeCurve() SampledCurve {
	return SampledCurve{X: f.Frequencies, Y: f.Magnitude}
}

// PhaseCurve returns phase against frequency.
func (f FrequencyResponse) PhaseCurve() SampledCurve {
	return SampledCurve{X: f.Frequencies, Y: f.Phase}
}

// LTIAnalysis is the full analysis of a transfer function.
type LTIAnalysis struct {
	TransferFunction  string            `json:"transfer_function"`
	Template          TemplateID        `json:"template"`
	Kind              MatchKind         `json:"kind"`
	Stability         Stability         `json:"stability"`
	Order             SystemOrder       `json:"type"`
	Poles             []float64         `json:"poles"`
	Zeros             []float64         `json:"zeros"`
	FrequencyResponse FrequencyResponse `json:"frequency_response"`
	StepResponse      SampledCurve      `json:"step_response"`
	ImpulseResponse   SampledCurve      `json:"impulse_response"`
	PoleZero          []Trace           `json:"pole_zero"`
	// DCGain is +Inf for a pure integrator. It is encoded as dc_gain.
	DCGain    float64 `json:"-"`
	Defaulted bool    `json:"defaulted,omitempty"`
}

// FiniteDCGain returns the DC gain, or nil when it is not finite.
func (a LTIAnalysis) FiniteDCGain() *float64 {
	if math.IsInf(a.DCGain, 0) || math.IsNaN(a.DCGain) {
		return nil
	}
	g := a.DCGain
	return &g
}

// MarshalJSON writes the analysis with dc_gain, null for an infinite gain.
func (a LTIAnalysis) MarshalJSON() ([]byte, error) {
	type analysis LTIAnalysis
	return json.Marshal(struct {
		DCGain *float64 `json:"dc_gain"`
		analysis
	}{
		DCGain:   a.FiniteDCGain(),
		analysis: analysis(a),
	})
}
