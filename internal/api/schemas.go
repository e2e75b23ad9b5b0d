package api

import (
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/model"
)

// PropertyAnalysisRequest is the body of POST /api/v1/properties/analyze.
type PropertyAnalysisRequest struct {
	EquationStr string `json:"equation_str" jsonschema:"required,description=System equation such as y(t) = 2*x(t) + 1"`
}

// LaplaceTransformRequest is the body of POST /api/v1/laplace/transform.
type LaplaceTransformRequest struct {
	ExpressionT string `json:"expression_t" jsonschema:"required,description=Time-domain expression such as exp(-2*t)*u(t)"`
}

// InverseLaplaceRequest is the body of POST /api/v1/laplace/inverse.
type InverseLaplaceRequest struct {
	IsCausal    *bool  `json:"is_causal,omitempty" jsonschema:"description=Keep the unit step factors (default true)"`
	ExpressionS string `json:"expression_s" jsonschema:"required,description=s-domain expression such as 1/(s+2)"`
}

// Causal returns is_causal, defaulting to true.
func (r InverseLaplaceRequest) Causal() bool {
	return r.IsCausal == nil || *r.IsCausal
}

// ConvolutionRequest is the body of POST /api/v1/convolution/calculate.
type ConvolutionRequest struct {
	SignalX string `json:"signal_x" jsonschema:"required"`
	SignalH string `json:"signal_h" jsonschema:"required"`
}

// LTIAnalysisRequest is the body of POST /api/v1/lti/analyze.
type LTIAnalysisRequest struct {
	TransferFunction string `json:"transfer_function" jsonschema:"required,description=Transfer function such as 1/(s+2)"`
}

// Explanation carries the reason for a verdict, as a key and in the caller's language.
type Explanation struct {
	ReasonKey string `json:"reason_key"`
	Reason    string `json:"reason"`
}

// LinearityResult is the linearity verdict.
type LinearityResult struct {
	Explanation
	IsLinear bool `json:"is_linear"`
}

// CausalityResult is the causality verdict.
type CausalityResult struct {
	Explanation
	IsCausal bool `json:"is_causal"`
}

// StabilityResult is the stability verdict.
type StabilityResult struct {
	Explanation
	IsStable bool `json:"is_stable"`
}

// MemoryResult is the memory verdict.
type MemoryResult struct {
	Explanation
	HasMemory bool `json:"has_memory"`
}

// TimeInvarianceResult is the time invariance verdict.
type TimeInvarianceResult struct {
	Explanation
	IsInvariant bool `json:"is_invariant"`
}

// PropertyAnalysisResponse holds the five verdicts.
type PropertyAnalysisResponse struct {
	Linearity      LinearityResult      `json:"linearity"`
	Causality      CausalityResult      `json:"causality"`
	Stability      StabilityResult      `json:"stability"`
	Memory         MemoryResult         `json:"memory"`
	TimeInvariance TimeInvarianceResult `json:"time_invariance"`
}

// LaplaceTransformResponse is the forward transform result.
type LaplaceTransformResponse struct {
	InputT   string          `json:"input_t"`
	OutputS  string          `json:"output_s"`
	ROC      string          `json:"roc"`
	Kind     model.MatchKind `json:"kind"`
	Template string          `json:"template"`
	Poles    []float64       `json:"poles"`
	Zeros    []float64       `json:"zeros"`
}

// InverseStep is one labelled step of an inverse transform.
type InverseStep struct {
	Step  string `json:"step"`
	Value string `json:"value"`
}

// InverseLaplaceResponse is the inverse transform result.
type InverseLaplaceResponse struct {
	InputS   string          `json:"input_s"`
	OutputT  string          `json:"output_t"`
	Kind     model.MatchKind `json:"kind"`
	Template string          `json:"template"`
	Steps    []InverseStep   `json:"steps"`
	IsCausal bool            `json:"is_causal"`
}

// ConvolutionResponse is the convolution result.
type ConvolutionResponse struct {
	SignalX        string    `json:"signal_x"`
	SignalH        string    `json:"signal_h"`
	SymbolicResult string    `json:"symbolic_result"`
	TimeArray      []float64 `json:"time_array"`
	OutputYArray   []float64 `json:"output_y_array"`
	FrameCount     int       `json:"frame_count"`
}

// FrequencyResponse is magnitude (dB) and phase (degrees) over frequency.
type FrequencyResponse struct {
	Frequencies []float64 `json:"frequencies"`
	Magnitude   []float64 `json:"magnitude"`
	Phase       []float64 `json:"phase"`
}

// TimeResponse is a response sampled over time.
type TimeResponse struct {
	Time     []float64 `json:"time"`
	Response []float64 `json:"response"`
}

// LTIAnalysisResponse is the LTI analysis result. DCGain is null for a
// pole at the origin.
type LTIAnalysisResponse struct {
	DCGain            *float64          `json:"dcGain"`
	TransferFunction  string            `json:"transfer_function"`
	Stability         model.Stability   `json:"stability"`
	Type              model.SystemOrder `json:"type"`
	Kind              model.MatchKind   `json:"kind"`
	Poles             []float64         `json:"poles"`
	Zeros             []float64         `json:"zeros"`
	FrequencyResponse FrequencyResponse `json:"frequencyResponse"`
	StepResponse      TimeResponse      `json:"stepResponse"`
	ImpulseResponse   TimeResponse      `json:"impulseResponse"`
}

// TraceResponse is one plot series.
type TraceResponse struct {
	Name string          `json:"name,omitempty"`
	Mode model.TraceMode `json:"mode"`
	X    []float64       `json:"x"`
	Y    []float64       `json:"y"`
}

// SignalResponse is one signal library entry.
type SignalResponse struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	MathExpression string          `json:"math_expression"`
	Traces         []TraceResponse `json:"traces"`
}

// FrameMessage is one websocket frame of a convolution animation.
type FrameMessage struct {
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Frame   int       `json:"frame"`
	Total   int       `json:"total"`
	Playing bool      `json:"playing"`
}

// ControlMessage is a playback command sent by a websocket client.
type ControlMessage struct {
	Action string `json:"action" jsonschema:"required,enum=toggle,enum=play,enum=pause,enum=reset"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func explain(lang locale.Language, v model.PropertyVerdict) Explanation {
	return Explanation{ReasonKey: v.ExplanationKey, Reason: locale.Translate(lang, v.ExplanationKey)}
}

func newPropertyResponse(report model.PropertyReport, lang locale.Language) PropertyAnalysisResponse {
	var resp PropertyAnalysisResponse
	for _, v := range report {
		switch v.Property {
		case model.PropertyLinearity:
			resp.Linearity = LinearityResult{Explanation: explain(lang, v), IsLinear: v.Holds}
		case model.PropertyCausality:
			resp.Causality = CausalityResult{Explanation: explain(lang, v), IsCausal: v.Holds}
		case model.PropertyStability:
			resp.Stability = StabilityResult{Explanation: explain(lang, v), IsStable: v.Holds}
		case model.PropertyMemory:
			resp.Memory = MemoryResult{Explanation: explain(lang, v), HasMemory: v.Holds}
		case model.PropertyTimeInvariance:
			resp.TimeInvariance = TimeInvarianceResult{Explanation: explain(lang, v), IsInvariant: v.Holds}
		}
	}
	return resp
}

func newLaplaceResponse(r model.TransformResult) LaplaceTransformResponse {
	return LaplaceTransformResponse{
		InputT:   r.Input,
		OutputS:  r.Symbolic,
		ROC:      r.ROC,
		Kind:     r.Kind,
		Template: string(r.Template),
		Poles:    r.Poles,
		Zeros:    r.Zeros,
	}
}

func newInverseResponse(r model.InverseResult) InverseLaplaceResponse {
	steps := make([]InverseStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, InverseStep{Step: s.Label, Value: s.Value})
	}
	return InverseLaplaceResponse{
		InputS:   r.Input,
		OutputT:  r.TimeExpression,
		Kind:     r.Kind,
		Template: string(r.Template),
		Steps:    steps,
		IsCausal: r.Causal,
	}
}

func newConvolutionResponse(r model.ConvolutionResult) ConvolutionResponse {
	return ConvolutionResponse{
		SignalX:        r.SignalX,
		SignalH:        r.SignalH,
		SymbolicResult: r.Symbolic,
		TimeArray:      r.Curve.X,
		OutputYArray:   r.Curve.Y,
		FrameCount:     r.Frames.Len(),
	}
}

func newLTIResponse(a model.LTIAnalysis) LTIAnalysisResponse {
	return LTIAnalysisResponse{
		DCGain:           a.FiniteDCGain(),
		TransferFunction: a.TransferFunction,
		Stability:        a.Stability,
		Type:             a.Order,
		Kind:             a.Kind,
		Poles:            a.Poles,
		Zeros:            a.Zeros,
		FrequencyResponse: FrequencyResponse{
			Frequencies: a.FrequencyResponse.Frequencies,
			Magnitude:   a.FrequencyResponse.Magnitude,
			Phase:       a.FrequencyResponse.Phase,
		},
		StepResponse:    TimeResponse{Time: a.StepResponse.X, Response: a.StepResponse.Y},
		ImpulseResponse: TimeResponse{Time: a.ImpulseResponse.X, Response: a.ImpulseResponse.Y},
	}
}

func newSignalResponses(entries []model.SignalLibraryEntry) []SignalResponse {
	out := make([]SignalResponse, 0, len(entries))
	for _, e := range entries {
		traces := make([]TraceResponse, 0, len(e.Traces))
		for _, t := range e.Traces {
			traces = append(traces, TraceResponse{Name: t.Name, Mode: t.Mode, X: t.Curve.X, Y: t.Curve.Y})
		}
		out = append(out, SignalResponse{
			Key:            e.Key,
			Name:           e.Name,
			MathExpression: e.MathExpression,
			Traces:         traces,
		})
	}
	return out
}
