package model

// TraceMode says how a trace is drawn.
type TraceMode string

// Trace modes.
const (
	TraceLines   TraceMode = "lines"
	TraceMarkers TraceMode = "markers"
)

// Trace is one drawable series of a plot.
type Trace struct {
	Name  string       `json:"name,omitempty"`
	Mode  TraceMode    `json:"mode"`
	Curve SampledCurve `json:"curve"`
	// Reference marks axis lines that carry no data.
	Reference bool `json:"reference,omitempty"`
}

// SignalLibraryEntry is one canonical signal with its plot.
type SignalLibraryEntry struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	MathExpression string  `json:"math_expression"`
	Traces         []Trace `json:"traces"`
}

// ConvolutionResult is the mock convolution of two signals with its playback frames.
type ConvolutionResult struct {
	SignalX  string       `json:"signal_x"`
	SignalH  string       `json:"signal_h"`
	Symbolic string       `json:"symbolic_result"`
	Curve    SampledCurve `json:"curve"`
	Frames   FrameSet     `json:"frames"`
}
