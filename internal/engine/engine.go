// Package engine implements the calculation facade over the classifier,
// transform table, sampler and property evaluator.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/signal-companion/internal/classification"
	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/properties"
	"github.com/Veraticus/signal-companion/internal/sampler"
	"github.com/Veraticus/signal-companion/internal/transform"
)

// Engine runs every calculation synchronously. It holds no per-call state,
// so a single Engine may be shared between goroutines.
type Engine struct {
	forward  Classifier
	inverse  Classifier
	transfer Classifier
	frames   int
}

// Config holds configuration options for the engine.
type Config struct {
	FrameCount int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FrameCount: sampler.FrameCount,
	}
}

// New creates an engine backed by the built-in template chains.
func New() (*Engine, error) {
	classifiers, err := classification.NewDefaultClassifiers()
	if err != nil {
		return nil, fmt.Errorf("failed to build classifiers: %w", err)
	}
	return NewWithConfig(classifiers.Forward, classifiers.Inverse, classifiers.Transfer, DefaultConfig()), nil
}

// NewWithConfig creates an engine with custom classifiers and configuration.
func NewWithConfig(forward, inverse, transfer Classifier, config Config) *Engine {
	if config.FrameCount < 1 {
		config.FrameCount = sampler.FrameCount
	}
	return &Engine{
		forward:  forward,
		inverse:  inverse,
		transfer: transfer,
		frames:   config.FrameCount,
	}
}

func validate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return common.InvalidExpression(field)
	}
	return nil
}

func logMatch(ctx context.Context, op string, match model.TemplateMatch) {
	common.LogDebug(ctx, "calculation complete", common.Fields{
		"operation": op,
		"template":  match.Template,
		"kind":      match.Kind,
		"defaulted": match.Defaulted,
	})
}

// AnalyzeProperties evaluates the five system properties of a difference or
// differential equation.
func (e *Engine) AnalyzeProperties(ctx context.Context, equation string) (model.PropertyReport, error) {
	if err := validate("equation", equation); err != nil {
		return model.PropertyReport{}, err
	}
	report := properties.Evaluate(equation)
	common.LogDebug(ctx, "properties analyzed", common.Fields{"equation": equation})
	return report, nil
}

// ForwardTransform computes the Laplace transform of a time-domain expression.
func (e *Engine) ForwardTransform(ctx context.Context, expression string) (model.TransformResult, error) {
	if err := validate("expression_t", expression); err != nil {
		return model.TransformResult{}, err
	}
	match, err := e.forward.Classify(ctx, expression)
	if err != nil {
		return model.TransformResult{}, fmt.Errorf("failed to classify time expression: %w", err)
	}
	logMatch(ctx, "laplace", match)

	result := transform.Forward(expression, match)
	result.PoleZero = sampler.PoleZeroPlot(result.Poles, result.Zeros)
	return result, nil
}

// InverseTransform computes the inverse Laplace transform of an s-domain expression.
// Non-causal results drop the unit step factors.
func (e *Engine) InverseTransform(ctx context.Context, expression string, causal bool) (model.InverseResult, error) {
	if err := validate("expression_s", expression); err != nil {
		return model.InverseResult{}, err
	}
	match, err := e.inverse.Classify(ctx, expression)
	if err != nil {
		return model.InverseResult{}, fmt.Errorf("failed to classify s-domain expression: %w", err)
	}
	logMatch(ctx, "inverse", match)

	return transform.Inverse(expression, match, causal), nil
}

// Convolve returns the symbolic convolution of two signals with its sampled
// response and animation frames.
func (e *Engine) Convolve(ctx context.Context, signalX, signalH string) (model.ConvolutionResult, error) {
	if err := validate("signal_x", signalX); err != nil {
		return model.ConvolutionResult{}, err
	}
	if err := validate("signal_h", signalH); err != nil {
		return model.ConvolutionResult{}, err
	}

	curve := sampler.ConvolutionCurve()
	result := model.ConvolutionResult{
		SignalX:  signalX,
		SignalH:  signalH,
		Symbolic: Symbolic(signalX, signalH),
		Curve:    curve,
		Frames:   sampler.Frames(curve, e.frames),
	}
	common.LogDebug(ctx, "convolution computed", common.Fields{
		"signal_x": signalX,
		"signal_h": signalH,
		"frames":   result.Frames.Len(),
	})
	return result, nil
}

// Symbolic renders the convolution of two signals.
func Symbolic(signalX, signalH string) string {
	return fmt.Sprintf("y(t) = (%s) * (%s)", strings.TrimSpace(signalX), strings.TrimSpace(signalH))
}

// AnalyzeLTI reports poles, zeros, stability, order, DC gain and the sampled
// responses of a transfer function.
func (e *Engine) AnalyzeLTI(ctx context.Context, transferFunction string) (model.LTIAnalysis, error) {
	if err := validate("transfer_function", transferFunction); err != nil {
		return model.LTIAnalysis{}, err
	}
	match, err := e.transfer.Classify(ctx, transferFunction)
	if err != nil {
		return model.LTIAnalysis{}, fmt.Errorf("failed to classify transfer function: %w", err)
	}
	logMatch(ctx, "lti", match)

	entry := transform.Transfer(match)
	return model.LTIAnalysis{
		TransferFunction:  transferFunction,
		Template:          match.Template,
		Kind:              match.Kind,
		Stability:         transform.Stability(entry.Poles),
		Order:             transform.Order(entry.Poles),
		Poles:             entry.Poles,
		Zeros:             entry.Zeros,
		DCGain:            entry.DCGain,
		FrequencyResponse: sampler.FrequencyResponse(entry.Poles, entry.Zeros),
		StepResponse:      sampler.StepResponse(entry.Poles),
		ImpulseResponse:   sampler.ImpulseResponse(entry.Poles),
		PoleZero:          sampler.PoleZeroPlot(entry.Poles, entry.Zeros),
		Defaulted:         match.Defaulted,
	}, nil
}

// SignalLibrary returns the canonical signal plots.
func (e *Engine) SignalLibrary(ctx context.Context) ([]model.SignalLibraryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sampler.SignalLibrary(), nil
}
