package engine

import (
	"context"

	"github.com/Veraticus/signal-companion/internal/model"
)

// Classifier defines the contract for matching an expression against a template chain.
type Classifier interface {
	Classify(ctx context.Context, expr string) (model.TemplateMatch, error)
}

// Calculator is the set of operations offered to presentation layers.
type Calculator interface {
	AnalyzeProperties(ctx context.Context, equation string) (model.PropertyReport, error)
	ForwardTransform(ctx context.Context, expression string) (model.TransformResult, error)
	InverseTransform(ctx context.Context, expression string, causal bool) (model.InverseResult, error)
	Convolve(ctx context.Context, signalX, signalH string) (model.ConvolutionResult, error)
	AnalyzeLTI(ctx context.Context, transferFunction string) (model.LTIAnalysis, error)
	SignalLibrary(ctx context.Context) ([]model.SignalLibraryEntry, error)
}
