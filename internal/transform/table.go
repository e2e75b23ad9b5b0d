// Package transform maps classified templates to their Laplace transform pairs.
package transform

import (
	"strconv"
	"strings"

	"github.com/Veraticus/signal-companion/internal/model"
)

// FormatNumber renders v in its shortest round-trip form, so 2 prints as "2".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ForwardEntry is one row of the forward transform table.
type ForwardEntry struct {
	Symbolic func(p []float64) string
	ROC      func(p []float64) string
	Poles    func(p []float64) []float64
	Zeros    func(p []float64) []float64
}

func constant(s string) func([]float64) string {
	return func([]float64) string { return s }
}

func fixed(values ...float64) func([]float64) []float64 {
	return func([]float64) []float64 {
		return append([]float64{}, values...)
	}
}

var forwardTable = map[model.TemplateID]ForwardEntry{
	model.TemplateExpDecay: {
		Symbolic: func(p []float64) string { return "1/(s + " + FormatNumber(p[0]) + ")" },
		ROC:      func(p []float64) string { return "Re(s) > " + FormatNumber(-p[0]) },
		Poles:    func(p []float64) []float64 { return []float64{-p[0]} },
		Zeros:    fixed(),
	},
	model.TemplateUnitStep: {
		Symbolic: constant("1/s"),
		ROC:      constant("Re(s) > 0"),
		Poles:    fixed(0),
		Zeros:    fixed(),
	},
	model.TemplateSine: {
		Symbolic: constant("1/(s^2 + 1)"),
		ROC:      constant("Re(s) > 0"),
		Poles:    fixed(0, 0),
		Zeros:    fixed(),
	},
	model.TemplateCosine: {
		Symbolic: constant("s/(s^2 + 1)"),
		ROC:      constant("Re(s) > 0"),
		Poles:    fixed(0, 0),
		Zeros:    fixed(0),
	},
	model.TemplateRamp: {
		Symbolic: constant("1/s^2"),
		ROC:      constant("Re(s) > 0"),
		Poles:    fixed(0, 0),
		Zeros:    fixed(),
	},
}

// Forward builds the forward transform for a time-domain match.
// Unknown templates resolve to the decaying exponential with a = 2.
func Forward(input string, match model.TemplateMatch) model.TransformResult {
	entry, ok := forwardTable[match.Template]
	params := match.Parameters
	if !ok {
		entry = forwardTable[model.TemplateExpDecay]
		params = nil
	}
	if len(params) == 0 {
		params = []float64{2}
	}

	return model.TransformResult{
		Input:     input,
		Symbolic:  entry.Symbolic(params),
		ROC:       entry.ROC(params),
		Template:  match.Template,
		Kind:      match.Kind,
		Poles:     entry.Poles(params),
		Zeros:     entry.Zeros(params),
		Defaulted: match.Defaulted,
	}
}

// InverseEntry is one row of the inverse transform table.
type InverseEntry struct {
	Expression func(p []float64) string
	Steps      func(p []float64, expr string) []model.InverseStep
	Default    float64
}

func step(label, value string) model.InverseStep {
	return model.InverseStep{Label: label, Value: value}
}

const partialFractionExpr = "(3/2)*u(t) - (1/2)*exp(-2*t)*u(t)"

var inverseTable = map[model.TemplateID]InverseEntry{
	model.TemplateFirstOrderPole: {
		Default: 2,
		Expression: func(p []float64) string {
			return "exp(-" + FormatNumber(p[0]) + "*t)*u(t)"
		},
		Steps: func(p []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Identify form", "1/(s + a)"),
				step("Lookup table", "exp(-at)·u(t)"),
				step("Substitute a", "a = "+FormatNumber(p[0])),
				step("Final result", expr),
			}
		},
	},
	model.TemplateIntegrator: {
		Expression: constant("u(t)"),
		Steps: func(_ []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Identify form", "1/s"),
				step("Lookup table", "u(t)"),
				step("Final result", expr),
			}
		},
	},
	model.TemplateDoubleIntegrator: {
		Expression: constant("t*u(t)"),
		Steps: func(_ []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Identify form", "1/s²"),
				step("Lookup table", "t·u(t)"),
				step("Final result", expr),
			}
		},
	},
	model.TemplateCosinePair: {
		Default: 1,
		Expression: func(p []float64) string {
			return "cos(" + FormatNumber(p[0]) + "*t)*u(t)"
		},
		Steps: func(p []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Identify form", "s/(s² + ω²)"),
				step("Lookup table", "cos(ωt)·u(t)"),
				step("Substitute ω", "ω = "+FormatNumber(p[0])),
				step("Final result", expr),
			}
		},
	},
	model.TemplateSinePair: {
		Default: 1,
		Expression: func(p []float64) string {
			w := FormatNumber(p[0])
			return "(1/" + w + ")*sin(" + w + "*t)*u(t)"
		},
		Steps: func(p []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Identify form", "1/(s² + ω²)"),
				step("Lookup table", "(1/ω)·sin(ωt)·u(t)"),
				step("Substitute ω", "ω = "+FormatNumber(p[0])),
				step("Final result", expr),
			}
		},
	},
	model.TemplatePartialFraction: {
		Expression: constant(partialFractionExpr),
		Steps: func(_ []float64, expr string) []model.InverseStep {
			return []model.InverseStep{
				step("Partial fraction expansion", "A/s + B/(s+2)"),
				step("Solve for A", "A = 3/2"),
				step("Solve for B", "B = -1/2"),
				step("Inverse transform of A/s", "A·u(t)"),
				step("Inverse transform of B/(s+2)", "B·exp(-2t)·u(t)"),
				step("Combine results", expr),
			}
		},
	},
}

// StripCausal removes every "*u(t)" factor from a time expression.
func StripCausal(expr string) string {
	return strings.ReplaceAll(expr, "*u(t)", "")
}

// Inverse builds the inverse transform for an s-domain match. Defaulted and
// unrecognized matches carry the default expression with no steps.
func Inverse(input string, match model.TemplateMatch, causal bool) model.InverseResult {
	entry, ok := inverseTable[match.Template]
	if !ok {
		entry = inverseTable[model.TemplateFirstOrderPole]
	}
	params := []float64{match.Param(0, entry.Default)}

	expr := entry.Expression(params)
	if !causal {
		expr = StripCausal(expr)
	}

	steps := []model.InverseStep{}
	if ok && match.Recognized() && !match.Defaulted {
		steps = entry.Steps(params, expr)
	}

	return model.InverseResult{
		Input:          input,
		TimeExpression: expr,
		Template:       match.Template,
		Kind:           match.Kind,
		Steps:          steps,
		Causal:         causal,
		Defaulted:      match.Defaulted,
	}
}
