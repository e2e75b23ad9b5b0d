// Package model defines the core data structures for the signal companion.
package model

// Domain identifies which template chain an expression is matched against.
type Domain string

// Domain constants.
const (
	DomainTime     Domain = "time"
	DomainLaplace  Domain = "laplace"
	DomainTransfer Domain = "transfer"
)

// TemplateID names a canonical expression template.
type TemplateID string

// Template identifiers shared by the classifier and the transform table.
const (
	TemplateExpDecay         TemplateID = "exp_decay"
	TemplateUnitStep         TemplateID = "unit_step"
	TemplateRamp             TemplateID = "ramp"
	TemplateSine             TemplateID = "sine"
	TemplateCosine           TemplateID = "cosine"
	TemplateFirstOrderPole   TemplateID = "first_order_pole"
	TemplateIntegrator       TemplateID = "integrator"
	TemplateDoubleIntegrator TemplateID = "double_integrator"
	TemplateCosinePair       TemplateID = "cosine_pair"
	TemplateSinePair         TemplateID = "sine_pair"
	TemplatePartialFraction  TemplateID = "partial_fraction"
	TemplateDifferentiator   TemplateID = "differentiator"
	TemplateSecondOrder      TemplateID = "second_order"
)

// MatchKind tells whether an expression hit a template or fell through to the fallback.
type MatchKind string

// Match kinds.
const (
	KindRecognized   MatchKind = "recognized"
	KindUnrecognized MatchKind = "unrecognized"
)

// TemplateMatch is the outcome of a single classification call.
// It is built per call and never cached.
type TemplateMatch struct {
	Template   TemplateID `json:"template"`
	Kind       MatchKind  `json:"kind"`
	Parameters []float64  `json:"parameters,omitempty"`
	// Defaulted is set when the template matched structurally but its
	// numeric parameter could not be extracted.
	Defaulted bool `json:"defaulted,omitempty"`
}

// Recognized reports whether the match came from a template rather than the fallback.
func (m TemplateMatch) Recognized() bool {
	return m.Kind == KindRecognized
}

// Param returns the i-th extracted parameter, or def when absent.
func (m TemplateMatch) Param(i int, def float64) float64 {
	if i < 0 || i >= len(m.Parameters) {
		return def
	}
	return m.Parameters[i]
}
