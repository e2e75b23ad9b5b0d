package classification

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/model"
)

const number = `(\d+(?:\.\d+)?)`

// ForwardTemplates returns the time-domain chain used by the forward transform.
// The bare unit step comes last, so t*u(t), sin(t)*u(t) and cos(t)*u(t) reach
// their own templates instead of 1/s.
func ForwardTemplates() ([]Template, Template) {
	expDecay := Template{
		ID:       model.TemplateExpDecay,
		Name:     "Decaying exponential",
		Contains: []string{"exp(-"},
		Extract:  `exp\(-` + number + `\*t\)`,
		Defaults: []float64{2},
	}
	return []Template{
		expDecay,
		{
			ID:       model.TemplateRamp,
			Name:     "Ramp",
			Contains: []string{"t*u(t)"},
		},
		{
			ID:       model.TemplateSine,
			Name:     "Sine",
			Contains: []string{"sin"},
		},
		{
			ID:       model.TemplateCosine,
			Name:     "Cosine",
			Contains: []string{"cos"},
		},
		{
			ID:       model.TemplateUnitStep,
			Name:     "Unit step",
			Contains: []string{"u(t)"},
		},
	}, expDecay
}

// InverseTemplates returns the s-domain chain used by the inverse transform.
func InverseTemplates() ([]Template, Template) {
	firstOrder := Template{
		ID:       model.TemplateFirstOrderPole,
		Name:     "First-order pole",
		Contains: []string{"1/(s+"},
		Extract:  `1/\(s\+` + number + `\)`,
		Defaults: []float64{2},
	}
	return []Template{
		firstOrder,
		{
			ID:     model.TemplateIntegrator,
			Name:   "Integrator",
			Equals: "1/s",
		},
		{
			ID:       model.TemplateDoubleIntegrator,
			Name:     "Double integrator",
			Contains: []string{"1/s^2"},
		},
		{
			ID:       model.TemplateCosinePair,
			Name:     "Cosine pair",
			Contains: []string{"s/(s^2+"},
			Extract:  `s/\(s\^2\+` + number + `\)`,
			Defaults: []float64{1},
		},
		{
			ID:       model.TemplateSinePair,
			Name:     "Sine pair",
			Contains: []string{"1/(s^2+"},
			Extract:  `1/\(s\^2\+` + number + `\)`,
			Defaults: []float64{1},
		},
		{
			ID:       model.TemplatePartialFraction,
			Name:     "Partial fraction",
			Contains: []string{"(", "/"},
		},
	}, firstOrder
}

// TransferTemplates returns the chain used by LTI analysis.
func TransferTemplates() ([]Template, Template) {
	firstOrder := Template{
		ID:       model.TemplateFirstOrderPole,
		Name:     "First-order pole",
		Contains: []string{"1/(s+"},
		Extract:  `1/\(s\+` + number + `\)`,
		Defaults: []float64{2},
	}
	return []Template{
		firstOrder,
		{
			ID:       model.TemplateDifferentiator,
			Name:     "Differentiator",
			Contains: []string{"s/("},
		},
		{
			ID:       model.TemplateSecondOrder,
			Name:     "Second-order",
			Contains: []string{"(s+"},
		},
		{
			ID:       model.TemplateDoubleIntegrator,
			Name:     "Double integrator",
			Contains: []string{"s^2"},
		},
	}, firstOrder
}

// Classifiers bundles the three default chains.
type Classifiers struct {
	Forward  *Classifier
	Inverse  *Classifier
	Transfer *Classifier
}

// NewDefaultClassifiers compiles the built-in chains.
func NewDefaultClassifiers() (*Classifiers, error) {
	build := func(domain model.Domain, chain func() ([]Template, Template)) (*Classifier, error) {
		templates, fallback := chain()
		c, err := NewClassifier(domain, templates, fallback)
		if err != nil {
			return nil, fmt.Errorf("building %s classifier: %w", domain, err)
		}
		return c, nil
	}

	forward, err := build(model.DomainTime, ForwardTemplates)
	if err != nil {
		return nil, err
	}
	inverse, err := build(model.DomainLaplace, InverseTemplates)
	if err != nil {
		return nil, err
	}
	transfer, err := build(model.DomainTransfer, TransferTemplates)
	if err != nil {
		return nil, err
	}

	return &Classifiers{Forward: forward, Inverse: inverse, Transfer: transfer}, nil
}
