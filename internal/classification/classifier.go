// Package classification matches signal expressions against ordered template chains.
package classification

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/model"
)

// Template describes one entry of a classification chain.
type Template struct {
	ID   model.TemplateID
	Name string
	// Contains lists substrings that must all be present in the normalized input.
	Contains []string
	// Equals, when set, requires the normalized input to equal it exactly.
	Equals string
	// Extract is an optional regex whose capture groups become parameters.
	Extract  string
	Defaults []float64
}

// CompiledTemplate holds a template with its compiled extractor.
type CompiledTemplate struct {
	extractor *regexp.Regexp
	Template
}

func (ct CompiledTemplate) matches(normalized string) bool {
	if ct.Equals != "" && normalized != ct.Equals {
		return false
	}
	for _, sub := range ct.Contains {
		if !strings.Contains(normalized, sub) {
			return false
		}
	}
	return ct.Equals != "" || len(ct.Contains) > 0
}

// extract returns the template parameters and whether the defaults were kept.
func (ct CompiledTemplate) extract(normalized string) ([]float64, bool) {
	params := append([]float64(nil), ct.Defaults...)
	if ct.extractor == nil {
		return params, false
	}

	groups := ct.extractor.FindStringSubmatch(normalized)
	if groups == nil {
		return params, true
	}

	extracted := make([]float64, 0, len(groups)-1)
	for _, g := range groups[1:] {
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return params, true
		}
		extracted = append(extracted, v)
	}
	return extracted, false
}

// Classifier walks a chain of templates in order; the first match wins.
type Classifier struct {
	domain    model.Domain
	templates []CompiledTemplate
	fallback  Template
}

// NewClassifier compiles a template chain. Order is preserved.
func NewClassifier(domain model.Domain, templates []Template, fallback Template) (*Classifier, error) {
	compiled := make([]CompiledTemplate, 0, len(templates))

	for _, t := range templates {
		ct := CompiledTemplate{Template: t}
		if t.Extract != "" {
			re, err := regexp.Compile(t.Extract)
			if err != nil {
				return nil, fmt.Errorf("failed to compile template %s: %w", t.ID, err)
			}
			ct.extractor = re
		}
		compiled = append(compiled, ct)
	}

	return &Classifier{
		domain:    domain,
		templates: compiled,
		fallback:  fallback,
	}, nil
}

// Normalize trims, case-folds and strips whitespace so that "1/(s + 2)" and
// "1/(s+2)" classify identically.
func Normalize(expr string) string {
	return strings.Join(strings.Fields(strings.ToLower(expr)), "")
}

// Classify returns the first template matching expr, or an unrecognized match
// carrying the fallback template.
func (c *Classifier) Classify(ctx context.Context, expr string) (model.TemplateMatch, error) {
	normalized := Normalize(expr)
	if normalized == "" {
		return model.TemplateMatch{}, common.InvalidExpression(string(c.domain) + " expression")
	}

	for _, t := range c.templates {
		if !t.matches(normalized) {
			continue
		}
		params, defaulted := t.extract(normalized)
		common.LogDebug(ctx, "template matched", common.Fields{
			"domain":    c.domain,
			"template":  t.ID,
			"defaulted": defaulted,
		})
		return model.TemplateMatch{
			Template:   t.ID,
			Kind:       model.KindRecognized,
			Parameters: params,
			Defaulted:  defaulted,
		}, nil
	}

	common.LogDebug(ctx, "no template matched", common.Fields{
		"domain":   c.domain,
		"fallback": c.fallback.ID,
	})
	return model.TemplateMatch{
		Template:   c.fallback.ID,
		Kind:       model.KindUnrecognized,
		Parameters: append([]float64(nil), c.fallback.Defaults...),
	}, nil
}

// Domain returns the domain this classifier serves.
func (c *Classifier) Domain() model.Domain {
	return c.domain
}

// TemplateCount returns the number of templates in the chain, excluding the fallback.
func (c *Classifier) TemplateCount() int {
	return len(c.templates)
}
