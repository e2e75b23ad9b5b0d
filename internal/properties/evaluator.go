// Package properties applies substring heuristics to a system equation to
// judge linearity, causality, stability, memory and time invariance.
package properties

import (
	"strings"

	"github.com/Veraticus/signal-companion/internal/model"
)

// Explanation keys resolved by the locale catalog.
const (
	KeyLinearSystem      = "explanations.linearSystem"
	KeyNonLinearSquare   = "explanations.nonLinearSquare"
	KeyCausalPastInput   = "explanations.causalPastInput"
	KeyNonCausalFuture   = "explanations.nonCausalFuture"
	KeyStableSystem      = "explanations.stableSystem"
	KeyUnstableRamp      = "explanations.unstableRamp"
	KeyMemorylessCurrent = "explanations.memorylessCurrent"
	KeyMemoryPastInput   = "explanations.memoryPastInput"
	KeyTimeInvariant     = "explanations.timeInvariant"
	KeyTimeVariant       = "explanations.timeVariant"
)

var (
	futureInputs = []string{"x[t+1]", "x[n+1]"}
	timeScaling  = []string{"t*", "n*"}
	pastSamples  = []string{"x[t-1]", "y[t-1]", "x[n-1]", "y[n-1]"}
)

// Rule decides one property from the case-folded equation.
type Rule struct {
	Property model.Property
	Holds    func(eq string) bool
	True     string
	False    string
}

// DefaultRules returns the five rules in report order.
func DefaultRules() [5]Rule {
	return [5]Rule{
		{
			Property: model.PropertyLinearity,
			Holds:    isLinear,
			True:     KeyLinearSystem,
			False:    KeyNonLinearSquare,
		},
		{
			Property: model.PropertyCausality,
			Holds:    func(eq string) bool { return !containsAny(eq, futureInputs) },
			True:     KeyCausalPastInput,
			False:    KeyNonCausalFuture,
		},
		{
			Property: model.PropertyStability,
			Holds:    func(eq string) bool { return !containsAny(eq, timeScaling) },
			True:     KeyStableSystem,
			False:    KeyUnstableRamp,
		},
		{
			Property: model.PropertyMemory,
			Holds:    func(eq string) bool { return containsAny(eq, pastSamples) },
			True:     KeyMemoryPastInput,
			False:    KeyMemorylessCurrent,
		},
		{
			Property: model.PropertyTimeInvariance,
			Holds:    func(eq string) bool { return !containsAny(eq, timeScaling) },
			True:     KeyTimeInvariant,
			False:    KeyTimeVariant,
		},
	}
}

// isLinear treats any equation without a bracketed input as linear; bracketed
// inputs are non-linear when squared or multiplied.
func isLinear(eq string) bool {
	return !strings.Contains(eq, "x[") ||
		(!strings.Contains(eq, "^2") && !strings.Contains(eq, "*x["))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Evaluate returns the five verdicts for equation. The verdicts are
// independent and the explanation key of each follows its verdict.
func Evaluate(equation string) model.PropertyReport {
	eq := strings.ToLower(equation)

	var report model.PropertyReport
	for i, rule := range DefaultRules() {
		holds := rule.Holds(eq)
		key := rule.False
		if holds {
			key = rule.True
		}
		report[i] = model.PropertyVerdict{
			Property:       rule.Property,
			Holds:          holds,
			ExplanationKey: key,
		}
	}
	return report
}
