package model

// Property names one of the five analyzed system properties.
type Property string

// Analyzed properties, in report order.
const (
	PropertyLinearity      Property = "linearity"
	PropertyCausality      Property = "causality"
	PropertyStability      Property = "stability"
	PropertyMemory         Property = "memory"
	PropertyTimeInvariance Property = "time_invariance"
)

// Properties lists every property in report order.
func Properties() []Property {
	return []Property{
		PropertyLinearity,
		PropertyCausality,
		PropertyStability,
		PropertyMemory,
		PropertyTimeInvariance,
	}
}

// PropertyVerdict is the heuristic outcome for one property.
type PropertyVerdict struct {
	Property       Property `json:"property"`
	ExplanationKey string   `json:"reason_key"`
	Holds          bool     `json:"result"`
}

// PropertyReport holds the five independent verdicts of one analysis.
type PropertyReport [5]PropertyVerdict

// Verdict returns the verdict for p.
func (r PropertyReport) Verdict(p Property) (PropertyVerdict, bool) {
	for _, v := range r {
		if v.Property == p {
			return v, true
		}
	}
	return PropertyVerdict{}, false
}
