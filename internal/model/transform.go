package model

// TransformResult is the forward Laplace transform of a time-domain expression.
type TransformResult struct {
	Input     string     `json:"input"`
	Symbolic  string     `json:"symbolic"`
	ROC       string     `json:"roc"`
	Template  TemplateID `json:"template"`
	Kind      MatchKind  `json:"kind"`
	Poles     []float64  `json:"poles"`
	Zeros     []float64  `json:"zeros"`
	PoleZero  []Trace    `json:"pole_zero"`
	Defaulted bool       `json:"defaulted,omitempty"`
}

// InverseStep is one labelled line of a step-by-step inverse transform.
type InverseStep struct {
	Label string `json:"step"`
	Value string `json:"value"`
}

// InverseResult is the inverse Laplace transform of an s-domain expression.
type InverseResult struct {
	Input          string        `json:"input"`
	TimeExpression string        `json:"time_expression"`
	Template       TemplateID    `json:"template"`
	Kind           MatchKind     `json:"kind"`
	Steps          []InverseStep `json:"steps"`
	Causal         bool          `json:"causal"`
	Defaulted      bool          `json:"defaulted,omitempty"`
}
