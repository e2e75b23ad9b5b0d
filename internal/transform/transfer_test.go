package transform

import (
	"math"
	"testing"

	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	tests := []struct {
		name      string
		match     model.TemplateMatch
		poles     []float64
		zeros     []float64
		gain      float64
		stability model.Stability
		order     model.SystemOrder
	}{
		{
			name:      "first order",
			match:     model.TemplateMatch{Template: model.TemplateFirstOrderPole, Kind: model.KindRecognized, Parameters: []float64{4}},
			poles:     []float64{-4},
			zeros:     []float64{},
			gain:      0.25,
			stability: model.StabilityStable,
			order:     model.OrderFirst,
		},
		{
			name:      "differentiator",
			match:     model.TemplateMatch{Template: model.TemplateDifferentiator, Kind: model.KindRecognized},
			poles:     []float64{-2},
			zeros:     []float64{0},
			gain:      0,
			stability: model.StabilityStable,
			order:     model.OrderFirst,
		},
		{
			name:      "second order",
			match:     model.TemplateMatch{Template: model.TemplateSecondOrder, Kind: model.KindRecognized},
			poles:     []float64{-1, -2},
			zeros:     []float64{-3},
			gain:      0.33,
			stability: model.StabilityStable,
			order:     model.OrderSecond,
		},
		{
			name:      "double integrator",
			match:     model.TemplateMatch{Template: model.TemplateDoubleIntegrator, Kind: model.KindRecognized},
			poles:     []float64{0, 0},
			zeros:     []float64{},
			gain:      0,
			stability: model.StabilityMarginallyStable,
			order:     model.OrderSecond,
		},
		{
			name:      "unrecognized",
			match:     model.TemplateMatch{Template: model.TemplateFirstOrderPole, Kind: model.KindUnrecognized, Parameters: []float64{2}},
			poles:     []float64{-2},
			zeros:     []float64{},
			gain:      0.5,
			stability: model.StabilityStable,
			order:     model.OrderFirst,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Transfer(tt.match)
			assert.Equal(t, tt.poles, entry.Poles)
			assert.Equal(t, tt.zeros, entry.Zeros)
			assert.InDelta(t, tt.gain, entry.DCGain, 1e-12)
			assert.Equal(t, tt.stability, Stability(entry.Poles))
			assert.Equal(t, tt.order, Order(entry.Poles))
		})
	}
}

func TestTransfer_PoleAtOrigin(t *testing.T) {
	entry := Transfer(model.TemplateMatch{
		Template:   model.TemplateFirstOrderPole,
		Kind:       model.KindRecognized,
		Parameters: []float64{0},
	})
	assert.True(t, math.IsInf(entry.DCGain, 1))
	assert.Equal(t, model.StabilityMarginallyStable, Stability(entry.Poles))
}

func TestStability(t *testing.T) {
	assert.Equal(t, model.StabilityUnstable, Stability([]float64{-1, 0, 2}))
	assert.Equal(t, model.StabilityMarginallyStable, Stability([]float64{-1, 0}))
	assert.Equal(t, model.StabilityStable, Stability([]float64{-1, -3}))
	assert.Equal(t, model.StabilityStable, Stability(nil))
}
