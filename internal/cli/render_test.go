package cli

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		ys    []float64
		width int
	}{
		{name: "empty", ys: nil, width: 10, want: ""},
		{name: "rising", ys: []float64{0, 1, 2, 3, 4, 5, 6, 7}, width: 8, want: "▁▂▃▄▅▆▇█"},
		{name: "flat", ys: []float64{3, 3, 3}, width: 3, want: "▅▅▅"},
		{name: "downsampled", ys: []float64{0, 0, 7, 7}, width: 2, want: "▁█"},
		{name: "width clamps to samples", ys: []float64{0, 7}, width: 10, want: "▁█"},
		{name: "non-finite gap", ys: []float64{0, math.NaN(), 7}, width: 3, want: "▁ █"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.ys, tt.width))
		})
	}
}

func TestSparkline_Width(t *testing.T) {
	ys := make([]float64, 201)
	for i := range ys {
		ys[i] = math.Sin(float64(i) / 10)
	}
	assert.Equal(t, SparklineWidth, utf8.RuneCountInString(Sparkline(ys, SparklineWidth)))
}

func TestFormatGain(t *testing.T) {
	assert.Equal(t, "∞", FormatGain(math.Inf(1)))
	assert.Equal(t, "0.5", FormatGain(0.5))
}

func TestRenderer_Properties(t *testing.T) {
	e := newEngine(t)
	report, err := e.AnalyzeProperties(context.Background(), "y[n] = x[n+1]")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, locale.English).Properties("y[n] = x[n+1]", report))

	out := buf.String()
	for _, label := range []string{"Linearity", "Causality", "Stability", "Memory", "Time invariance"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "The output depends on a future input.")
}

func TestRenderer_PropertiesPersian(t *testing.T) {
	e := newEngine(t)
	report, err := e.AnalyzeProperties(context.Background(), "y[n] = 2*x[n]")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, locale.Persian).Properties("y[n] = 2*x[n]", report))
	assert.Contains(t, buf.String(), locale.Translate(locale.Persian, locale.KeyYes))
}

func TestRenderer_Transform(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		name     string
		input    string
		contains []string
		warn     bool
	}{
		{
			name:     "recognized",
			input:    "exp(-3*t)*u(t)",
			contains: []string{"1/(s + 3)", "Re(s) > -3", "-3"},
		},
		{
			name:     "fallback warns",
			input:    "tan(t)",
			contains: []string{"1/(s + 2)"},
			warn:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.ForwardTransform(context.Background(), tt.input)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, NewRenderer(&buf, locale.English).Transform(res))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			assert.Equal(t, tt.warn, strings.Contains(buf.String(), "not recognized"))
		})
	}
}

func TestRenderer_Inverse(t *testing.T) {
	e := newEngine(t)
	res, err := e.InverseTransform(context.Background(), "1/(s+3)", true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, locale.English).Inverse(res))
	out := buf.String()
	assert.Contains(t, out, "f(t) = "+res.TimeExpression)
	assert.Contains(t, out, "1. "+res.Steps[0].Label)
}

func TestRenderer_LTI(t *testing.T) {
	e := newEngine(t)
	a, err := e.AnalyzeLTI(context.Background(), "1/s^2")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, locale.English).LTI(a))
	out := buf.String()
	assert.Contains(t, out, "H(s) = 1/s^2")
	assert.Contains(t, out, "Second order")
	assert.Contains(t, out, "step")
}

func TestRenderer_ConvolutionAndLibrary(t *testing.T) {
	e := newEngine(t)
	res, err := e.Convolve(context.Background(), "u(t)", "exp(-t)")
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewRenderer(&buf, locale.English)
	require.NoError(t, r.Convolution(res))
	assert.Contains(t, buf.String(), "y(t) = (u(t)) * (exp(-t))")

	entries, err := e.SignalLibrary(context.Background())
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, r.Library(entries))
	assert.Contains(t, buf.String(), "Unit Step")
	assert.Contains(t, buf.String(), "sin(2πt)")
}
