package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/transform"
	"gonum.org/v1/gonum/floats"
)

// SparklineWidth is the default number of columns in a rendered curve.
const SparklineWidth = 60

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Renderer writes human-readable results in one language.
type Renderer struct {
	w    io.Writer
	lang locale.Language
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, lang locale.Language) *Renderer {
	return &Renderer{w: w, lang: lang}
}

func (r *Renderer) t(key string) string {
	return locale.Translate(r.lang, key)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// Sparkline draws ys as a single row of block characters, resampled to width columns.
func Sparkline(ys []float64, width int) string {
	if len(ys) == 0 || width <= 0 {
		return ""
	}
	if width > len(ys) {
		width = len(ys)
	}
	finite := make([]float64, 0, len(ys))
	for _, y := range ys {
		if !math.IsNaN(y) && !math.IsInf(y, 0) {
			finite = append(finite, y)
		}
	}
	if len(finite) == 0 {
		return strings.Repeat(" ", width)
	}
	lo, hi := floats.Min(finite), floats.Max(finite)

	var b strings.Builder
	for col := 0; col < width; col++ {
		y := ys[col*len(ys)/width]
		switch {
		case math.IsNaN(y) || math.IsInf(y, 0):
			b.WriteRune(' ')
		case hi == lo:
			b.WriteRune(sparkLevels[len(sparkLevels)/2])
		default:
			level := int((y - lo) / (hi - lo) * float64(len(sparkLevels)-1))
			b.WriteRune(sparkLevels[level])
		}
	}
	return b.String()
}

// FormatGain renders a DC gain, showing an infinite gain as ∞.
func FormatGain(g float64) string {
	if math.IsInf(g, 1) {
		return "∞"
	}
	return transform.FormatNumber(g)
}

func formatRoots(values []float64) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = transform.FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) warnUnrecognized(kind model.MatchKind, defaulted bool) error {
	if kind == model.KindRecognized && !defaulted {
		return nil
	}
	_, err := fmt.Fprintln(r.w, FormatWarning(r.t(locale.KeyUnrecognized)))
	return err
}

func (r *Renderer) table(rows [][2]string) error {
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Properties renders the five property verdicts for equation.
func (r *Renderer) Properties(equation string, report model.PropertyReport) error {
	if _, err := fmt.Fprintln(r.w, FormatTitle(equation)); err != nil {
		return err
	}
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, v := range report {
		label := r.t(locale.KeyNo)
		if v.Holds {
			label = r.t(locale.KeyYes)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			r.t("properties."+string(v.Property)),
			FormatVerdict(v.Holds, label),
			SubtleStyle.Render(r.t(v.ExplanationKey)),
		); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Transform renders a forward Laplace transform.
func (r *Renderer) Transform(res model.TransformResult) error {
	if err := r.warnUnrecognized(res.Kind, res.Defaulted); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, FormatTitle("ℒ{"+res.Input+"}")); err != nil {
		return err
	}
	return r.table([][2]string{
		{"F(s)", BoldStyle.Render(res.Symbolic)},
		{"ROC", res.ROC},
		{"poles", formatRoots(res.Poles)},
		{"zeros", formatRoots(res.Zeros)},
	})
}

// Inverse renders an inverse Laplace transform with its steps.
func (r *Renderer) Inverse(res model.InverseResult) error {
	if err := r.warnUnrecognized(res.Kind, res.Defaulted); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, FormatTitle("ℒ⁻¹{"+res.Input+"}")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, BoldStyle.Render("f(t) = "+res.TimeExpression)); err != nil {
		return err
	}
	if len(res.Steps) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(r.w); err != nil {
		return err
	}
	rows := make([][2]string, len(res.Steps))
	for i, s := range res.Steps {
		rows[i] = [2]string{fmt.Sprintf("%d. %s", i+1, s.Label), s.Value}
	}
	return r.table(rows)
}

// Convolution renders a convolution result with its curve.
func (r *Renderer) Convolution(res model.ConvolutionResult) error {
	if _, err := fmt.Fprintln(r.w, FormatTitle(res.Symbolic)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, PlotStyle.Render(Sparkline(res.Curve.Y, SparklineWidth)))
	return err
}

// LTI renders a transfer function analysis.
func (r *Renderer) LTI(a model.LTIAnalysis) error {
	if err := r.warnUnrecognized(a.Kind, a.Defaulted); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, FormatTitle("H(s) = "+a.TransferFunction)); err != nil {
		return err
	}
	stability := r.t("stability." + string(a.Stability))
	if a.Stability == model.StabilityStable {
		stability = SuccessStyle.Render(stability)
	} else {
		stability = WarningStyle.Render(stability)
	}
	if err := r.table([][2]string{
		{r.t("properties.stability"), stability},
		{"order", r.t("order." + string(a.Order))},
		{"poles", formatRoots(a.Poles)},
		{"zeros", formatRoots(a.Zeros)},
		{"DC gain", FormatGain(a.DCGain)},
	}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w); err != nil {
		return err
	}
	return r.table([][2]string{
		{"step", PlotStyle.Render(Sparkline(a.StepResponse.Y, SparklineWidth))},
		{"impulse", PlotStyle.Render(Sparkline(a.ImpulseResponse.Y, SparklineWidth))},
		{"|H| dB", PlotStyle.Render(Sparkline(a.FrequencyResponse.Magnitude, SparklineWidth))},
		{"∠H °", PlotStyle.Render(Sparkline(a.FrequencyResponse.Phase, SparklineWidth))},
	})
}

// Library renders the canonical signal library.
func (r *Renderer) Library(entries []model.SignalLibraryEntry) error {
	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		var ys []float64
		for _, tr := range e.Traces {
			if !tr.Reference {
				ys = tr.Curve.Y
				break
			}
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			BoldStyle.Render(e.Name), e.MathExpression,
			PlotStyle.Render(Sparkline(ys, SparklineWidth/2)),
		); err != nil {
			return err
		}
	}
	return w.Flush()
}
