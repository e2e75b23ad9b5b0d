package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCalculator struct {
	engine.Calculator
}

func (failingCalculator) Convolve(context.Context, string, string) (model.ConvolutionResult, error) {
	return model.ConvolutionResult{}, errors.New("boom")
}

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	calc, err := engine.New()
	require.NoError(t, err)
	m, err := New(context.Background(), append([]Option{WithCalculator(calc), WithInterval(time.Millisecond)}, opts...)...)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded runs the initial calculation synchronously.
func loaded(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.calculate()()
	m, _ = update(t, m, msg)
	require.Equal(t, workflow.Ready, m.Convolution().State.Phase())
	return m
}

func TestNew_RequiresCalculator(t *testing.T) {
	_, err := New(context.Background())
	require.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestModel_StartsLoading(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, workflow.Loading, m.Convolution().State.Phase())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Calculating convolution...")
}

func TestModel_ResultMakesReady(t *testing.T) {
	m := loaded(t, newTestModel(t))
	conv := m.Convolution()
	assert.Equal(t, 0, conv.Cursor.Frame)
	assert.Equal(t, 50, conv.Cursor.Last)
	assert.False(t, conv.Cursor.Playing)

	view := m.View()
	assert.Contains(t, view, "y(t) = (u(t)) * (exp(-t)*u(t))")
	assert.Contains(t, view, "Frame 1/51")
	assert.Contains(t, view, "[Play]")
}

func TestModel_FailedCalculation(t *testing.T) {
	m, err := New(context.Background(), WithCalculator(failingCalculator{}))
	require.NoError(t, err)

	m, _ = update(t, m, m.calculate()())
	assert.Equal(t, workflow.Failed, m.Convolution().State.Phase())
	assert.Contains(t, m.View(), "boom")

	m, cmd := update(t, m, keyMsg(" "))
	assert.Nil(t, cmd)
	assert.Equal(t, workflow.Failed, m.Convolution().State.Phase())
}

func TestModel_PlaybackRunsToEnd(t *testing.T) {
	m := loaded(t, newTestModel(t))

	m, cmd := update(t, m, keyMsg(" "))
	require.NotNil(t, cmd)
	assert.True(t, m.Convolution().Cursor.Playing)
	assert.Contains(t, m.View(), "[Pause]")

	run := m.run
	for i := 0; i < 100 && m.Convolution().Cursor.Playing; i++ {
		m, _ = update(t, m, frameTickMsg{run: run})
	}

	conv := m.Convolution()
	assert.False(t, conv.Cursor.Playing)
	assert.Equal(t, conv.Cursor.Last, conv.Cursor.Frame)

	m, _ = update(t, m, keyMsg(" "))
	assert.Equal(t, 0, m.Convolution().Cursor.Frame)
	assert.True(t, m.Convolution().Cursor.Playing)
}

func TestModel_StaleTicksIgnored(t *testing.T) {
	m := loaded(t, newTestModel(t))

	m, _ = update(t, m, keyMsg(" "))
	stale := m.run
	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, keyMsg(" "))

	m, cmd := update(t, m, frameTickMsg{run: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Convolution().Cursor.Frame)

	m, cmd = update(t, m, frameTickMsg{run: m.run})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.Convolution().Cursor.Frame)
}

func TestModel_Reset(t *testing.T) {
	m := loaded(t, newTestModel(t))
	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, frameTickMsg{run: m.run})
	m, _ = update(t, m, frameTickMsg{run: m.run})
	require.Equal(t, 2, m.Convolution().Cursor.Frame)

	m, _ = update(t, m, keyMsg("r"))
	assert.Equal(t, 0, m.Convolution().Cursor.Frame)
	assert.False(t, m.Convolution().Cursor.Playing)
}

func TestModel_Recalculate(t *testing.T) {
	m := loaded(t, newTestModel(t))
	m, cmd := update(t, m, keyMsg("c"))
	assert.NotNil(t, cmd)
	assert.Equal(t, workflow.Loading, m.Convolution().State.Phase())

	m, cmd = update(t, m, keyMsg("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, workflow.Loading, m.Convolution().State.Phase())
}

func TestModel_LanguageToggle(t *testing.T) {
	m := loaded(t, newTestModel(t))
	assert.Equal(t, locale.English, m.Language())

	m, _ = update(t, m, keyMsg("l"))
	assert.Equal(t, locale.Persian, m.Language())
	assert.Contains(t, m.View(), locale.Translate(locale.Persian, locale.KeyPlay))

	m, _ = update(t, m, keyMsg("l"))
	assert.Equal(t, locale.English, m.Language())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, 32, m.progress.Width)
}

func TestRevealedPlot(t *testing.T) {
	curve := model.SampledCurve{X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 2, 3}}
	assert.Equal(t, "    ", revealedPlot(curve, 0, 4))
	assert.Equal(t, 4, len([]rune(revealedPlot(curve, 2, 4))))
	assert.True(t, strings.HasSuffix(revealedPlot(curve, 2, 4), "  "))
	assert.NotContains(t, revealedPlot(curve, 4, 4), " ")
	assert.Empty(t, revealedPlot(model.SampledCurve{}, 0, 4))
}

func TestModel_DirectionFollowsLanguage(t *testing.T) {
	m := loaded(t, newTestModel(t, WithLanguage(locale.Persian)))
	assert.Equal(t, lipgloss.Right, m.layout.align)

	m, _ = update(t, m, keyMsg("l"))
	assert.Equal(t, lipgloss.Left, m.layout.align)
}
