package tui

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/workflow"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(engine.Symbolic(m.config.SignalX, m.config.SignalH)),
	}

	switch m.conv.State.Phase() {
	case workflow.Loading:
		sections = append(sections,
			m.spinner.View()+" "+m.theme.StatusPending.Render(m.adapter.Translate(locale.KeyCalculating)))
	case workflow.Failed:
		sections = append(sections,
			m.theme.StatusError.Render(cli.ErrorIcon+" "+common.UserMessage(m.conv.State.Err())))
	case workflow.Ready:
		sections = append(sections, m.playerView())
	case workflow.Idle:
	}

	sections = append(sections, "", m.help.View(m.keymap))
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.layout.align == lipgloss.Right {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).Render(body)
	}
	return body
}

func (m Model) playerView() string {
	result, _ := m.conv.State.Result()
	frame, _ := m.conv.Frame()
	cursor := m.conv.Cursor

	plot := m.theme.RoundedBox.Render(
		m.theme.Plot.Render(revealedPlot(result.Curve, frame.Len(), m.progress.Width)),
	)

	counter := fmt.Sprintf("%s %d/%d", m.adapter.Translate(locale.KeyFrame), cursor.Frame+1, cursor.Last+1)
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.progress.ViewAs(cursor.Progress()), "  ", m.theme.Subtitle.UnsetMargins().Render(counter))

	playLabel := m.adapter.Translate(locale.KeyPlay)
	playStyle := m.theme.Button
	if cursor.Playing {
		playLabel = m.adapter.Translate(locale.KeyPause)
		playStyle = m.theme.ActiveButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		playStyle.Render("["+playLabel+"]"),
		m.theme.Button.Render("["+m.adapter.Translate(locale.KeyReset)+"]"),
		m.theme.Subtitle.UnsetMargins().Render(" "+m.adapter.Translate(locale.KeyLanguage)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, plot, bar, "", buttons)
}

// revealedPlot draws the full curve as a sparkline with only the first
// shown samples visible, so the axis stays fixed while frames advance.
func revealedPlot(curve model.SampledCurve, shown, width int) string {
	cols := []rune(cli.Sparkline(curve.Y, width))
	if curve.Len() == 0 {
		return ""
	}
	visible := len(cols) * shown / curve.Len()
	for i := visible; i < len(cols); i++ {
		cols[i] = ' '
	}
	return string(cols)
}
