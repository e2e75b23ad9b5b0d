package tui

import (
	"time"

	"github.com/Veraticus/signal-companion/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// calculate runs the convolution off the update loop.
func (m Model) calculate() tea.Cmd {
	ctx, calc := m.ctx, m.config.Calculator
	signalX, signalH := m.config.SignalX, m.config.SignalH
	return func() tea.Msg {
		result, err := calc.Convolve(ctx, signalX, signalH)
		if err != nil {
			common.LogDebug(ctx, "convolution failed", common.Fields{"error": err})
		}
		return convolutionResultMsg{result: result, err: err}
	}
}

// tick schedules the next playback frame for run.
func tick(interval time.Duration, run int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameTickMsg{run: run}
	})
}

