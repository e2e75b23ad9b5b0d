package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the convolution player and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	m, err := New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
