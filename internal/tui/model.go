// Package tui provides the interactive convolution player.
package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/tui/themes"
	"github.com/Veraticus/signal-companion/internal/workflow"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the player state.
type Model struct {
	ctx      context.Context
	adapter  *locale.Adapter
	layout   *layout
	theme    themes.Theme
	conv     workflow.Convolution
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	keymap   KeyMap
	config   Config
	width    int
	height   int
	run      int
	quitting bool
}

// layout is the direction-dependent presentation state, shared by every
// copy of the model and updated by the locale adapter.
type layout struct {
	align lipgloss.Position
}

// New creates the player model.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Calculator == nil {
		return Model{}, fmt.Errorf("%w: calculator is required", common.ErrMissingConfig)
	}

	m := Model{
		ctx:      ctx,
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		adapter:  locale.NewAdapter(cfg.Language),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cfg.Theme.Plot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:     help.New(),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.resize()

	lay := &layout{}
	m.layout = lay
	m.adapter.Subscribe(func(_ locale.Language, dir locale.Direction) {
		lay.align = lipgloss.Left
		if dir == locale.RTL {
			lay.align = lipgloss.Right
		}
	})

	conv, err := m.conv.Submit()
	if err != nil {
		return Model{}, err
	}
	m.conv = conv
	return m, nil
}

// Init starts the first calculation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.calculate())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case convolutionResultMsg:
		// A result that arrives outside Loading is stale and dropped.
		if msg.err != nil {
			m.conv, _ = m.conv.Fail(msg.err)
		} else {
			m.conv, _ = m.conv.Resolve(msg.result)
		}
		return m, nil

	case frameTickMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.conv = m.conv.Tick()
		if m.conv.Cursor.Playing {
			return m, tick(m.config.Interval, m.run)
		}
		return m, nil

	case spinner.TickMsg:
		if m.conv.State.Phase() != workflow.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Language):
		m.adapter.Toggle()

	case key.Matches(msg, m.keymap.Toggle):
		conv, err := m.conv.Toggle()
		if err != nil {
			return m, nil
		}
		m.conv = conv
		m.run++
		if m.conv.Cursor.Playing {
			return m, tick(m.config.Interval, m.run)
		}

	case key.Matches(msg, m.keymap.Reset):
		conv, err := m.conv.Reset()
		if err != nil {
			return m, nil
		}
		m.conv = conv
		m.run++

	case key.Matches(msg, m.keymap.Recalculate):
		conv, err := m.conv.Submit()
		if err != nil {
			return m, nil
		}
		m.conv = conv
		m.run++
		return m, tea.Batch(m.spinner.Tick, m.calculate())
	}

	return m, nil
}

func (m *Model) resize() {
	w := m.width - 8
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
	m.help.Width = m.width
}

// Language returns the active UI language.
func (m Model) Language() locale.Language {
	return m.adapter.Current()
}

// Convolution returns the current request and playback state.
func (m Model) Convolution() workflow.Convolution {
	return m.conv
}
