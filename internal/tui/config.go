package tui

import (
	"time"

	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/playback"
	"github.com/Veraticus/signal-companion/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Calculator engine.Calculator
	Language   locale.Language
	SignalX    string
	SignalH    string
	Interval   time.Duration
	Width      int
	Height     int
	AltScreen  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Language:  locale.English,
		SignalX:   "u(t)",
		SignalH:   "exp(-t)*u(t)",
		Interval:  playback.DefaultInterval,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithCalculator sets the engine used for the convolution.
func WithCalculator(calc engine.Calculator) Option {
	return func(c *Config) {
		c.Calculator = calc
	}
}

// WithSignals sets the two signals to convolve.
func WithSignals(signalX, signalH string) Option {
	return func(c *Config) {
		c.SignalX = signalX
		c.SignalH = signalH
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLanguage sets the starting language.
func WithLanguage(lang locale.Language) Option {
	return func(c *Config) {
		c.Language = lang
	}
}

// WithInterval sets the delay between animation frames.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Interval = d
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the player takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
