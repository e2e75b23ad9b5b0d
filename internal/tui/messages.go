package tui

import "github.com/Veraticus/signal-companion/internal/model"

// convolutionResultMsg delivers the outcome of a convolution request.
type convolutionResultMsg struct {
	err    error
	result model.ConvolutionResult
}

// frameTickMsg advances playback. Ticks from a superseded playback run are ignored.
type frameTickMsg struct {
	run int
}
