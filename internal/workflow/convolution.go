package workflow

import (
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/playback"
)

// Convolution is the request state of the convolution calculator. A Ready
// state owns a playback cursor over its frames.
type Convolution struct {
	State  State[model.ConvolutionResult]
	Cursor playback.Cursor
}

// Resolve stores the result and rewinds a paused cursor over its frames.
func (c Convolution) Resolve(result model.ConvolutionResult) (Convolution, error) {
	next, err := c.State.Resolve(result)
	if err != nil {
		return c, err
	}
	return Convolution{State: next, Cursor: playback.NewCursor(result.Frames.Len())}, nil
}

// Submit starts a new calculation, discarding any playback.
func (c Convolution) Submit() (Convolution, error) {
	next, err := c.State.Submit()
	if err != nil {
		return c, err
	}
	return Convolution{State: next}, nil
}

// Fail records an error.
func (c Convolution) Fail(err error) (Convolution, error) {
	next, ferr := c.State.Fail(err)
	if ferr != nil {
		return c, ferr
	}
	return Convolution{State: next}, nil
}

// Clear returns to Idle, stopping playback.
func (c Convolution) Clear() (Convolution, error) {
	next, err := c.State.Clear()
	if err != nil {
		return c, err
	}
	return Convolution{State: next}, nil
}

// Toggle plays or pauses. Playback is only possible once Ready.
func (c Convolution) Toggle() (Convolution, error) {
	if c.State.Phase() != Ready {
		return c, c.State.invalid("toggle playback")
	}
	c.Cursor = c.Cursor.Toggle()
	return c, nil
}

// Tick advances playback by one frame.
func (c Convolution) Tick() Convolution {
	if c.State.Phase() == Ready {
		c.Cursor = c.Cursor.Advance()
	}
	return c
}

// Reset rewinds playback to frame 0.
func (c Convolution) Reset() (Convolution, error) {
	if c.State.Phase() != Ready {
		return c, c.State.invalid("reset playback")
	}
	c.Cursor = c.Cursor.Reset()
	return c, nil
}

// Frame returns the frame under the cursor.
func (c Convolution) Frame() (model.SampledCurve, bool) {
	result, ok := c.State.Result()
	if !ok {
		return model.SampledCurve{}, false
	}
	return result.Frames.Frame(c.Cursor.Frame), true
}
