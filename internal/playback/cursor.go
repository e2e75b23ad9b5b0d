// Package playback steps through convolution animation frames.
package playback

// Cursor is the pure playback state over a frame set with frames 0..Last.
type Cursor struct {
	Frame   int
	Last    int
	Playing bool
}

// NewCursor returns a paused cursor at frame 0 over frames frames.
func NewCursor(frames int) Cursor {
	last := frames - 1
	if last < 0 {
		last = 0
	}
	return Cursor{Last: last}
}

// AtEnd reports whether the cursor sits on the last frame.
func (c Cursor) AtEnd() bool {
	return c.Frame >= c.Last
}

// Toggle pauses a playing cursor, or starts a paused one. Starting from the
// last frame rewinds to frame 0 first.
func (c Cursor) Toggle() Cursor {
	if c.Playing {
		c.Playing = false
		return c
	}
	if c.AtEnd() {
		c.Frame = 0
	}
	c.Playing = true
	return c
}

// Advance moves a playing cursor one frame forward and stops on the last frame.
func (c Cursor) Advance() Cursor {
	if !c.Playing {
		return c
	}
	if c.Frame < c.Last {
		c.Frame++
	}
	if c.AtEnd() {
		c.Playing = false
	}
	return c
}

// Reset rewinds to frame 0 and pauses.
func (c Cursor) Reset() Cursor {
	c.Frame = 0
	c.Playing = false
	return c
}

// Progress returns the position through the animation in [0, 1].
func (c Cursor) Progress() float64 {
	if c.Last == 0 {
		return 1
	}
	return float64(c.Frame) / float64(c.Last)
}
