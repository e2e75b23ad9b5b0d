package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCursor(t *testing.T) {
	c := NewCursor(51)
	assert.Equal(t, 0, c.Frame)
	assert.Equal(t, 50, c.Last)
	assert.False(t, c.Playing)

	empty := NewCursor(0)
	assert.Equal(t, 0, empty.Last)
	assert.True(t, empty.AtEnd())
}

func TestCursor_PlaysToEndAndStops(t *testing.T) {
	c := NewCursor(4).Toggle()
	assert.True(t, c.Playing)

	var seen []int
	for c.Playing {
		c = c.Advance()
		seen = append(seen, c.Frame)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.True(t, c.AtEnd())

	assert.Equal(t, c, c.Advance(), "advancing a paused cursor is a no-op")
}

func TestCursor_Toggle(t *testing.T) {
	tests := []struct {
		name string
		in   Cursor
		want Cursor
	}{
		{"pause", Cursor{Frame: 3, Last: 10, Playing: true}, Cursor{Frame: 3, Last: 10}},
		{"resume mid-way", Cursor{Frame: 3, Last: 10}, Cursor{Frame: 3, Last: 10, Playing: true}},
		{"restart at end", Cursor{Frame: 10, Last: 10}, Cursor{Frame: 0, Last: 10, Playing: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Toggle())
		})
	}
}

func TestCursor_Reset(t *testing.T) {
	c := Cursor{Frame: 7, Last: 10, Playing: true}.Reset()
	assert.Equal(t, Cursor{Frame: 0, Last: 10}, c)
}

func TestCursor_Progress(t *testing.T) {
	assert.InDelta(t, 0.5, Cursor{Frame: 25, Last: 50}.Progress(), 1e-12)
	assert.InDelta(t, 1.0, Cursor{}.Progress(), 1e-12)
}
