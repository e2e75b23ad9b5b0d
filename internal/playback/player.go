package playback

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between animation frames.
const DefaultInterval = 100 * time.Millisecond

// FrameFunc receives the cursor after every change made by the player.
type FrameFunc func(Cursor)

// Player drives a Cursor from a ticker goroutine. While playing it holds a
// cancel func for that goroutine; pausing, resetting, reaching the last frame
// and closing all release it.
type Player struct {
	onFrame  FrameFunc
	cancel   context.CancelFunc
	done     chan struct{}
	cursor   Cursor
	interval time.Duration
	mu       sync.Mutex
	closed   bool
}

// NewPlayer creates a paused player over frames frames.
func NewPlayer(frames int, interval time.Duration, onFrame FrameFunc) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if onFrame == nil {
		onFrame = func(Cursor) {}
	}
	return &Player{
		cursor:   NewCursor(frames),
		interval: interval,
		onFrame:  onFrame,
	}
}

// Cursor returns the current playback state.
func (p *Player) Cursor() Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Playing reports whether a tick goroutine is active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Toggle starts or pauses playback. The ticker stops when ctx is done.
func (p *Player) Toggle(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.cursor = p.cursor.Toggle()
	if p.cursor.Playing {
		p.startLocked(ctx)
	} else {
		p.stopLocked()
	}
	c := p.cursor
	p.mu.Unlock()

	p.onFrame(c)
}

// Play starts playback unless it is already running.
func (p *Player) Play(ctx context.Context) {
	if p.Playing() {
		return
	}
	p.Toggle(ctx)
}

// Pause stops playback, keeping the current frame.
func (p *Player) Pause() {
	p.mu.Lock()
	if p.cancel == nil {
		p.mu.Unlock()
		return
	}
	p.cursor.Playing = false
	p.stopLocked()
	c := p.cursor
	p.mu.Unlock()

	p.onFrame(c)
}

// Reset stops playback and rewinds to frame 0.
func (p *Player) Reset() {
	p.mu.Lock()
	p.stopLocked()
	p.cursor = p.cursor.Reset()
	c := p.cursor
	p.mu.Unlock()

	p.onFrame(c)
}

// Close stops playback for good. Further calls to Toggle and Play are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.cursor.Playing = false
	p.stopLocked()
}

// Done returns a channel closed when the current ticker goroutine exits.
// It returns a closed channel when nothing is playing.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return p.done
}

func (p *Player) startLocked(ctx context.Context) {
	p.stopLocked()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.run(runCtx, cancel, done)
}

func (p *Player) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Player) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.mu.Lock()
			// Only clear state owned by this goroutine.
			if p.done == done && p.cancel != nil {
				p.cancel = nil
				p.cursor.Playing = false
			}
			p.mu.Unlock()
			return
		case <-ticker.C:
			p.mu.Lock()
			if ctx.Err() != nil || p.done != done {
				p.mu.Unlock()
				return
			}
			p.cursor = p.cursor.Advance()
			c := p.cursor
			if !c.Playing {
				p.cancel = nil
			}
			p.mu.Unlock()

			p.onFrame(c)
			if !c.Playing {
				return
			}
		}
	}
}
