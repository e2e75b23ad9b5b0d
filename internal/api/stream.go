package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/Veraticus/signal-companion/internal/playback"
)

const (
	writeWait = 10 * time.Second
	sendQueue = 64
)

// newUpgrader accepts upgrades from the configured origins. Requests without
// an Origin header come from non-browser clients and are accepted.
func newUpgrader(origins []string) websocket.Upgrader {
	allowed := newOriginSet(origins)
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed.allows(origin)
		},
	}
}

// ConvolutionStream plays the convolution animation over a websocket, one
// FrameMessage per tick. Clients may send ControlMessage actions.
// GET /api/v1/convolution/stream?signal_x=...&signal_h=...
func (h *Handler) ConvolutionStream(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.calc.Convolve(r.Context(), q.Get("signal_x"), q.Get("signal_h"))
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		common.Logger(r.Context()).Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Time{})

	// The request context ends when the handler returns, so the session gets its own.
	ctx, cancel := context.WithCancel(common.WithLogger(context.Background(), common.Logger(r.Context())))
	defer cancel()

	send := make(chan FrameMessage, sendQueue)
	frames := result.Frames
	player := playback.NewPlayer(frames.Len(), h.interval, func(c playback.Cursor) {
		select {
		case send <- frameMessage(frames, c):
		case <-ctx.Done():
		}
	})
	defer player.Close()

	go h.readControl(ctx, cancel, conn, player)

	send <- frameMessage(frames, player.Cursor())
	player.Play(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				common.LogDebug(ctx, "websocket write failed", common.Fields{"error": err.Error()})
				return
			}
		}
	}
}

func (h *Handler) readControl(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, player *playback.Player) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ControlMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			common.LogDebug(ctx, "ignoring malformed control message", common.Fields{"error": err.Error()})
			continue
		}

		switch msg.Action {
		case "toggle":
			player.Toggle(ctx)
		case "play":
			player.Play(ctx)
		case "pause":
			player.Pause()
		case "reset":
			player.Reset()
		default:
			common.LogDebug(ctx, "ignoring unknown control action", common.Fields{"action": msg.Action})
		}
	}
}

func frameMessage(frames model.FrameSet, c playback.Cursor) FrameMessage {
	frame := frames.Frame(c.Frame)
	return FrameMessage{
		X:       frame.X,
		Y:       frame.Y,
		Frame:   c.Frame,
		Total:   frames.Len(),
		Playing: c.Playing,
	}
}
