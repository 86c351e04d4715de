package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jtestard/pointer-pong/pong"
)

// inputBinding polls ebiten for pointer and touch activity and forwards it
// to the pong input handler as move events.
type inputBinding struct {
	handler *pong.InputHandler

	primed           bool
	cursorX, cursorY int
	touches          []ebiten.TouchID
	lastTouchY       int
}

func newInputBinding(h *pong.InputHandler) *inputBinding {
	// ebiten reports positions in screen space, so the surface top is 0
	h.Attach(0)
	return &inputBinding{handler: h}
}

func (b *inputBinding) poll() {
	x, y := ebiten.CursorPosition()
	if !b.primed {
		// the first sample is where the cursor was, not a move
		b.cursorX, b.cursorY, b.primed = x, y, true
	}
	if x != b.cursorX || y != b.cursorY {
		b.cursorX, b.cursorY = x, y
		b.handler.PointerMove(float64(y))
	}

	b.touches = ebiten.AppendTouchIDs(b.touches[:0])
	if len(b.touches) == 0 {
		return
	}
	started := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	points := make([]pong.TouchPoint, 0, len(b.touches))
	for _, id := range b.touches {
		x, y := ebiten.TouchPosition(id)
		points = append(points, pong.TouchPoint{ClientX: float64(x), ClientY: float64(y)})
	}
	// touch-move only fires when the primary point moved
	if !started && int(points[0].ClientY) == b.lastTouchY {
		return
	}
	b.lastTouchY = int(points[0].ClientY)
	// no scrolling default to suppress inside an ebiten window
	_ = b.handler.Touch(points)
}
