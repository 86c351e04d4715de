package pong

import "sync/atomic"

// TouchPoint is one contact of a touch event, in client coordinates.
type TouchPoint struct {
	ClientX float64
	ClientY float64
}

// InputHandler turns pointer and touch events into player paddle positions.
//
// Events may come from any goroutine. Each one stores the latest surface-local
// pointer Y in an atomic cell; Apply consumes it at the start of a tick, so
// the paddle never moves in the middle of a frame.
type InputHandler struct {
	top    atomic.Pointer[float64]
	latest atomic.Pointer[float64]
}

// NewInputHandler returns a handler that ignores events until Attach is called.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Attach binds the handler to a surface whose top edge sits at top in client space.
func (h *InputHandler) Attach(top float64) {
	h.top.Store(&top)
}

// PointerMove records a pointer move at clientY.
func (h *InputHandler) PointerMove(clientY float64) {
	top := h.top.Load()
	if top == nil {
		return
	}
	local := clientY - *top
	h.latest.Store(&local)
}

// Touch records a touch start or move using the first touch point. It reports
// whether the event was consumed, in which case the platform should suppress
// its default scrolling. An event with no points is ignored.
func (h *InputHandler) Touch(points []TouchPoint) bool {
	if len(points) == 0 || h.top.Load() == nil {
		return false
	}
	h.PointerMove(points[0].ClientY)
	return true
}

// Apply moves the player paddle so it is centered on the latest pointer
// position, if one arrived since the last call.
func (h *InputHandler) Apply(w *World) {
	local := h.latest.Swap(nil)
	if local == nil || !w.Field.Valid() {
		return
	}
	p := &w.Player
	prev := p.Y
	p.SetY(*local-p.Height/2, w.Field.Height)
	p.DY = p.Y - prev
}
