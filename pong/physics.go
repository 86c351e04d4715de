package pong

// Events reports what happened during one physics step.
type Events uint8

const (
	WallBounce Events = 1 << iota
	PlayerHit
	OpponentHit
	Scored
)

// Has reports whether all of e2 are set in e.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// Step moves the ball one frame and resolves collisions. The checks run in
// order on the same ball, so each one sees the corrections of the previous.
func (w *World) Step() Events {
	var ev Events
	b := &w.Ball

	b.X += b.DX
	b.Y += b.DY

	// top and bottom walls
	if b.Top() < 0 {
		b.Y = 0
		b.DY = -b.DY
		ev |= WallBounce
	}
	if b.Bottom() > w.Field.Height {
		b.Y = w.Field.Height - b.Size
		b.DY = -b.DY
		ev |= WallBounce
	}

	p := &w.Player
	if b.Left() < p.Right() && b.Left() > p.Left() && p.overlapsY(b) {
		b.X = p.Right()
		b.DX = -b.DX
		b.DY = w.spin(p)
		ev |= PlayerHit
	}

	o := &w.Opponent
	if b.Right() > o.Left() && b.Right() < o.Right() && o.overlapsY(b) {
		b.X = o.Left() - b.Size
		b.DX = -b.DX
		b.DY = w.spin(o)
		ev |= OpponentHit
	}

	if b.Left() < 0 || b.Right() > w.Field.Width {
		w.ResetBall()
		ev |= Scored
	}
	return ev
}

// spin returns the vertical speed after a hit on p. It grows with the
// distance between the ball center and the paddle center.
func (w *World) spin(p *Paddle) float64 {
	return w.cfg.SpinFactor * (w.Ball.CenterY() - p.CenterY())
}
