package pong

// MoveOpponent steps the opponent paddle toward the ball. The paddle holds
// still while its center is within the dead zone of the ball center, so it
// can be beaten by steep returns.
func MoveOpponent(w *World) {
	o := &w.Opponent
	target := w.Ball.CenterY()
	center := o.CenterY()

	switch {
	case center < target-w.cfg.DeadZone:
		o.Y += w.cfg.OpponentStep
	case center > target+w.cfg.DeadZone:
		o.Y -= w.cfg.OpponentStep
	}
	o.SetY(o.Y, w.Field.Height)
}
