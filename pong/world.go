package pong

import "math/rand"

// World is the whole game state: the field, both paddles and the ball.
// The frame driver owns one World and hands it to every step by pointer.
type World struct {
	Field    Field
	Player   Paddle
	Opponent Paddle
	Ball     Ball

	cfg Config
	rng *rand.Rand
}

// NewWorld builds a world with both paddles and the ball centered vertically.
// The ball starts moving right and down at a fixed angle.
func NewWorld(cfg Config, f Field, rng *rand.Rand) *World {
	w := &World{
		Field: f,
		cfg:   cfg,
		rng:   rng,
	}
	paddleY := f.Height/2 - cfg.PaddleHeight/2

	w.Player = Paddle{
		Position: Position{X: cfg.PaddleMargin, Y: paddleY},
		Width:    cfg.PaddleWidth,
		Height:   cfg.PaddleHeight,
		Color:    cfg.PlayerColor,
	}
	w.Opponent = Paddle{
		Position: Position{X: f.Width - cfg.PaddleMargin - cfg.PaddleWidth, Y: paddleY},
		Width:    cfg.PaddleWidth,
		Height:   cfg.PaddleHeight,
		Color:    cfg.OpponentColor,
	}
	w.Ball = Ball{
		Position: Position{X: f.Width/2 - cfg.BallSize/2, Y: f.Height/2 - cfg.BallSize/2},
		Size:     cfg.BallSize,
		Speed:    cfg.BallSpeed,
		DX:       cfg.BallSpeed,
		DY:       cfg.InitialBallDY,
		Color:    cfg.BallColor,
	}
	return w
}

// ResetBall serves the ball again from the center.
func (w *World) ResetBall() {
	w.Ball.Reset(w.Field, w.cfg.ResetDYMin, w.cfg.ResetDYMax, w.rng)
}

// Tick advances the world by one frame: pending input, then the opponent,
// then the ball.
func (w *World) Tick(in *InputHandler) Events {
	if in != nil {
		in.Apply(w)
	}
	MoveOpponent(w)
	return w.Step()
}
