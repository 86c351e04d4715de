package pong

import "image/color"

// Config holds the fixed tuning values of a session.
type Config struct {
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64

	BallSize      float64
	BallSpeed     float64
	InitialBallDY float64
	ResetDYMin    float64
	ResetDYMax    float64

	// DeadZone and OpponentStep set how well the opponent tracks the ball.
	DeadZone     float64
	OpponentStep float64

	SpinFactor float64

	PlayerColor   color.RGBA
	OpponentColor color.RGBA
	BallColor     color.RGBA
	NetColor      color.RGBA
	NetDash       []float64
	NetWidth      float64
}

var (
	BgColor       = color.RGBA{0, 0, 0, 255}
	PlayerColor   = color.RGBA{0, 255, 255, 255}
	OpponentColor = color.RGBA{255, 0, 255, 255}
	BallColor     = color.RGBA{255, 255, 255, 255}
	NetColor      = color.RGBA{0x55, 0x55, 0x55, 255}
)

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		PaddleWidth:   12,
		PaddleHeight:  80,
		PaddleMargin:  10,
		BallSize:      12,
		BallSpeed:     5,
		InitialBallDY: 3,
		ResetDYMin:    2,
		ResetDYMax:    6,
		DeadZone:      10,
		OpponentStep:  3.5,
		SpinFactor:    0.25,
		PlayerColor:   PlayerColor,
		OpponentColor: OpponentColor,
		BallColor:     BallColor,
		NetColor:      NetColor,
		NetDash:       []float64{8, 16},
		NetWidth:      1,
	}
}
