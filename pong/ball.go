package pong

import (
	"image/color"
	"math/rand"
)

// Ball is a square box drawn as a circle.
type Ball struct {
	Position
	Size  float64
	Speed float64
	DX    float64
	DY    float64
	Color color.RGBA
}

func (b *Ball) Top() float64    { return b.Y }
func (b *Ball) Bottom() float64 { return b.Y + b.Size }
func (b *Ball) Left() float64   { return b.X }
func (b *Ball) Right() float64  { return b.X + b.Size }

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// Reset puts the ball back in the middle of the field and serves it in a
// random direction. The horizontal speed is always b.Speed and the vertical
// speed magnitude falls in [minDY, maxDY).
func (b *Ball) Reset(f Field, minDY, maxDY float64, rng *rand.Rand) {
	c := f.Center()
	b.X = c.X - b.Size/2
	b.Y = c.Y - b.Size/2
	b.DX = randSign(rng) * b.Speed
	b.DY = randSign(rng) * (minDY + rng.Float64()*(maxDY-minDY))
}

func randSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
