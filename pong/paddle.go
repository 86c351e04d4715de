package pong

import "image/color"

// Paddle is a rectangle that only moves vertically along one edge of the field.
type Paddle struct {
	Position
	Width  float64
	Height float64
	Color  color.RGBA
	// DY is the last vertical displacement applied by input. Physics ignores it.
	DY float64
}

// Top, Bottom, Left and Right return the edges of the paddle box.
func (p *Paddle) Top() float64    { return p.Y }
func (p *Paddle) Bottom() float64 { return p.Y + p.Height }
func (p *Paddle) Left() float64   { return p.X }
func (p *Paddle) Right() float64  { return p.X + p.Width }

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// SetY moves the paddle to y, kept inside a field of the given height.
func (p *Paddle) SetY(y, fieldHeight float64) {
	p.Y = clamp(y, 0, fieldHeight-p.Height)
}

// overlapsY reports whether the ball and the paddle share any vertical span.
func (p *Paddle) overlapsY(b *Ball) bool {
	return b.Bottom() > p.Top() && b.Top() < p.Bottom()
}
