package pong

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float64
	Y float64
}

// Field is the size of the playing surface. It is fixed for a session.
type Field struct {
	Width  float64
	Height float64
}

// Valid reports whether the field has a usable size.
func (f Field) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// Center returns the center position of the field
func (f Field) Center() Position {
	return Position{
		X: f.Width / 2,
		Y: f.Height / 2,
	}
}

// clamp bounds v to [lo, hi]. lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
