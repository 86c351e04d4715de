package pong

import "image/color"

// Surface is a 2D drawing target.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	// StrokeDashedLine draws a line alternating drawn and skipped runs of the
	// lengths in dash. An empty dash draws a solid line.
	StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, clr color.Color)
}

// Render draws w onto s. It keeps no state between frames.
func Render(s Surface, w *World) {
	f := w.Field
	cfg := w.cfg

	s.ClearRect(0, 0, f.Width, f.Height)
	s.StrokeDashedLine(f.Width/2, 0, f.Width/2, f.Height, cfg.NetWidth, cfg.NetDash, cfg.NetColor)

	for _, p := range []*Paddle{&w.Player, &w.Opponent} {
		s.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	}

	b := &w.Ball
	r := b.Size / 2
	s.FillCircle(b.X+r, b.Y+r, r, b.Color)
}

// Segment is a drawn run of a dashed line, as offsets along the line.
type Segment struct {
	From, To float64
}

// DashSegments splits a line of the given length into the runs that a dash
// pattern draws. Even entries of pattern are drawn, odd entries are gaps, and
// the pattern repeats. A pattern with no positive length yields one solid run.
func DashSegments(length float64, pattern []float64) []Segment {
	if length <= 0 {
		return nil
	}
	var period float64
	for _, d := range pattern {
		if d < 0 {
			return []Segment{{0, length}}
		}
		period += d
	}
	if period == 0 {
		return []Segment{{0, length}}
	}
	if len(pattern)%2 == 1 {
		// an odd pattern is repeated to make it even, as canvas dashes are
		pattern = append(append([]float64{}, pattern...), pattern...)
	}

	var segs []Segment
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(pattern) {
		end := pos + pattern[i]
		if end > length {
			end = length
		}
		if i%2 == 0 && end > pos {
			segs = append(segs, Segment{pos, end})
		}
		pos = end
	}
	return segs
}
