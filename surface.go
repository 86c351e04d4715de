package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jtestard/pointer-pong/pong"
)

// screenSurface draws pong frames onto an ebiten image.
type screenSurface struct {
	img *ebiten.Image
}

var _ pong.Surface = screenSurface{}

func (s screenSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	s.img.SubImage(r).(*ebiten.Image).Fill(pong.BgColor)
}

func (s screenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s screenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (s screenSurface) StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, clr color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length
	for _, seg := range pong.DashSegments(length, dash) {
		vector.StrokeLine(s.img,
			float32(x0+ux*seg.From), float32(y0+uy*seg.From),
			float32(x0+ux*seg.To), float32(y0+uy*seg.To),
			float32(width), clr, false)
	}
}
