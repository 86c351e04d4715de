package main

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize = 12
	hudDPI      = 72
)

var hudColor = color.RGBA{120, 120, 120, 255}

// loadHUDFont parses the bundled Go Regular font into a face for the overlay.
func loadHUDFont() (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    hudFontSize,
		DPI:     hudDPI,
		Hinting: font.HintingFull,
	}), nil
}

// drawHUD prints the current tick rate in the top-left corner.
func drawHUD(screen *ebiten.Image, face font.Face) {
	caption := fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS())
	text.Draw(screen, caption, face, 8, 8+face.Metrics().Ascent.Ceil(), hudColor)
}
