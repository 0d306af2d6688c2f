package main

import (
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont attempts to load the TTF at path. If it fails, returns basicfont.Face7x13.
func LoadUIFont(path string) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("ui font not found, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		slog.Warn("ui font parse error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: UIFontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("ui font face error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	// compute line height and baseline offset from metrics
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	lineHeight := ascent + descent
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// Treat provided y as the top of the first line. text.Draw expects baseline y,
	// so shift by ascent.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}
