package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonColor       = color.RGBA{60, 60, 70, 200}
	buttonActiveColor = color.RGBA{90, 110, 160, 230}
	swatchBorder      = color.RGBA{255, 255, 255, 200}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()

	// Swatch paints the button with a color instead of a label.
	Swatch color.Color
	// Active highlights toggles that are on.
	Active bool
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button. It uses the provided font.Face via getter.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if b.Swatch != nil {
		vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, b.Swatch, false)
		if b.Active {
			vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, swatchBorder, false)
		}
		return
	}

	bg := buttonColor
	if b.Active {
		bg = buttonActiveColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+8, int(b.Y)+6, color.White)
}
