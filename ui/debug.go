package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ToastDuration is how long a message stays on screen.
const ToastDuration = 4 * time.Second

var (
	toastBackground = color.RGBA{40, 40, 40, 220}
	toastError      = color.RGBA{255, 200, 50, 255}
	toastInfo       = color.RGBA{220, 220, 220, 255}
)

// DebugPanel shows the last status or error message in the bottom-right corner.
type DebugPanel struct {
	Message string
	IsError bool
	shownAt time.Time
	now     func() time.Time
}

func (d *DebugPanel) clock() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}

func (d *DebugPanel) SetError(msg string) {
	d.Message, d.IsError, d.shownAt = msg, true, d.clock()
}

func (d *DebugPanel) SetStatus(msg string) {
	d.Message, d.IsError, d.shownAt = msg, false, d.clock()
}

func (d *DebugPanel) Clear() {
	d.Message = ""
}

// Visible reports whether the message is still within ToastDuration.
func (d *DebugPanel) Visible() bool {
	return d != nil && d.Message != "" && d.clock().Sub(d.shownAt) < ToastDuration
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if !d.Visible() {
		return
	}
	w, h := getScreenSize()
	// Panel size
	pw, ph := 320, 48
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), toastBackground, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	clr := toastInfo
	if d.IsError {
		clr = toastError
	}
	drawText(screen, face, d.Message, x+8, y+8, clr)
}
