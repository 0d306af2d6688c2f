package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws onto the ebiten window image. The displayed size comes from the
// game's Layout call and the target image is bound once per frame.
type Screen struct {
	target        *ebiten.Image
	displayW      int
	displayH      int
	width, height int
	AntiAlias     bool
}

func NewScreen() *Screen {
	return &Screen{AntiAlias: true}
}

// SetDisplaySize records the outside size reported by ebiten.
func (s *Screen) SetDisplaySize(w, h int) {
	s.displayW, s.displayH = w, h
}

// Bind sets the image the next frame is drawn on.
func (s *Screen) Bind(img *ebiten.Image) {
	s.target = img
}

func (s *Screen) DisplaySize() (int, int) {
	if s.displayW == 0 && s.displayH == 0 && s.target != nil {
		b := s.target.Bounds()
		return b.Dx(), b.Dy()
	}
	return s.displayW, s.displayH
}

// Resize keeps the logical size in sync; ebiten reallocates the screen image
// itself from the size returned by Layout.
func (s *Screen) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	if s.target != nil {
		s.target.Clear()
	}
}

func (s *Screen) ClearRect(x, y, w, h float64) {
	if s.target == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(s.target.Bounds())
	if r.Empty() {
		return
	}
	if r == s.target.Bounds() {
		s.target.Clear()
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.target == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), clr, s.AntiAlias)
}

func (s *Screen) StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color) {
	if s.target == nil || lineWidth <= 0 {
		return
	}
	vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r), float32(lineWidth), clr, s.AntiAlias)
}
