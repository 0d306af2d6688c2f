package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Image is an off-screen surface backed by a gogpu/gg software context.
// It is used for PNG snapshots and needs no window.
type Image struct {
	ctx      *gg.Context
	displayW int
	displayH int
}

// NewImage creates an off-screen surface whose displayed size is w x h.
func NewImage(w, h int) *Image {
	return &Image{
		ctx:      gg.NewContext(max(w, 1), max(h, 1)),
		displayW: w,
		displayH: h,
	}
}

// SetDisplaySize changes the size the next render resizes to.
func (m *Image) SetDisplaySize(w, h int) {
	m.displayW, m.displayH = w, h
}

func (m *Image) DisplaySize() (int, int) {
	return m.displayW, m.displayH
}

// Resize reallocates the pixel buffer. gg cannot hold an empty buffer, so
// sizes below one pixel keep a single transparent pixel.
func (m *Image) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == m.ctx.Width() && h == m.ctx.Height() {
		m.ctx.Clear()
		return
	}
	if err := m.ctx.Resize(w, h); err != nil {
		gg.Logger().Warn("canvas: resize failed", "width", w, "height", h, "err", err)
	}
}

func (m *Image) ClearRect(x, y, w, h float64) {
	r := rect(x, y, w, h).Intersect(image.Rect(0, 0, m.ctx.Width(), m.ctx.Height()))
	if r.Empty() {
		return
	}
	if r.Dx() == m.ctx.Width() && r.Dy() == m.ctx.Height() {
		m.ctx.Clear()
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			m.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (m *Image) FillRect(x, y, w, h float64, clr color.Color) {
	m.ctx.SetColor(clr)
	m.ctx.DrawRectangle(x, y, w, h)
	m.fill()
}

func (m *Image) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	m.ctx.SetColor(clr)
	m.ctx.DrawCircle(cx, cy, r)
	m.fill()
}

func (m *Image) StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color) {
	if lineWidth <= 0 {
		return
	}
	m.ctx.SetColor(clr)
	m.ctx.SetLineWidth(lineWidth)
	m.ctx.DrawCircle(cx, cy, r)
	if err := m.ctx.Stroke(); err != nil {
		gg.Logger().Warn("canvas: stroke failed", "err", err)
	}
}

func (m *Image) fill() {
	if err := m.ctx.Fill(); err != nil {
		gg.Logger().Warn("canvas: fill failed", "err", err)
	}
}

// Image returns a copy of the current pixels.
func (m *Image) Image() image.Image {
	return m.ctx.Image()
}

// SavePNG writes the current pixels to path.
func (m *Image) SavePNG(path string) error {
	if err := m.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func (m *Image) Close() error {
	return m.ctx.Close()
}

func rect(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
}
